// Package screen models the local UI state of each tab as a small struct
// updated through pure transitions. Every method returns a new value and
// leaves the receiver untouched.
package screen

import (
	"fmt"

	"github.com/couchcryptid/heatguard-service/internal/catalog"
	"github.com/couchcryptid/heatguard-service/internal/domain"
)

// HeatMap is the heat map tab: an optional selected zone and a risk filter.
type HeatMap struct {
	SelectedZone *int   `json:"selected_zone,omitempty"`
	RiskFilter   string `json:"risk_filter"`
}

// NewHeatMap returns the heat map with nothing selected and every zone shown.
func NewHeatMap() HeatMap {
	return HeatMap{RiskFilter: domain.FilterAll}
}

// SelectZone toggles the zone detail card.
func (h HeatMap) SelectZone(id int) HeatMap {
	h.SelectedZone = domain.Toggle(h.SelectedZone, id)
	return h
}

// SetRiskFilter replaces the risk filter. A selection hidden by the new
// filter is kept; Visible simply omits it.
func (h HeatMap) SetRiskFilter(key string) HeatMap {
	h.RiskFilter = key
	return h
}

// Visible returns the zones shown for the current filter.
func (h HeatMap) Visible(c *catalog.Catalog) []domain.HeatZone {
	return domain.FilterZones(c.Zones, h.RiskFilter)
}

// Selected returns the selected zone, if any.
func (h HeatMap) Selected(c *catalog.Catalog) (domain.HeatZone, bool) {
	if h.SelectedZone == nil {
		return domain.HeatZone{}, false
	}
	return c.Zone(*h.SelectedZone)
}

// Cooling is the cooling centers tab.
type Cooling struct {
	Filter         string `json:"filter"`
	SelectedCenter *int   `json:"selected_center,omitempty"`
}

// NewCooling returns the centers tab showing all centers.
func NewCooling() Cooling {
	return Cooling{Filter: domain.FilterAll}
}

// SetFilter selects a filter chip. Chips are exclusive; there is always one
// active filter.
func (c Cooling) SetFilter(key string) Cooling {
	if key == "" {
		key = domain.FilterAll
	}
	c.Filter = key
	return c
}

// ToggleCenter expands or collapses a center card.
func (c Cooling) ToggleCenter(id int) Cooling {
	c.SelectedCenter = domain.Toggle(c.SelectedCenter, id)
	return c
}

// Visible returns the centers shown for the current filter.
func (c Cooling) Visible(cat *catalog.Catalog) []domain.CoolingCenter {
	return domain.FilterCenters(cat.Centers, c.Filter)
}

// Tips is the safety tips tab.
type Tips struct {
	Category domain.Exclusive[string]
	Expanded *string
	Language domain.Exclusive[string]
}

// NewTips opens the tips tab on the first category in English.
func NewTips(c *catalog.Catalog) Tips {
	first := ""
	if len(c.TipCategories) > 0 {
		first = c.TipCategories[0].ID
	}
	lang := "en"
	if len(c.Languages) > 0 {
		lang = c.Languages[0].Code
	}
	return Tips{
		Category: domain.NewExclusive(first),
		Language: domain.NewExclusive(lang),
	}
}

// TipKey identifies a tip card across categories.
func TipKey(category string, index int) string {
	return fmt.Sprintf("%s-%d", category, index)
}

// SelectCategory switches the tip category and collapses any expanded tip.
// An id not in c selects the category shown in its place, so expansion keys
// always match the tips on screen.
func (t Tips) SelectCategory(c *catalog.Catalog, id string) Tips {
	if cat, ok := domain.TipsForCategory(c.TipCategories, id); ok {
		t.Category = t.Category.Select(cat.ID)
	} else {
		t.Category = t.Category.Reset()
	}
	t.Expanded = nil
	return t
}

// ToggleTip expands the tip at index in the current category, or collapses
// it when it is already expanded.
func (t Tips) ToggleTip(index int) Tips {
	t.Expanded = domain.Toggle(t.Expanded, TipKey(t.Category.Value(), index))
	return t
}

// IsExpanded reports whether the tip at index in the current category is open.
func (t Tips) IsExpanded(index int) bool {
	return t.Expanded != nil && *t.Expanded == TipKey(t.Category.Value(), index)
}

// SelectLanguage changes the display language. Only labels change.
func (t Tips) SelectLanguage(code string) Tips {
	t.Language = t.Language.Select(code)
	return t
}

// Current returns the category shown, falling back to the first one.
func (t Tips) Current(c *catalog.Catalog) (domain.TipCategory, bool) {
	return domain.TipsForCategory(c.TipCategories, t.Category.Value())
}

// Profile holds the profile tab switches. AdminMode only changes what is
// displayed; it grants nothing.
type Profile struct {
	NotificationsEnabled bool `json:"notifications_enabled"`
	LocationSharing      bool `json:"location_sharing"`
	VolunteerMode        bool `json:"volunteer_mode"`
	AdminMode            bool `json:"admin_mode"`
}

// NewProfile returns the default switches.
func NewProfile() Profile {
	return Profile{NotificationsEnabled: true, LocationSharing: true}
}

func (p Profile) ToggleNotifications() Profile {
	p.NotificationsEnabled = !p.NotificationsEnabled
	return p
}

func (p Profile) ToggleLocationSharing() Profile {
	p.LocationSharing = !p.LocationSharing
	return p
}

func (p Profile) ToggleVolunteerMode() Profile {
	p.VolunteerMode = !p.VolunteerMode
	return p
}

func (p Profile) ToggleAdminMode() Profile {
	p.AdminMode = !p.AdminMode
	return p
}

// Stats returns the admin panel counters, or false outside admin mode.
func (p Profile) Stats(c *catalog.Catalog) (domain.AdminStats, bool) {
	if !p.AdminMode {
		return domain.AdminStats{}, false
	}
	return c.AdminStats, true
}
