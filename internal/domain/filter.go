package domain

import "math"

// NearCapacityPercent is the occupancy above which a center shows a warning color.
const NearCapacityPercent = 80

// Filter keys understood by FilterCenters and FilterZones.
const (
	FilterAll     = "all"
	FilterShelter = "shelter"
	FilterPublic  = "public"
	FilterMedical = "medical"
)

// FilterChip is a selectable filter with the number of entries it matches.
type FilterChip struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// centerMatchers maps each known filter key to its category predicate.
var centerMatchers = map[string]func(CenterCategory) bool{
	FilterShelter: func(c CenterCategory) bool { return c == CategoryShelter },
	FilterPublic:  func(c CenterCategory) bool { return c == CategoryPublicSpace || c == CategoryTransit },
	FilterMedical: func(c CenterCategory) bool { return c == CategoryMedical },
}

// FilterCenters returns the centers matching key in catalog order.
// "all", the empty key and unknown keys return the catalog unchanged.
func FilterCenters(centers []CoolingCenter, key string) []CoolingCenter {
	match, ok := centerMatchers[key]
	if !ok {
		return centers
	}
	out := make([]CoolingCenter, 0, len(centers))
	for i := range centers {
		if match(centers[i].Category) {
			out = append(out, centers[i])
		}
	}
	return out
}

// CenterFilters builds the filter chips with counts taken from the catalog.
func CenterFilters(centers []CoolingCenter) []FilterChip {
	return []FilterChip{
		{ID: FilterAll, Label: "All Centers", Count: len(centers)},
		{ID: FilterShelter, Label: "Shelters", Count: len(FilterCenters(centers, FilterShelter))},
		{ID: FilterPublic, Label: "Public Spaces", Count: len(FilterCenters(centers, FilterPublic))},
		{ID: FilterMedical, Label: "Medical", Count: len(FilterCenters(centers, FilterMedical))},
	}
}

// FilterZones returns the zones whose assigned risk equals key.
// Keys other than high, medium and low return the catalog unchanged.
func FilterZones(zones []HeatZone, key string) []HeatZone {
	level := RiskLevel(key)
	switch level {
	case RiskHigh, RiskMedium, RiskLow:
	default:
		return zones
	}
	out := make([]HeatZone, 0, len(zones))
	for _, z := range zones {
		if z.Risk == level {
			out = append(out, z)
		}
	}
	return out
}

// TipsForCategory returns the category with the given id, falling back to the
// first category when the id is unknown. ok is false only for an empty catalog.
func TipsForCategory(categories []TipCategory, id string) (TipCategory, bool) {
	if len(categories) == 0 {
		return TipCategory{}, false
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return categories[0], true
}

// OccupancyPercent returns round(current/capacity*100) clamped to [0, 100].
// A non-positive capacity yields 0.
func OccupancyPercent(current, capacity int) int {
	if capacity <= 0 || current <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(capacity) * 100))
	return min(pct, 100)
}
