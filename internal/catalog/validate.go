package catalog

import (
	"fmt"

	"github.com/couchcryptid/heatguard-service/internal/domain"
)

// IssueLevel grades a catalog issue.
type IssueLevel string

const (
	// LevelError marks data the service cannot present correctly.
	LevelError IssueLevel = "error"
	// LevelWarning marks data that is displayable but needs an owner's attention.
	LevelWarning IssueLevel = "warning"
)

// Issue is one data-quality finding.
type Issue struct {
	Level   IssueLevel `json:"level"`
	Section string     `json:"section"`
	Message string     `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Level, i.Section, i.Message)
}

// HasErrors reports whether any issue is at LevelError.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Level == LevelError {
			return true
		}
	}
	return false
}

// Validate checks the catalog for duplicate ids, unknown enum values,
// impossible occupancy and heat zones whose assigned risk disagrees with the
// temperature thresholds. It never modifies the catalog.
func Validate(c *Catalog) []Issue {
	var issues []Issue
	issues = append(issues, validateZones(c.Zones)...)
	issues = append(issues, validateCenters(c.Centers)...)
	issues = append(issues, validateTips(c.TipCategories)...)
	return issues
}

func validateZones(zones []domain.HeatZone) []Issue {
	var issues []Issue
	seen := map[int]bool{}
	for _, z := range zones {
		if seen[z.ID] {
			issues = append(issues, errorf("zones", "duplicate id %d", z.ID))
		}
		seen[z.ID] = true

		switch z.Risk {
		case domain.RiskLow, domain.RiskMedium, domain.RiskHigh:
		default:
			issues = append(issues, errorf("zones", "zone %d (%s): unknown risk %q", z.ID, z.Name, z.Risk))
			continue
		}
		if z.RiskMismatch() {
			issues = append(issues, warnf("zones", "zone %d (%s): assigned risk %s but %.1f°C implies %s",
				z.ID, z.Name, z.Risk, z.TemperatureCelsius, z.DerivedRisk()))
		}
		if z.ReportCount < 0 {
			issues = append(issues, errorf("zones", "zone %d (%s): negative report count", z.ID, z.Name))
		}
	}
	return issues
}

func validateCenters(centers []domain.CoolingCenter) []Issue {
	var issues []Issue
	seen := map[int]bool{}
	for i := range centers {
		c := &centers[i]
		if seen[c.ID] {
			issues = append(issues, errorf("centers", "duplicate id %d", c.ID))
		}
		seen[c.ID] = true

		switch c.Category {
		case domain.CategoryShelter, domain.CategoryPublicSpace, domain.CategoryTransit, domain.CategoryMedical:
		default:
			issues = append(issues, errorf("centers", "center %d (%s): unknown category %q", c.ID, c.Name, c.Category))
		}
		switch c.Status {
		case domain.StatusOpen, domain.StatusCrowded, domain.StatusClosed:
		default:
			issues = append(issues, errorf("centers", "center %d (%s): unknown status %q", c.ID, c.Name, c.Status))
		}

		switch {
		case c.Capacity <= 0:
			issues = append(issues, errorf("centers", "center %d (%s): capacity must be positive, got %d", c.ID, c.Name, c.Capacity))
		case c.CurrentOccupancy < 0:
			issues = append(issues, errorf("centers", "center %d (%s): negative occupancy %d", c.ID, c.Name, c.CurrentOccupancy))
		case c.OverCapacity():
			issues = append(issues, warnf("centers", "center %d (%s): occupancy %d exceeds capacity %d",
				c.ID, c.Name, c.CurrentOccupancy, c.Capacity))
		}
	}
	return issues
}

func validateTips(categories []domain.TipCategory) []Issue {
	var issues []Issue
	seen := map[string]bool{}
	for _, cat := range categories {
		if cat.ID == "" {
			issues = append(issues, errorf("tips", "category %q has no id", cat.Title))
		}
		if seen[cat.ID] {
			issues = append(issues, errorf("tips", "duplicate category id %q", cat.ID))
		}
		seen[cat.ID] = true

		if len(cat.Tips) == 0 {
			issues = append(issues, warnf("tips", "category %q has no tips", cat.ID))
		}
		for idx, tip := range cat.Tips {
			switch tip.Importance {
			case domain.ImportanceCritical, domain.ImportanceImportant, domain.ImportanceHelpful:
			default:
				issues = append(issues, errorf("tips", "%s-%d (%s): unknown importance %q", cat.ID, idx, tip.Title, tip.Importance))
			}
		}
	}
	return issues
}

func errorf(section, format string, args ...any) Issue {
	return Issue{Level: LevelError, Section: section, Message: fmt.Sprintf(format, args...)}
}

func warnf(section, format string, args ...any) Issue {
	return Issue{Level: LevelWarning, Section: section, Message: fmt.Sprintf(format, args...)}
}
