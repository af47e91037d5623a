// Package catalog holds the static HeatGuard data set: heat zones, cooling
// centers, safety tips and the supporting display data for each screen.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/couchcryptid/heatguard-service/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog load errors.
var (
	ErrNoZones         = errors.New("at least one heat zone is required")
	ErrNoCenters       = errors.New("at least one cooling center is required")
	ErrNoTipCategories = errors.New("at least one tip category is required")
	ErrNoLanguages     = errors.New("at least one language is required")
)

// Catalog is the complete static data set served to the presentation layer.
type Catalog struct {
	Weather         domain.Weather         `yaml:"weather"`
	Zones           []domain.HeatZone      `yaml:"zones"`
	Centers         []domain.CoolingCenter `yaml:"centers"`
	TipCategories   []domain.TipCategory   `yaml:"tip_categories"`
	Languages       []domain.Language      `yaml:"languages"`
	Profile         domain.UserProfile     `yaml:"profile"`
	AdminStats      domain.AdminStats      `yaml:"admin_stats"`
	EmergencyNumber string                 `yaml:"emergency_number"`
}

// Load returns the catalog at path, or Default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML catalog. Structural problems (missing sections) fail
// the load; data-quality issues are reported by Validate instead.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := c.checkStructure(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	if c.EmergencyNumber == "" {
		c.EmergencyNumber = "108"
	}
	return &c, nil
}

func (c *Catalog) checkStructure() error {
	switch {
	case len(c.Zones) == 0:
		return ErrNoZones
	case len(c.Centers) == 0:
		return ErrNoCenters
	case len(c.TipCategories) == 0:
		return ErrNoTipCategories
	case len(c.Languages) == 0:
		return ErrNoLanguages
	}
	return nil
}

// Zone returns the heat zone with the given id.
func (c *Catalog) Zone(id int) (domain.HeatZone, bool) {
	for _, z := range c.Zones {
		if z.ID == id {
			return z, true
		}
	}
	return domain.HeatZone{}, false
}

// Center returns the cooling center with the given id.
func (c *Catalog) Center(id int) (domain.CoolingCenter, bool) {
	for i := range c.Centers {
		if c.Centers[i].ID == id {
			return c.Centers[i], true
		}
	}
	return domain.CoolingCenter{}, false
}

// Language returns the language with the given code.
func (c *Catalog) Language(code string) (domain.Language, bool) {
	for _, l := range c.Languages {
		if l.Code == code {
			return l, true
		}
	}
	return domain.Language{}, false
}

// CheckReadiness fails when the catalog has error-level data issues.
func (c *Catalog) CheckReadiness(_ context.Context) error {
	for _, issue := range Validate(c) {
		if issue.Level == LevelError {
			return fmt.Errorf("catalog invalid: %s", issue)
		}
	}
	return nil
}
