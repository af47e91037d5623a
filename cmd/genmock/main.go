// Command genmock writes the HeatGuard catalog as JSON fixtures for the
// presentation layer test suites. It runs the real domain filters so the
// fixtures match what the service returns.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -catalog data/catalog.yaml \
//	  -out data/mock
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/heatguard-service/internal/catalog"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

// fixtureTime is the fixed CreatedAt of generated sample reports.
var fixtureTime = time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	catalogPath := flag.String("catalog", "", "optional YAML catalog; empty uses the built-in data set")
	outDir := flag.String("out", "", "output directory for JSON fixtures")
	flag.Parse()

	if *outDir == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	c, err := catalog.Load(*catalogPath)
	if err != nil {
		return err
	}

	// Set a fixed clock for reproducible report timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(fixtureTime))
	defer domain.SetClock(nil)

	fixtures := map[string]any{
		"zones.json":          c.Zones,
		"center_filters.json": domain.CenterFilters(c.Centers),
		"tip_categories.json": c.TipCategories,
		"weather.json":        c.Weather,
		"profile.json":        c.Profile,
		"languages.json":      c.Languages,
		"sample_report.json":  sampleReport(c),
	}
	for _, key := range []string{domain.FilterAll, domain.FilterShelter, domain.FilterPublic, domain.FilterMedical} {
		fixtures["centers_"+key+".json"] = domain.FilterCenters(c.Centers, key)
	}
	for _, level := range []domain.RiskLevel{domain.RiskHigh, domain.RiskMedium, domain.RiskLow} {
		fixtures["zones_"+string(level)+".json"] = domain.FilterZones(c.Zones, string(level))
	}

	for name, v := range fixtures {
		path := filepath.Join(*outDir, name)
		if err := writeJSON(path, v); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		log.Printf("wrote %s", path)
	}

	printStats(c)
	return nil
}

// sampleReport builds the report a resident would submit for the urgent
// dehydration scenario.
func sampleReport(c *catalog.Catalog) domain.EmergencyReport {
	r := domain.NewEmergencyReport(c.Profile.Location)
	r.Symptoms = r.Symptoms.Toggle(domain.SymptomDehydration).Toggle(domain.SymptomHeadache)
	r.Severity = domain.SeverityUrgent
	return r
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func printStats(c *catalog.Catalog) {
	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Zones: %d\n", len(c.Zones))
	for _, level := range []domain.RiskLevel{domain.RiskHigh, domain.RiskMedium, domain.RiskLow} {
		fmt.Printf("  %s: %d\n", level, len(domain.FilterZones(c.Zones, string(level))))
	}

	fmt.Printf("Centers: %d\n", len(c.Centers))
	for _, chip := range domain.CenterFilters(c.Centers) {
		fmt.Printf("  %s: %d\n", chip.ID, chip.Count)
	}
	var near int
	for i := range c.Centers {
		if c.Centers[i].NearCapacity() {
			near++
		}
	}
	fmt.Printf("  near capacity (>%d%%): %d\n", domain.NearCapacityPercent, near)

	var tips int
	for _, cat := range c.TipCategories {
		tips += len(cat.Tips)
		fmt.Printf("Tips %s: %d\n", cat.ID, len(cat.Tips))
	}
	fmt.Printf("Tips total: %d\n", tips)
}
