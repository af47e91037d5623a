// Command validate performs data integrity checks on a HeatGuard catalog and,
// optionally, on the JSON fixtures generated from it by genmock. It verifies
// structure, data quality, filter coverage and fixture parity.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -catalog data/catalog.yaml \
//	  -fixtures data/mock \
//	  -strict
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/heatguard-service/internal/catalog"
	"github.com/couchcryptid/heatguard-service/internal/domain"
	"github.com/couchcryptid/heatguard-service/internal/screen"
	"github.com/google/go-cmp/cmp"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	catalogPath := flag.String("catalog", "", "optional YAML catalog; empty checks the built-in data set")
	fixturesDir := flag.String("fixtures", "", "optional genmock output directory to compare against")
	strict := flag.Bool("strict", false, "treat data-quality warnings as failures")
	flag.Parse()

	os.Exit(run(*catalogPath, *fixturesDir, *strict))
}

func run(catalogPath, fixturesDir string, strict bool) int {
	fmt.Println("=== HeatGuard Catalog Validation ===")
	fmt.Println()

	c, err := catalog.Load(catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load catalog: %v\n", err)
		return 1
	}

	issues := catalog.Validate(c)
	phases := []*phase{
		validateStructure(issues),
		validateFilterCoverage(c),
		validateTipKeys(c),
	}
	if strict {
		phases = append(phases, validateWarnings(issues))
	}
	if fixturesDir != "" {
		phases = append(phases, validateFixtures(c, fixturesDir))
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Catalog: %d zones, %d centers, %d tip categories, %d languages, %d issues\n",
		len(c.Zones), len(c.Centers), len(c.TipCategories), len(c.Languages), len(issues))

	if !strict {
		for _, i := range issues {
			if i.Level == catalog.LevelWarning {
				fmt.Printf("  warning: %s: %s\n", i.Section, i.Message)
			}
		}
	}

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

func validateStructure(issues []catalog.Issue) *phase {
	p := &phase{name: "Catalog structure"}
	for _, i := range issues {
		if i.Level == catalog.LevelError {
			p.errorf("%s: %s", i.Section, i.Message)
		}
	}
	return p
}

func validateWarnings(issues []catalog.Issue) *phase {
	p := &phase{name: "Data quality (strict)"}
	for _, i := range issues {
		if i.Level == catalog.LevelWarning {
			p.errorf("%s: %s", i.Section, i.Message)
		}
	}
	return p
}

// validateFilterCoverage checks that every center is reachable through
// exactly one category chip and that the "all" chip counts everything.
func validateFilterCoverage(c *catalog.Catalog) *phase {
	p := &phase{name: "Center filter coverage"}

	hits := map[int]int{}
	for _, key := range []string{domain.FilterShelter, domain.FilterPublic, domain.FilterMedical} {
		for _, center := range domain.FilterCenters(c.Centers, key) {
			hits[center.ID]++
		}
	}
	for i := range c.Centers {
		center := &c.Centers[i]
		switch n := hits[center.ID]; n {
		case 1:
		case 0:
			p.errorf("center %d (%s) matches no filter chip", center.ID, center.Name)
		default:
			p.errorf("center %d (%s) matches %d filter chips", center.ID, center.Name, n)
		}
	}

	chips := domain.CenterFilters(c.Centers)
	if chips[0].Count != len(c.Centers) {
		p.errorf("all-centers chip counts %d, catalog has %d", chips[0].Count, len(c.Centers))
	}
	return p
}

// validateTipKeys checks that expansion keys are unique across categories.
func validateTipKeys(c *catalog.Catalog) *phase {
	p := &phase{name: "Tip expansion keys"}
	seen := map[string]string{}
	for _, cat := range c.TipCategories {
		for i, tip := range cat.Tips {
			key := screen.TipKey(cat.ID, i)
			if prev, ok := seen[key]; ok {
				p.errorf("key %s used by %q and %q", key, prev, tip.Title)
			}
			seen[key] = tip.Title
		}
	}
	return p
}

// validateFixtures compares genmock output with what the domain produces now.
func validateFixtures(c *catalog.Catalog, dir string) *phase {
	p := &phase{name: "Fixture parity"}

	compareFixture(p, dir, "zones.json", c.Zones)
	compareFixture(p, dir, "center_filters.json", domain.CenterFilters(c.Centers))
	compareFixture(p, dir, "tip_categories.json", c.TipCategories)
	for _, key := range []string{domain.FilterAll, domain.FilterShelter, domain.FilterPublic, domain.FilterMedical} {
		compareFixture(p, dir, "centers_"+key+".json", domain.FilterCenters(c.Centers, key))
	}
	return p
}

func compareFixture[T any](p *phase, dir, name string, want T) {
	var got T
	if err := loadJSON(filepath.Join(dir, name), &got); err != nil {
		p.errorf("%s: %v", name, err)
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		p.errorf("%s is stale (-want +got):\n%s", name, diff)
	}
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
