// Command validate checks the integrity of the region and location reference
// tables: both lookup tables parse, display names are unique, no record
// carries an embedded comma, and every region's location file resolves and
// parses.
//
// Usage:
//
//	go run ./cmd/validate -data-dir internal/refdata/data
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	stateLookupFile   = "STATE_LOOKUP"
	countryLookupFile = "COUNTRY_LOOKUP"
	regionDir         = "regions"
)

// record is one parsed table row plus its source line number.
type record struct {
	name string
	id   string
	line int
}

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
	dataDir := flag.String("data-dir", "", "directory containing the lookup tables and regions/ subdirectory")
	flag.Parse()

	if *dataDir == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dataDir); code != 0 {
		os.Exit(code)
	}
}

func run(dataDir string) int {
	fmt.Println("=== Reference Data Integrity Validation ===")
	fmt.Println()

	states, err := loadTable(filepath.Join(dataDir, stateLookupFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load state table: %v\n", err)
		return 1
	}
	countries, err := loadTable(filepath.Join(dataDir, countryLookupFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load country table: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateTables(states, countries),
		validateDuplicates(states, countries),
		validateLocationFiles(dataDir, append(append([]record{}, states...), countries...)),
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
	fmt.Printf("Records: %d states, %d countries\n", len(states), len(countries))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("  %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}

// loadTable reads a two-column comma-delimited table. Unlike the service,
// which skips bad rows silently, malformed rows are kept so phases can report
// them: the extra fields stay attached to the id column.
func loadTable(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []record
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		name, id, _ := strings.Cut(text, ",")
		records = append(records, record{
			name: strings.TrimSpace(name),
			id:   strings.TrimSpace(id),
			line: line,
		})
	}
	return records, sc.Err()
}

// validateTables checks that both tables have rows and every row has exactly
// two non-empty fields. A comma inside the id column means the display name
// or identifier carries an embedded comma, which the service would truncate.
func validateTables(states, countries []record) *phase {
	p := &phase{name: "table format"}

	check := func(table string, records []record) {
		if len(records) == 0 {
			p.errorf("%s: table is empty", table)
		}
		for _, r := range records {
			if r.name == "" || r.id == "" {
				p.errorf("%s line %d: row must have two non-empty fields", table, r.line)
				continue
			}
			if strings.Contains(r.id, ",") {
				p.errorf("%s line %d: embedded comma in %q", table, r.line, r.name+","+r.id)
			}
		}
	}
	check(stateLookupFile, states)
	check(countryLookupFile, countries)
	return p
}

// validateDuplicates flags display names appearing more than once within a
// table. Lookup is last-match-wins, so earlier duplicates are unreachable.
func validateDuplicates(states, countries []record) *phase {
	p := &phase{name: "duplicate display names"}

	check := func(table string, records []record) {
		seen := make(map[string]int)
		for _, r := range records {
			key := strings.ToLower(r.name)
			if prev, ok := seen[key]; ok {
				p.errorf("%s line %d: %q already defined on line %d", table, r.line, r.name, prev)
				continue
			}
			seen[key] = r.line
		}
	}
	check(stateLookupFile, states)
	check(countryLookupFile, countries)
	return p
}

// validateLocationFiles checks that every region's location file exists and
// parses with the same format rules as the tables.
func validateLocationFiles(dataDir string, regions []record) *phase {
	p := &phase{name: "region location files"}

	for _, region := range regions {
		path := filepath.Join(dataDir, regionDir, region.id)
		locations, err := loadTable(path)
		if err != nil {
			p.errorf("%s: location file %s unreadable: %v", region.name, region.id, err)
			continue
		}
		if len(locations) == 0 {
			p.errorf("%s: location file %s is empty", region.name, region.id)
		}
		seen := make(map[string]int)
		for _, loc := range locations {
			if loc.name == "" || loc.id == "" {
				p.errorf("%s line %d: row must have two non-empty fields", region.id, loc.line)
				continue
			}
			if strings.Contains(loc.id, ",") {
				p.errorf("%s line %d: embedded comma in %q", region.id, loc.line, loc.name+","+loc.id)
			}
			key := strings.ToLower(loc.name)
			if prev, ok := seen[key]; ok {
				p.errorf("%s line %d: %q already defined on line %d", region.id, loc.line, loc.name, prev)
				continue
			}
			seen[key] = loc.line
		}
	}
	return p
}
