// Package refdata serves the static region and location tables that scope
// the skill's catalog: which U.S. states and countries are selectable, and
// which cities within each have sighting feeds.
//
// Tables are UTF-8 text, one record per line, two comma-separated fields:
// display name, then a file or feed identifier. Only the first comma splits a
// record, so display names must not contain commas — an inherited limitation
// of the format (cmd/validate flags offending rows).
package refdata

import (
	"bufio"
	"embed"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"
)

//go:embed data
var embedded embed.FS

// RegionKind selects one of the two top-level lookup tables.
type RegionKind string

const (
	KindState   RegionKind = "state"
	KindCountry RegionKind = "country"
)

const (
	stateLookupFile   = "STATE_LOOKUP"
	countryLookupFile = "COUNTRY_LOOKUP"
	regionDir         = "regions"
)

// Region is one selectable state or country.
type Region struct {
	Name string // display name, unique per table (case-insensitive)
	File string // location-table file under regions/
}

// Location is one sightable place within a region.
type Location struct {
	Name   string
	FeedID string // sighting-feed identifier
}

// Store serves the region and location tables. Region lists are loaded once
// at construction and read-only afterwards, so concurrent reads are safe.
// Location tables are small and read fresh on every call.
type Store struct {
	fsys      fs.FS
	logger    *slog.Logger
	states    []Region
	countries []Region
}

// NewStore loads the state and country tables from fsys. An unreadable table
// loads as an empty list: callers treat "no data" as a guidance condition,
// never a failure.
func NewStore(fsys fs.FS, logger *slog.Logger) *Store {
	s := &Store{fsys: fsys, logger: logger}
	s.states = s.loadRegions(stateLookupFile)
	s.countries = s.loadRegions(countryLookupFile)
	return s
}

// NewEmbeddedStore loads the tables bundled into the binary.
func NewEmbeddedStore(logger *slog.Logger) *Store {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return NewStore(sub, logger)
}

// Regions returns the ordered region list for a kind. The slice is shared
// and must not be mutated.
func (s *Store) Regions(kind RegionKind) []Region {
	if kind == KindCountry {
		return s.countries
	}
	return s.states
}

func (s *Store) loadRegions(file string) []Region {
	pairs, err := readPairs(s.fsys, file)
	if err != nil {
		s.logger.Warn("region table unreadable", "file", file, "error", err)
		return nil
	}
	regions := make([]Region, len(pairs))
	for i, p := range pairs {
		regions[i] = Region{Name: p[0], File: p[1]}
	}
	return regions
}

// Locations reads the location table for a region. An unresolvable or
// malformed table yields an empty list, logged, so the region degrades to
// "not found" rather than failing the request.
func (s *Store) Locations(region Region) []Location {
	pairs, err := readPairs(s.fsys, path.Join(regionDir, region.File))
	if err != nil {
		s.logger.Warn("location table unreadable",
			"region", region.Name, "file", region.File, "error", err)
		return nil
	}
	locations := make([]Location, len(pairs))
	for i, p := range pairs {
		locations[i] = Location{Name: p[0], FeedID: p[1]}
	}
	return locations
}

// FindRegion looks up a region by display name, case-insensitively. The last
// match wins when the table carries duplicates (a data-quality bug, not a
// contract).
func FindRegion(regions []Region, name string) (Region, bool) {
	var found Region
	ok := false
	for _, r := range regions {
		if strings.EqualFold(r.Name, name) {
			found = r
			ok = true
		}
	}
	return found, ok
}

// FindLocation looks up a location by display name, case-insensitively, with
// the same last-match-wins behavior as FindRegion.
func FindLocation(locations []Location, name string) (Location, bool) {
	var found Location
	ok := false
	for _, l := range locations {
		if strings.EqualFold(l.Name, name) {
			found = l
			ok = true
		}
	}
	return found, ok
}

// FilterRegionsByFirstLetter returns the regions whose name starts with
// letter, compared case-insensitively on the first rune only. An empty letter
// means no filter.
func FilterRegionsByFirstLetter(regions []Region, letter string) []Region {
	if letter == "" {
		return regions
	}
	var out []Region
	for _, r := range regions {
		if hasFirstLetter(r.Name, letter) {
			out = append(out, r)
		}
	}
	return out
}

// FilterLocationsByFirstLetter is FilterRegionsByFirstLetter for locations.
func FilterLocationsByFirstLetter(locations []Location, letter string) []Location {
	if letter == "" {
		return locations
	}
	var out []Location
	for _, l := range locations {
		if hasFirstLetter(l.Name, letter) {
			out = append(out, l)
		}
	}
	return out
}

func hasFirstLetter(name, letter string) bool {
	n, _ := utf8.DecodeRuneInString(name)
	l, _ := utf8.DecodeRuneInString(letter)
	if n == utf8.RuneError || l == utf8.RuneError {
		return false
	}
	return unicode.ToLower(n) == unicode.ToLower(l)
}

// readPairs reads a two-column comma-delimited table, one record per line.
// Blank lines and lines with no comma are skipped.
func readPairs(fsys fs.FS, name string) ([][2]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs [][2]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		display, id, ok := strings.Cut(line, ",")
		if !ok {
			continue
		}
		pairs = append(pairs, [2]string{strings.TrimSpace(display), strings.TrimSpace(id)})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
