// Package dataset loads the precomputed Wrapped records and resolves access
// codes against them. The catalog is read-only after Load; the running
// service never mutates or deletes records.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wrapped/internal/domain/record"
)

// File names inside the data directory, as produced by the offline
// preparation step.
const (
	MemberDataFile    = "wrapped-data.json"
	CoachDataFile     = "coach-wrapped-data.json"
	CommunityFile     = "community-stats.json"
	minCodeLength     = 4
	topCoachRankDepth = 3
)

// Resolution errors
var (
	ErrCodeTooShort = errors.New("code is too short")
	ErrNotFound     = errors.New("code not found")
)

// Catalog holds both keyspaces plus the community aggregates.
type Catalog struct {
	members   map[string]record.Member
	coaches   map[string]record.Coach
	stats     record.CommunityStats
	topCoaches []record.TopCoach
}

// Load reads the three dataset files from dir and builds the catalog.
// PRE: dir contains the files written by the data-preparation step
// POST: Returns a catalog ready for lookups, or an error naming the file
func Load(dir string) (*Catalog, error) {
	var members map[string]record.Member
	if err := readJSON(filepath.Join(dir, MemberDataFile), &members); err != nil {
		return nil, fmt.Errorf("load member dataset: %w", err)
	}
	var coaches map[string]record.Coach
	if err := readJSON(filepath.Join(dir, CoachDataFile), &coaches); err != nil {
		return nil, fmt.Errorf("load coach dataset: %w", err)
	}
	var stats record.CommunityStats
	if err := readJSON(filepath.Join(dir, CommunityFile), &stats); err != nil {
		return nil, fmt.Errorf("load community stats: %w", err)
	}
	return New(members, coaches, stats), nil
}

// New builds a catalog from already-decoded maps. Keys are canonicalised to
// uppercase so lookups stay case-insensitive even when the preparation step
// slips in a lowercase key.
func New(members map[string]record.Member, coaches map[string]record.Coach, stats record.CommunityStats) *Catalog {
	c := &Catalog{
		members: make(map[string]record.Member, len(members)),
		coaches: make(map[string]record.Coach, len(coaches)),
		stats:   stats,
	}
	for k, v := range members {
		c.members[strings.ToUpper(k)] = v
	}
	for k, v := range coaches {
		c.coaches[strings.ToUpper(k)] = v
	}
	c.topCoaches = rankCoaches(c.coaches)
	return c
}

// Resolve normalizes a raw user-entered code (trim, uppercase) and looks it
// up, coach keyspace first. Coach precedence on a key collision is a
// deterministic product rule; collisions are not expected.
// PRE: raw may be any user input
// POST: Returns the tagged record, ErrCodeTooShort, or ErrNotFound
func (c *Catalog) Resolve(raw string) (record.AccessRecord, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) < minCodeLength {
		return record.AccessRecord{}, ErrCodeTooShort
	}
	if coach, ok := c.coaches[code]; ok {
		return record.ForCoach(coach), nil
	}
	if member, ok := c.members[code]; ok {
		return record.ForMember(member), nil
	}
	return record.AccessRecord{}, ErrNotFound
}

// Stats returns the community aggregates loaded next to the datasets.
func (c *Catalog) Stats() record.CommunityStats {
	return c.stats
}

// TopCoaches returns the top coaches by classes given, most first.
func (c *Catalog) TopCoaches() []record.TopCoach {
	return c.topCoaches
}

// MemberCount reports the number of member records, for the startup log.
func (c *Catalog) MemberCount() int { return len(c.members) }

// CoachCount reports the number of coach records, for the startup log.
func (c *Catalog) CoachCount() int { return len(c.coaches) }

func rankCoaches(coaches map[string]record.Coach) []record.TopCoach {
	ranked := make([]record.TopCoach, 0, len(coaches))
	for _, ch := range coaches {
		ranked = append(ranked, record.TopCoach{FirstName: ch.FirstName, ClassesGiven: ch.ClassesGiven})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].ClassesGiven != ranked[j].ClassesGiven {
			return ranked[i].ClassesGiven > ranked[j].ClassesGiven
		}
		return ranked[i].FirstName < ranked[j].FirstName
	})
	if len(ranked) > topCoachRankDepth {
		ranked = ranked[:topCoachRankDepth]
	}
	return ranked
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}
