// Package regions resolves state codes to geographic regions and to authored
// state workforce profiles. The backing tables are static reference data,
// embedded at compile time and loaded once; there is no mutation path.
package regions

import (
	"sort"

	"github.com/jonathan/workforce-directory/internal/types"
)

// Region sentinels used by the region facet.
const (
	// All matches every entity regardless of state.
	All = types.SelectAll
	// National matches nationwide items: state "National" or virtual format.
	National = "national"
)

// Table holds the region membership and state-profile lookup tables.
type Table struct {
	members  map[string][]string
	owners   map[string]string
	profiles map[string]types.StateProfile
}

// Known reports whether the region identifier is resolvable, including the
// "all" and "national" sentinels.
func (t *Table) Known(region string) bool {
	if region == All || region == National || region == "" {
		return true
	}
	_, ok := t.members[region]
	return ok
}

// Regions returns the named region identifiers in sorted order. Sentinels are
// not included.
func (t *Table) Regions() []string {
	out := make([]string, 0, len(t.members))
	for region := range t.members {
		out = append(out, region)
	}
	sort.Strings(out)
	return out
}

// States returns the member state codes of a named region in authored order.
func (t *Table) States(region string) []string {
	return t.members[region]
}

// RegionOf reverse-maps a state code to the region that owns it. The sentinel
// state "National" resolves to the national region rather than a state-set
// lookup. An unmapped code returns ok=false; that is a configuration error on
// the caller's side.
func (t *Table) RegionOf(state string) (string, bool) {
	if state == types.StateNational {
		return National, true
	}
	region, ok := t.owners[state]
	return region, ok
}

// Contains reports whether an entity with the given state and format falls
// inside the selected region. The "all" sentinel (and the empty selection)
// matches everything; "national" matches the National state or virtual format;
// an unknown region identifier degrades to "all" so one bad facet cannot hide
// every result.
func (t *Table) Contains(region, state, format string) bool {
	switch region {
	case "", All:
		return true
	case National:
		return state == types.StateNational || format == types.FormatVirtual
	}

	states, ok := t.members[region]
	if !ok {
		return true
	}
	for _, s := range states {
		if s == state {
			return true
		}
	}
	return false
}

// ProfileOf looks up the authored profile for a state. Most states have no
// authored profile yet; absence is a normal outcome, not an error.
func (t *Table) ProfileOf(state string) (types.StateProfile, bool) {
	profile, ok := t.profiles[state]
	return profile, ok
}

// ProfiledStates returns the state codes that have authored profiles, sorted.
func (t *Table) ProfiledStates() []string {
	out := make([]string, 0, len(t.profiles))
	for state := range t.profiles {
		out = append(out, state)
	}
	sort.Strings(out)
	return out
}

// PathwayLadder returns a profile's career ladder in authored order: entry
// level first, most senior last. No re-ranking is applied.
func PathwayLadder(profile types.StateProfile) []types.PathwayLevel {
	return profile.Pathways
}
