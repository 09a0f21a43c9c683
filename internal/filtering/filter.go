// Package filtering implements the faceted filter engine shared by every
// listing page.
package filtering

import (
	"strings"

	"github.com/jonathan/workforce-directory/internal/regions"
	"github.com/jonathan/workforce-directory/internal/types"
)

// Engine evaluates FilterCriteria against collections of one entity kind.
// All selected facets must match (logical AND); there are no OR/NOT
// combinators. Engines hold only read-only configuration, so a single engine
// is safe to share across concurrent callers.
type Engine[T any] struct {
	kind            Kind[T]
	table           *regions.Table
	facets          map[string]Facet[T]
	onUnknownRegion func(region string)
}

// NewEngine builds an engine from a kind descriptor and the region table.
func NewEngine[T any](kind Kind[T], table *regions.Table) *Engine[T] {
	facets := make(map[string]Facet[T], len(kind.Facets))
	for _, f := range kind.Facets {
		facets[f.Name] = f
	}
	return &Engine[T]{kind: kind, table: table, facets: facets}
}

// OnUnknownRegion registers a hook fired once per Filter call when the
// criteria name a region absent from the table. The selection still degrades
// to "all"; the hook exists so callers can surface a configuration warning.
func (e *Engine[T]) OnUnknownRegion(fn func(region string)) {
	e.onUnknownRegion = fn
}

// Filter returns the ordered subsequence of items matching the criteria.
// Filtering is stable: input order is preserved and the input is never
// mutated. Repeated calls with identical inputs yield identical output.
func (e *Engine[T]) Filter(items []T, criteria types.FilterCriteria) []T {
	if region := criteria.Facet(types.FacetRegion); !e.table.Known(region) {
		if e.onUnknownRegion != nil {
			e.onUnknownRegion(region)
		}
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		if e.Matches(item, criteria) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Matches reports whether a single item satisfies every selected facet and
// the free-text query.
func (e *Engine[T]) Matches(item T, criteria types.FilterCriteria) bool {
	for name, selection := range criteria.Facets {
		if selection == "" || selection == types.SelectAll {
			continue
		}
		if name == types.FacetRegion {
			if !e.table.Contains(selection, e.kind.State(item), e.kind.Format(item)) {
				return false
			}
			continue
		}

		facet, ok := e.facets[name]
		if !ok {
			// Facet names vary by listing page; a name this kind does not
			// expose is a no-op rather than an error.
			continue
		}
		if !facetMatches(facet, item, selection) {
			return false
		}
	}

	return e.matchesQuery(item, criteria.Query)
}

func facetMatches[T any](facet Facet[T], item T, selection string) bool {
	if facet.Value != nil {
		return facet.Value(item) == selection
	}
	if facet.Values != nil {
		for _, v := range facet.Values(item) {
			if v == selection {
				return true
			}
		}
	}
	return false
}

func (e *Engine[T]) matchesQuery(item T, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	haystack := strings.ToLower(e.kind.Text(item))
	return strings.Contains(haystack, strings.ToLower(query))
}

// HasActiveFilters reports whether any facet differs from its "all" default or
// the text query is non-empty. Listing pages use this to decide whether to
// show their reset control.
func HasActiveFilters(criteria types.FilterCriteria) bool {
	for _, selection := range criteria.Facets {
		if selection != "" && selection != types.SelectAll {
			return true
		}
	}
	return strings.TrimSpace(criteria.Query) != ""
}
