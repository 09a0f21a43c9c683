// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import "github.com/google/uuid"

// SelectAll is the sentinel facet value meaning "impose no constraint".
const SelectAll = "all"

// StateNational is the sentinel state code for nationwide or virtual-only items.
const StateNational = "National"

// Facet names shared across entity kinds. Not every kind exposes every facet;
// the filter engine's kind descriptors declare which apply.
const (
	FacetCategory = "category"
	FacetType     = "type"
	FacetIndustry = "industry"
	FacetAudience = "audience"
	FacetFormat   = "format"
	FacetRegion   = "region"
	FacetStatus   = "status"
)

// Review statuses for provider-submitted programs.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Delivery formats used by the format facet.
const (
	FormatInPerson = "in-person"
	FormatVirtual  = "virtual"
	FormatHybrid   = "hybrid"
)

// NewID mints a unique identifier for records created without one.
func NewID() string {
	return uuid.NewString()
}

// FilterCriteria carries the facet selections and free-text query a listing page
// applies to a collection. A facet absent from Facets, or set to SelectAll, imposes
// no constraint. The engine treats criteria as immutable; With* helpers copy.
type FilterCriteria struct {
	Facets map[string]string `json:"facets,omitempty"`
	Query  string            `json:"query,omitempty"`
}

// NewFilterCriteria returns criteria with every facet at its default.
func NewFilterCriteria() FilterCriteria {
	return FilterCriteria{Facets: make(map[string]string)}
}

// Facet returns the selection for the named facet, defaulting to SelectAll.
func (c FilterCriteria) Facet(name string) string {
	if c.Facets == nil {
		return SelectAll
	}
	if v, ok := c.Facets[name]; ok && v != "" {
		return v
	}
	return SelectAll
}

// WithFacet returns a copy of the criteria with the named facet set.
func (c FilterCriteria) WithFacet(name, value string) FilterCriteria {
	facets := make(map[string]string, len(c.Facets)+1)
	for k, v := range c.Facets {
		facets[k] = v
	}
	facets[name] = value
	return FilterCriteria{Facets: facets, Query: c.Query}
}

// WithQuery returns a copy of the criteria with the free-text query set.
func (c FilterCriteria) WithQuery(query string) FilterCriteria {
	facets := make(map[string]string, len(c.Facets))
	for k, v := range c.Facets {
		facets[k] = v
	}
	return FilterCriteria{Facets: facets, Query: query}
}
