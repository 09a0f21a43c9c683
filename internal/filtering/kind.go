// Package filtering implements the faceted filter engine shared by every
// listing page. Listing pages used to repeat near-identical predicate chains;
// here the matching algorithm is written once and entity kinds differ only in
// their facet-descriptor tables.
package filtering

import "github.com/jonathan/workforce-directory/internal/types"

// Facet describes one filterable attribute of an entity kind. Exactly one of
// Value or Values is set: Value for single-valued facets (equality match),
// Values for set-valued facets (membership match).
type Facet[T any] struct {
	Name   string
	Value  func(T) string
	Values func(T) []string
}

// Kind is the facet-descriptor table for one entity kind. State and Format
// feed the region predicate; Text is the haystack for free-text search.
type Kind[T any] struct {
	Name   string
	Facets []Facet[T]
	State  func(T) string
	Format func(T) string
	Text   func(T) string
}

// Jobs returns the descriptor table for job postings.
func Jobs() Kind[types.Job] {
	return Kind[types.Job]{
		Name: "jobs",
		Facets: []Facet[types.Job]{
			{Name: types.FacetCategory, Value: func(j types.Job) string { return j.Category }},
			{Name: types.FacetIndustry, Values: func(j types.Job) []string { return j.Industries }},
			{Name: types.FacetFormat, Value: func(j types.Job) string { return j.Format }},
		},
		State:  func(j types.Job) string { return j.State },
		Format: func(j types.Job) string { return j.Format },
		Text:   func(j types.Job) string { return j.Title + " " + j.Company + " " + j.Description },
	}
}

// Events returns the descriptor table for events. Events are the only kind
// with an audience facet.
func Events() Kind[types.Event] {
	return Kind[types.Event]{
		Name: "events",
		Facets: []Facet[types.Event]{
			{Name: types.FacetCategory, Value: func(e types.Event) string { return e.Category }},
			{Name: types.FacetIndustry, Values: func(e types.Event) []string { return e.Industries }},
			{Name: types.FacetAudience, Values: func(e types.Event) []string { return e.Audiences }},
			{Name: types.FacetFormat, Value: func(e types.Event) string { return e.Format }},
		},
		State:  func(e types.Event) string { return e.State },
		Format: func(e types.Event) string { return e.Format },
		Text:   func(e types.Event) string { return e.Title + " " + e.Description },
	}
}

// TrainingPrograms returns the descriptor table for training programs. Their
// primary facet is named "type" rather than "category".
func TrainingPrograms() Kind[types.TrainingProgram] {
	return Kind[types.TrainingProgram]{
		Name: "training",
		Facets: []Facet[types.TrainingProgram]{
			{Name: types.FacetType, Value: func(p types.TrainingProgram) string { return p.Type }},
			{Name: types.FacetIndustry, Values: func(p types.TrainingProgram) []string { return p.Industries }},
			{Name: types.FacetFormat, Value: func(p types.TrainingProgram) string { return p.Format }},
		},
		State:  func(p types.TrainingProgram) string { return p.State },
		Format: func(p types.TrainingProgram) string { return p.Format },
		Text:   func(p types.TrainingProgram) string { return p.Title + " " + p.Provider + " " + p.Description },
	}
}

// ProviderPrograms returns the descriptor table for provider-submitted
// programs, the only kind exposing a status facet.
func ProviderPrograms() Kind[types.ProviderProgram] {
	return Kind[types.ProviderProgram]{
		Name: "programs",
		Facets: []Facet[types.ProviderProgram]{
			{Name: types.FacetType, Value: func(p types.ProviderProgram) string { return p.Type }},
			{Name: types.FacetIndustry, Values: func(p types.ProviderProgram) []string { return p.Industries }},
			{Name: types.FacetFormat, Value: func(p types.ProviderProgram) string { return p.Format }},
			{Name: types.FacetStatus, Value: func(p types.ProviderProgram) string { return p.Status }},
		},
		State:  func(p types.ProviderProgram) string { return p.State },
		Format: func(p types.ProviderProgram) string { return p.Format },
		Text:   func(p types.ProviderProgram) string { return p.Title + " " + p.Provider + " " + p.Description },
	}
}
