package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCriteria_FacetDefaultsToAll(t *testing.T) {
	criteria := NewFilterCriteria()
	assert.Equal(t, SelectAll, criteria.Facet(FacetCategory))

	var zero FilterCriteria
	assert.Equal(t, SelectAll, zero.Facet(FacetRegion), "zero-value criteria is usable")
}

func TestFilterCriteria_WithFacetCopies(t *testing.T) {
	base := NewFilterCriteria()
	narrowed := base.WithFacet(FacetCategory, "job-fair")

	assert.Equal(t, "job-fair", narrowed.Facet(FacetCategory))
	assert.Equal(t, SelectAll, base.Facet(FacetCategory), "original criteria unchanged")
}

func TestFilterCriteria_WithQueryCopies(t *testing.T) {
	base := NewFilterCriteria().WithFacet(FacetFormat, FormatVirtual)
	queried := base.WithQuery("solar")

	assert.Equal(t, "solar", queried.Query)
	assert.Equal(t, FormatVirtual, queried.Facet(FacetFormat))
	assert.Empty(t, base.Query)
}
