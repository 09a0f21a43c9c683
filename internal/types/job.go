// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import "github.com/go-playground/validator/v10"

// Job represents a published job posting in the directory.
type Job struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=1"`
	Company     string   `json:"company,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Industries  []string `json:"industries,omitempty"`
	Format      string   `json:"format" validate:"required"`
	State       string   `json:"state" validate:"required"`
	SalaryRange string   `json:"salary_range,omitempty"`
	PostedDate  Date     `json:"posted_date,omitempty"`
}

// Validate checks structural shape only (required fields present). Business rules
// such as tag vocabulary are an upstream data-quality concern.
func (j *Job) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}

// ReviewStatus returns the review status for status aggregation. Jobs are
// published on arrival and carry no status field.
func (j Job) ReviewStatus() string {
	return ""
}
