// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import "github.com/go-playground/validator/v10"

// TrainingProgram represents a published training program in the directory.
type TrainingProgram struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=1"`
	Provider    string   `json:"provider,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type" validate:"required"`
	Industries  []string `json:"industries,omitempty"`
	Format      string   `json:"format" validate:"required"`
	State       string   `json:"state" validate:"required"`
	StartDate   Date     `json:"start_date,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Cost        string   `json:"cost,omitempty"`
}

// Validate checks structural shape only (required fields present).
func (p *TrainingProgram) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ReviewStatus returns the review status for status aggregation. Training
// programs are published on arrival and carry no status field.
func (p TrainingProgram) ReviewStatus() string {
	return ""
}
