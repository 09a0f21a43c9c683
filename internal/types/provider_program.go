// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import "github.com/go-playground/validator/v10"

// ProviderProgram represents an education-provider program submission awaiting or
// past review. Unlike the published kinds it carries an explicit review status.
type ProviderProgram struct {
	ID            string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"required,min=1"`
	Provider      string   `json:"provider" validate:"required"`
	Description   string   `json:"description,omitempty"`
	Type          string   `json:"type" validate:"required"`
	Industries    []string `json:"industries,omitempty"`
	Format        string   `json:"format" validate:"required"`
	State         string   `json:"state" validate:"required"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
	SubmittedDate Date     `json:"submitted_date,omitempty"`
}

// Validate checks structural shape and that any status uses the review vocabulary.
func (p *ProviderProgram) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ReviewStatus returns the review status for status aggregation. An absent
// status is reported as-is; aggregation applies the published-default policy.
func (p ProviderProgram) ReviewStatus() string {
	return p.Status
}
