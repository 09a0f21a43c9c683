// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import "github.com/go-playground/validator/v10"

// StateProfile holds the authored workforce-intelligence data for one state:
// its primary industry, hub cities, salary bands, in-demand skills, employers,
// training providers, and the career pathway ladder. Profiles are seeded once at
// startup and never mutated.
type StateProfile struct {
	State             string             `json:"state" validate:"required,len=2"`
	Industry          string             `json:"industry" validate:"required"`
	Hubs              []string           `json:"hubs,omitempty"`
	SalaryBands       map[string]string  `json:"salary_bands,omitempty"`
	Skills            []string           `json:"skills,omitempty"`
	Employers         []Employer         `json:"employers,omitempty" validate:"omitempty,dive"`
	TrainingProviders []TrainingProvider `json:"training_providers,omitempty" validate:"omitempty,dive"`
	Pathways          []PathwayLevel     `json:"pathways,omitempty" validate:"omitempty,dive"`
}

// Employer is one employer row in a state profile.
type Employer struct {
	Name          string `json:"name" validate:"required"`
	OpenPositions int    `json:"open_positions" validate:"gte=0"`
	GrowthRate    string `json:"growth_rate,omitempty"`
}

// TrainingProvider is one training-provider row in a state profile.
// PlacementRate is optional; absent means "not reported".
type TrainingProvider struct {
	Name          string `json:"name" validate:"required"`
	Type          string `json:"type,omitempty"`
	Duration      string `json:"duration,omitempty"`
	Cost          string `json:"cost,omitempty"`
	PlacementRate string `json:"placement_rate,omitempty"`
}

// PathwayLevel is one rung of a state's career ladder. Levels are authored in
// ladder order (entry level first, most senior last) and a present level always
// lists at least one role.
type PathwayLevel struct {
	Level string        `json:"level" validate:"required"`
	Roles []PathwayRole `json:"roles" validate:"required,min=1,dive"`
}

// PathwayRole is a candidate role within a pathway level.
type PathwayRole struct {
	Title       string `json:"title" validate:"required"`
	SalaryRange string `json:"salary_range,omitempty"`
	Prereq      string `json:"prereq,omitempty"`
}

// Validate checks structural shape, including that no pathway level is empty.
func (s *StateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}
