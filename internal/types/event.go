// Package types provides type definitions for the entity model shared across the
// workforce-directory engine.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Event represents a workforce event (job fair, webinar, workshop) in the directory.
type Event struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Industries  []string `json:"industries,omitempty"`
	Audiences   []string `json:"audiences,omitempty"`
	Format      string   `json:"format" validate:"required"`
	State       string   `json:"state" validate:"required"`
	Date        Date     `json:"date" validate:"required"`
	EndDate     *Date    `json:"end_date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Capacity    int      `json:"capacity" validate:"gte=0"`
	Attendees   int      `json:"attendees" validate:"gte=0"`
}

// Validate checks structural shape and the end-date ordering boundary assertion.
// Attendees exceeding capacity is legal; display-side fill percentage clamps.
func (e *Event) Validate() error {
	validate := validator.New()
	if err := validate.Struct(e); err != nil {
		return err
	}
	if e.EndDate != nil && e.EndDate.Before(e.Date) {
		return fmt.Errorf("event %s: end_date %s is before date %s", e.ID, e.EndDate, e.Date)
	}
	return nil
}

// ReviewStatus returns the review status for status aggregation. Events are
// published on arrival and carry no status field.
func (e Event) ReviewStatus() string {
	return ""
}
