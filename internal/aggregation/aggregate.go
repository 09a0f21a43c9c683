// Package aggregation computes the derived statistics listing pages and the
// state explorer display: status counts, capacity fill, and date labels.
// Every function is pure and total over well-formed input; date-dependent
// functions take the reference date explicitly instead of reading a clock.
package aggregation

import (
	"fmt"
	"math"

	"github.com/jonathan/workforce-directory/internal/types"
)

// Day-difference labels returned by DaysUntil.
const (
	LabelPast     = "Past"
	LabelToday    = "Today"
	LabelTomorrow = "Tomorrow"
)

// Statuser is implemented by entity kinds that report a review status.
// Kinds without a status field report the empty string.
type Statuser interface {
	ReviewStatus() string
}

// CountByStatus groups a collection by review status. An absent status counts
// as approved: kinds without the field are published on arrival.
func CountByStatus[T Statuser](items []T) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		status := item.ReviewStatus()
		if status == "" {
			status = types.StatusApproved
		}
		counts[status]++
	}
	return counts
}

// FillPercentage returns attendees as a percentage of capacity, rounded and
// clamped to [0,100]. Zero capacity yields 0 rather than a division error;
// displayed values depend on this exact policy.
func FillPercentage(event types.Event) int {
	if event.Capacity <= 0 {
		return 0
	}
	pct := int(math.Round(float64(event.Attendees) / float64(event.Capacity) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// DaysUntil labels the whole-day distance from today to date: "Past",
// "Today", "Tomorrow", or "In N days".
func DaysUntil(date, today types.Date) string {
	days := date.DaysSince(today)
	switch {
	case days < 0:
		return LabelPast
	case days == 0:
		return LabelToday
	case days == 1:
		return LabelTomorrow
	default:
		return fmt.Sprintf("In %d days", days)
	}
}

// FormatDateRange renders an event's date span: "Mar 1 – March 3, 2025" for a
// multi-day event, the single long-form date otherwise.
func FormatDateRange(date types.Date, end *types.Date) string {
	if date.IsZero() {
		return ""
	}
	if end != nil && !end.IsZero() && !end.Equal(date) {
		return date.Format("Jan 2") + " – " + end.Format("January 2, 2006")
	}
	return date.Format("January 2, 2006")
}

// OpenPositions sums the open positions across a profile's employers, the
// headline figure on the state explorer.
func OpenPositions(profile types.StateProfile) int {
	total := 0
	for _, employer := range profile.Employers {
		total += employer.OpenPositions
	}
	return total
}
