// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/workforce-directory/internal/aggregation"
	"github.com/jonathan/workforce-directory/internal/regions"
	"github.com/jonathan/workforce-directory/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJobs outputs a human-readable listing of filtered job postings.
func (p *Printer) PrintJobs(jobs []types.Job) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matching jobs: %d\n\n", len(jobs)))

	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", job.Title))
		sb.WriteString(fmt.Sprintf("  %s | %s | %s\n", job.Company, job.State, job.Format))
		if job.SalaryRange != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", job.SalaryRange))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("JOB POSTINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvents outputs filtered events with date labels and capacity fill.
// The reference date is threaded in so output is reproducible.
func (p *Printer) PrintEvents(events []types.Event, today types.Date) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matching events: %d\n\n", len(events)))

	count := min(len(events), maxItemsToShow)
	for i := 0; i < count; i++ {
		event := events[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)\n", event.Title, event.Category))
		sb.WriteString(fmt.Sprintf("  %s — %s\n",
			aggregation.FormatDateRange(event.Date, event.EndDate),
			aggregation.DaysUntil(event.Date, today)))
		if event.Capacity > 0 {
			sb.WriteString(fmt.Sprintf("  %d%% full (%d/%d)\n",
				aggregation.FillPercentage(event), event.Attendees, event.Capacity))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(events) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more events", len(events)-maxItemsToShow))
	}

	p.printBox("EVENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrainingPrograms outputs filtered training programs.
func (p *Printer) PrintTrainingPrograms(programs []types.TrainingProgram) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matching programs: %d\n\n", len(programs)))

	count := min(len(programs), maxItemsToShow)
	for i := 0; i < count; i++ {
		program := programs[i]
		sb.WriteString(fmt.Sprintf("• %s\n", program.Title))
		sb.WriteString(fmt.Sprintf("  %s | %s | %s\n", program.Provider, program.State, program.Format))
		if program.Duration != "" || program.Cost != "" {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", program.Duration, program.Cost))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(programs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more programs", len(programs)-maxItemsToShow))
	}

	p.printBox("TRAINING PROGRAMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProviderPrograms outputs filtered submissions plus the review summary.
func (p *Printer) PrintProviderPrograms(programs []types.ProviderProgram) {
	var sb strings.Builder

	counts := aggregation.CountByStatus(programs)
	statuses := make([]string, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	parts := make([]string, 0, len(statuses))
	for _, status := range statuses {
		parts = append(parts, fmt.Sprintf("%s: %d", status, counts[status]))
	}
	sb.WriteString(fmt.Sprintf("Submissions: %d (%s)\n\n", len(programs), strings.Join(parts, ", ")))

	count := min(len(programs), maxItemsToShow)
	for i := 0; i < count; i++ {
		program := programs[i]
		sb.WriteString(fmt.Sprintf("• %s [%s]\n", program.Title, program.Status))
		sb.WriteString(fmt.Sprintf("  %s | %s\n", program.Provider, program.State))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(programs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more submissions", len(programs)-maxItemsToShow))
	}

	p.printBox("PROVIDER SUBMISSIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStateProfile outputs the workforce-intelligence explorer view for one
// state: industry, employers, training providers, and the pathway ladder.
func (p *Printer) PrintStateProfile(profile types.StateProfile) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Industry: %s\n", profile.Industry))
	if len(profile.Hubs) > 0 {
		sb.WriteString(fmt.Sprintf("Hubs:     %s\n", strings.Join(profile.Hubs, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Open positions: %d\n", aggregation.OpenPositions(profile)))
	sb.WriteString("\n")

	if len(profile.Employers) > 0 {
		sb.WriteString("Employers:\n")
		for _, employer := range profile.Employers {
			sb.WriteString(fmt.Sprintf("  • %s — %d open", employer.Name, employer.OpenPositions))
			if employer.GrowthRate != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", employer.GrowthRate))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(profile.TrainingProviders) > 0 {
		sb.WriteString("Training providers:\n")
		for _, provider := range profile.TrainingProviders {
			sb.WriteString(fmt.Sprintf("  • %s", provider.Name))
			if provider.PlacementRate != "" {
				sb.WriteString(fmt.Sprintf(" — %s placement", provider.PlacementRate))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	ladder := regions.PathwayLadder(profile)
	if len(ladder) > 0 {
		sb.WriteString("Career pathway:\n")
		for _, level := range ladder {
			sb.WriteString(fmt.Sprintf("  %s\n", level.Level))
			for _, role := range level.Roles {
				sb.WriteString(fmt.Sprintf("    • %s  %s\n", role.Title, role.SalaryRange))
			}
		}
	}

	p.printBox(fmt.Sprintf("STATE PROFILE: %s", profile.State), strings.TrimSuffix(sb.String(), "\n"))
}
