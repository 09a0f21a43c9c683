package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/aggregation"
	"github.com/jonathan/workforce-directory/internal/filtering"
)

var eventsFlags commonFlags

var eventsCommand = &cobra.Command{
	Use:   "events",
	Short: "List events matching the selected facets",
	RunE:  runEventsCmd,
}

func init() {
	registerCommonFlags(eventsCommand, &eventsFlags)
	eventsCommand.Flags().StringVarP(&eventsFlags.category, "category", "c", "", "Event category facet (e.g. job-fair, webinar, workshop)")
	eventsCommand.Flags().StringVarP(&eventsFlags.industry, "industry", "i", "", "Industry tag facet")
	eventsCommand.Flags().StringVarP(&eventsFlags.audience, "audience", "a", "", "Audience tag facet (e.g. veterans, students)")
	eventsCommand.Flags().StringVarP(&eventsFlags.format, "format", "f", "", "Format facet: in-person, virtual, or hybrid")

	rootCmd.AddCommand(eventsCommand)
}

func runEventsCmd(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv(&eventsFlags)
	if err != nil {
		return err
	}

	criteria := eventsFlags.criteria()
	engine := filtering.NewEngine(filtering.Events(), env.table)
	engine.OnUnknownRegion(warnUnknownRegion)

	events := engine.Filter(env.data.Events, criteria)
	if env.verbose {
		env.printer.PrintEvents(events, env.today)
	} else {
		for _, event := range events {
			fmt.Printf("%-40s %-12s %s\n",
				event.Title, aggregation.DaysUntil(event.Date, env.today), event.State)
		}
	}
	printResetHint(criteria)
	return nil
}
