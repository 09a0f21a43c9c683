package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/filtering"
)

var jobsFlags commonFlags

var jobsCommand = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings matching the selected facets",
	RunE:  runJobsCmd,
}

func init() {
	registerCommonFlags(jobsCommand, &jobsFlags)
	jobsCommand.Flags().StringVarP(&jobsFlags.category, "category", "c", "", "Job category facet (e.g. engineering, healthcare)")
	jobsCommand.Flags().StringVarP(&jobsFlags.industry, "industry", "i", "", "Industry tag facet")
	jobsCommand.Flags().StringVarP(&jobsFlags.format, "format", "f", "", "Format facet: in-person, virtual, or hybrid")

	rootCmd.AddCommand(jobsCommand)
}

func runJobsCmd(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv(&jobsFlags)
	if err != nil {
		return err
	}

	criteria := jobsFlags.criteria()
	engine := filtering.NewEngine(filtering.Jobs(), env.table)
	engine.OnUnknownRegion(warnUnknownRegion)

	jobs := engine.Filter(env.data.Jobs, criteria)
	if env.verbose {
		env.printer.PrintJobs(jobs)
	} else {
		for _, job := range jobs {
			fmt.Printf("%-40s %s  %s\n", job.Title, job.State, job.Format)
		}
	}
	printResetHint(criteria)
	return nil
}
