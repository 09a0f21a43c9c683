package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/aggregation"
	"github.com/jonathan/workforce-directory/internal/filtering"
)

var programsFlags commonFlags

var programsCommand = &cobra.Command{
	Use:   "programs",
	Short: "List provider program submissions and their review summary",
	RunE:  runProgramsCmd,
}

func init() {
	registerCommonFlags(programsCommand, &programsFlags)
	programsCommand.Flags().StringVarP(&programsFlags.typeName, "type", "t", "", "Program type facet")
	programsCommand.Flags().StringVarP(&programsFlags.industry, "industry", "i", "", "Industry tag facet")
	programsCommand.Flags().StringVarP(&programsFlags.format, "format", "f", "", "Format facet: in-person, virtual, or hybrid")
	programsCommand.Flags().StringVarP(&programsFlags.status, "status", "s", "", "Review status facet: pending, approved, or rejected")

	rootCmd.AddCommand(programsCommand)
}

func runProgramsCmd(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv(&programsFlags)
	if err != nil {
		return err
	}

	criteria := programsFlags.criteria()
	engine := filtering.NewEngine(filtering.ProviderPrograms(), env.table)
	engine.OnUnknownRegion(warnUnknownRegion)

	programs := engine.Filter(env.data.ProviderPrograms, criteria)
	if env.verbose {
		env.printer.PrintProviderPrograms(programs)
	} else {
		counts := aggregation.CountByStatus(programs)
		statuses := make([]string, 0, len(counts))
		for status := range counts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		parts := make([]string, 0, len(statuses))
		for _, status := range statuses {
			parts = append(parts, fmt.Sprintf("%s %d", status, counts[status]))
		}
		fmt.Printf("%d submissions (%s)\n", len(programs), strings.Join(parts, ", "))

		for _, program := range programs {
			fmt.Printf("%-40s %-9s %s\n", program.Title, program.Status, program.Provider)
		}
	}
	printResetHint(criteria)
	return nil
}
