package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/filtering"
)

var trainingFlags commonFlags

var trainingCommand = &cobra.Command{
	Use:   "training",
	Short: "List training programs matching the selected facets",
	RunE:  runTrainingCmd,
}

func init() {
	registerCommonFlags(trainingCommand, &trainingFlags)
	trainingCommand.Flags().StringVarP(&trainingFlags.typeName, "type", "t", "", "Program type facet (e.g. apprenticeship, bootcamp, certificate)")
	trainingCommand.Flags().StringVarP(&trainingFlags.industry, "industry", "i", "", "Industry tag facet")
	trainingCommand.Flags().StringVarP(&trainingFlags.format, "format", "f", "", "Format facet: in-person, virtual, or hybrid")

	rootCmd.AddCommand(trainingCommand)
}

func runTrainingCmd(_ *cobra.Command, _ []string) error {
	env, err := newAppEnv(&trainingFlags)
	if err != nil {
		return err
	}

	criteria := trainingFlags.criteria()
	engine := filtering.NewEngine(filtering.TrainingPrograms(), env.table)
	engine.OnUnknownRegion(warnUnknownRegion)

	programs := engine.Filter(env.data.TrainingPrograms, criteria)
	if env.verbose {
		env.printer.PrintTrainingPrograms(programs)
	} else {
		for _, program := range programs {
			fmt.Printf("%-40s %s  %s\n", program.Title, program.State, program.Format)
		}
	}
	printResetHint(criteria)
	return nil
}
