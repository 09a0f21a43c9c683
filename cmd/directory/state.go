package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/regions"
)

var stateCommand = &cobra.Command{
	Use:   "state <code>",
	Short: "Show the workforce-intelligence profile for a state",
	Long:  "Shows the authored workforce profile for a two-letter state code: primary industry, hub cities, employers, training providers, and the career pathway ladder. Most states have no authored profile yet; that is reported, not treated as an error.",
	Args:  cobra.ExactArgs(1),
	RunE:  runStateCmd,
}

func init() {
	rootCmd.AddCommand(stateCommand)
}

func runStateCmd(_ *cobra.Command, args []string) error {
	code := strings.ToUpper(args[0])

	table, err := regions.Default()
	if err != nil {
		return fmt.Errorf("failed to load region tables: %w", err)
	}

	region, ok := table.RegionOf(code)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: %s is not a known state code\n", code)
	} else {
		fmt.Printf("%s — %s region\n", code, region)
	}

	profile, ok := table.ProfileOf(code)
	if !ok {
		fmt.Printf("No workforce data for %s yet. Profiled states: %s\n",
			code, strings.Join(table.ProfiledStates(), ", "))
		return nil
	}

	printer := newStdoutPrinter()
	printer.PrintStateProfile(profile)
	return nil
}
