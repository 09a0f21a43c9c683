package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/workforce-directory/internal/config"
	"github.com/jonathan/workforce-directory/internal/dataset"
	"github.com/jonathan/workforce-directory/internal/filtering"
	"github.com/jonathan/workforce-directory/internal/observability"
	"github.com/jonathan/workforce-directory/internal/regions"
	"github.com/jonathan/workforce-directory/internal/types"
)

// commonFlags are the flags shared by every listing command. Commands register
// only the facets their entity kind exposes.
type commonFlags struct {
	configPath string
	datasetDir string
	category   string
	typeName   string
	industry   string
	audience   string
	format     string
	region     string
	status     string
	query      string
	today      string
	verbose    bool
}

// criteria assembles FilterCriteria from whichever facet flags were set.
// Unset facets stay at the "all" default.
func (f *commonFlags) criteria() types.FilterCriteria {
	criteria := types.NewFilterCriteria()
	set := func(name, value string) {
		if value != "" {
			criteria = criteria.WithFacet(name, value)
		}
	}
	set(types.FacetCategory, f.category)
	set(types.FacetType, f.typeName)
	set(types.FacetIndustry, f.industry)
	set(types.FacetAudience, f.audience)
	set(types.FacetFormat, f.format)
	set(types.FacetRegion, f.region)
	set(types.FacetStatus, f.status)
	return criteria.WithQuery(f.query)
}

// appEnv bundles the loaded dataset, reference tables, and output helpers a
// command needs.
type appEnv struct {
	data    *dataset.Collections
	table   *regions.Table
	today   types.Date
	printer *observability.Printer
	verbose bool
}

// newAppEnv resolves config (file, env, flags), loads the dataset, and builds
// the region table.
func newAppEnv(f *commonFlags) (*appEnv, error) {
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	flagCfg := config.Config{
		DatasetDir: f.datasetDir,
		Region:     f.region,
		Today:      f.today,
		Verbose:    f.verbose,
	}
	cfg = flagCfg.MergeWithDefaults(cfg)

	if cfg.DatasetDir == "" {
		cfg.DatasetDir = os.Getenv("DATASET_DIR")
	}
	if cfg.DatasetDir == "" {
		return nil, fmt.Errorf("no dataset directory: pass --dataset, set DATASET_DIR, or use a config file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if f.region == "" && cfg.Region != "" {
		f.region = cfg.Region
	}

	today := types.DateOf(time.Now())
	if cfg.Today != "" {
		parsed, err := types.ParseDate(cfg.Today)
		if err != nil {
			return nil, err
		}
		today = parsed
	}

	table, err := regions.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load region tables: %w", err)
	}

	data, err := dataset.Load(context.Background(), cfg.DatasetDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	return &appEnv{
		data:    data,
		table:   table,
		today:   today,
		printer: observability.NewPrinter(os.Stdout),
		verbose: f.verbose || cfg.Verbose,
	}, nil
}

// newStdoutPrinter builds the Printer commands write formatted output to.
func newStdoutPrinter() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}

// warnUnknownRegion is the OnUnknownRegion hook wired into every engine:
// a bad region facet degrades to "all" and surfaces as a warning.
func warnUnknownRegion(region string) {
	fmt.Fprintf(os.Stderr, "warning: unknown region %q in filter criteria; showing all regions\n", region)
}

// printResetHint tells the user a reset affordance applies, mirroring the
// listing pages' reset control.
func printResetHint(criteria types.FilterCriteria) {
	if filtering.HasActiveFilters(criteria) {
		fmt.Println("(filters active — drop facet flags to reset)")
	}
}

// registerCommonFlags wires the flags every listing command shares.
func registerCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	cmd.Flags().StringVarP(&f.datasetDir, "dataset", "d", "", "Directory holding the exported dataset files (defaults to DATASET_DIR env var)")
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "Region facet: a named region, 'national', or 'all'")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Free-text search over titles and descriptions")
	cmd.Flags().StringVar(&f.today, "today", "", "Reference date (YYYY-MM-DD) for day labels; defaults to the current date")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed formatted output")
}
