// Package dataset decodes the JSON collection files exported by the managed
// backend into the entity model. Each file is checked against its JSON Schema
// and every record structurally validated before it enters a collection; the
// engine downstream assumes well-typed data. This package only decodes and
// validates — it has no query language and persists nothing.
package dataset

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/workforce-directory/internal/schemas"
	"github.com/jonathan/workforce-directory/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Collection file names within a dataset directory. A missing file is a
// normal partial export and yields an empty collection.
const (
	JobsFile     = "jobs.json"
	EventsFile   = "events.json"
	TrainingFile = "training_programs.json"
	ProgramsFile = "provider_programs.json"
)

// Collections holds the four entity collections of one dataset export, in
// file order. The filter engine treats these as immutable inputs.
type Collections struct {
	Jobs             []types.Job
	Events           []types.Event
	TrainingPrograms []types.TrainingProgram
	ProviderPrograms []types.ProviderProgram
}

// Load reads the collection files under dir concurrently and returns the
// decoded, validated collections.
func Load(ctx context.Context, dir string) (*Collections, error) {
	var c Collections
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		c.Jobs, err = loadCollection(ctx, filepath.Join(dir, JobsFile), "jobs.schema.json", prepareJob)
		return err
	})
	g.Go(func() error {
		var err error
		c.Events, err = loadCollection(ctx, filepath.Join(dir, EventsFile), "events.schema.json", prepareEvent)
		return err
	})
	g.Go(func() error {
		var err error
		c.TrainingPrograms, err = loadCollection(ctx, filepath.Join(dir, TrainingFile), "training_programs.schema.json", prepareTraining)
		return err
	})
	g.Go(func() error {
		var err error
		c.ProviderPrograms, err = loadCollection(ctx, filepath.Join(dir, ProgramsFile), "provider_programs.schema.json", prepareProgram)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

// loadCollection reads, schema-checks, decodes, and record-validates one
// collection file. The prepare hook fills defaults (missing IDs) and runs the
// record's structural validation.
func loadCollection[T any](ctx context.Context, path, schemaName string, prepare func(*T) error) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := filepath.Base(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &LoadError{File: name, Cause: err}
	}

	schema, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return nil, &LoadError{File: name, Cause: fmt.Errorf("missing embedded schema %s: %w", schemaName, err)}
	}
	if err := schemas.ValidateBytes(schemaName, schema, data); err != nil {
		return nil, &LoadError{File: name, Cause: err}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{File: name, Cause: err}
	}

	for i := range records {
		if err := prepare(&records[i]); err != nil {
			return nil, &LoadError{File: name, Record: fmt.Sprintf("#%d", i), Cause: err}
		}
	}
	return records, nil
}

func prepareJob(j *types.Job) error {
	if j.ID == "" {
		j.ID = types.NewID()
	}
	return j.Validate()
}

func prepareEvent(e *types.Event) error {
	if e.ID == "" {
		e.ID = types.NewID()
	}
	return e.Validate()
}

func prepareTraining(p *types.TrainingProgram) error {
	if p.ID == "" {
		p.ID = types.NewID()
	}
	return p.Validate()
}

func prepareProgram(p *types.ProviderProgram) error {
	if p.ID == "" {
		p.ID = types.NewID()
	}
	if p.Status == "" {
		p.Status = types.StatusPending
	}
	return p.Validate()
}
