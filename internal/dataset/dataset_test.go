package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/workforce-directory/internal/types"
)

func writeDatasetFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_DecodesCollectionsInFileOrder(t *testing.T) {
	dir := t.TempDir()
	writeDatasetFile(t, dir, JobsFile, `[
		{"id": "J1", "title": "Fab Operator", "category": "manufacturing", "format": "in-person", "state": "AZ"},
		{"id": "J2", "title": "Solar Installer", "category": "construction", "format": "in-person", "state": "CA"}
	]`)
	writeDatasetFile(t, dir, EventsFile, `[
		{"id": "E1", "title": "Job Fair", "category": "job-fair", "format": "in-person", "state": "AZ", "date": "2025-03-10", "capacity": 200, "attendees": 80}
	]`)

	collections, err := Load(context.Background(), dir)
	require.NoError(t, err)

	require.Len(t, collections.Jobs, 2)
	assert.Equal(t, []string{"J1", "J2"}, []string{collections.Jobs[0].ID, collections.Jobs[1].ID},
		"file order is preserved")
	require.Len(t, collections.Events, 1)
	assert.Equal(t, "2025-03-10", collections.Events[0].Date.String())
	assert.Empty(t, collections.TrainingPrograms, "missing files yield empty collections")
	assert.Empty(t, collections.ProviderPrograms)
}

func TestLoad_MintsMissingIDs(t *testing.T) {
	dir := t.TempDir()
	writeDatasetFile(t, dir, JobsFile, `[
		{"title": "Fab Operator", "category": "manufacturing", "format": "in-person", "state": "AZ"}
	]`)

	collections, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, collections.Jobs, 1)
	assert.NotEmpty(t, collections.Jobs[0].ID)
}

func TestLoad_DefaultsSubmissionStatusToPending(t *testing.T) {
	dir := t.TempDir()
	writeDatasetFile(t, dir, ProgramsFile, `[
		{"id": "P1", "title": "Welding Certificate", "provider": "Desert Tech", "type": "certificate", "format": "hybrid", "state": "AZ"}
	]`)

	collections, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, collections.ProviderPrograms, 1)
	assert.Equal(t, types.StatusPending, collections.ProviderPrograms[0].Status)
}

func TestLoad_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	// category missing entirely
	writeDatasetFile(t, dir, JobsFile, `[
		{"id": "J1", "title": "Fab Operator", "format": "in-person", "state": "AZ"}
	]`)

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, JobsFile, loadErr.File)
}

func TestLoad_RecordValidation(t *testing.T) {
	dir := t.TempDir()
	// schema-valid shape, but end_date precedes date
	writeDatasetFile(t, dir, EventsFile, `[
		{"id": "E1", "title": "Job Fair", "category": "job-fair", "format": "in-person", "state": "AZ", "date": "2025-03-10", "end_date": "2025-03-01"}
	]`)

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, EventsFile, loadErr.File)
	assert.Equal(t, "#0", loadErr.Record)
}

func TestLoad_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeDatasetFile(t, dir, TrainingFile, `{not json`)

	_, err := Load(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, TrainingFile, loadErr.File)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	collections, err := Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, collections.Jobs)
	assert.Empty(t, collections.Events)
	assert.Empty(t, collections.TrainingPrograms)
	assert.Empty(t, collections.ProviderPrograms)
}
