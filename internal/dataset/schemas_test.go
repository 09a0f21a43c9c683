package dataset

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/workforce-directory/internal/schemas"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	schemaFileNames := []string{
		"jobs.schema.json",
		"events.schema.json",
		"training_programs.schema.json",
		"provider_programs.schema.json",
	}

	for _, name := range schemaFileNames {
		t.Run(name, func(t *testing.T) {
			data, err := schemaFiles.ReadFile(name)
			require.NoError(t, err, "should be able to read embedded schema")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", name)
		})
	}
}

func TestEmbeddedSchemas_ValidJSONSchema(t *testing.T) {
	schemaFileNames := []string{
		"jobs.schema.json",
		"events.schema.json",
		"training_programs.schema.json",
		"provider_programs.schema.json",
	}

	for _, name := range schemaFileNames {
		t.Run(name, func(t *testing.T) {
			data, err := schemaFiles.ReadFile(name)
			require.NoError(t, err)
			assert.NoError(t, schemas.CheckSchema(name, data))
		})
	}
}
