// Package regions resolves state codes to geographic regions and to authored
// state workforce profiles.
package regions

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/workforce-directory/internal/schemas"
	"github.com/jonathan/workforce-directory/internal/types"
)

//go:embed *.json
var seedFiles embed.FS

var (
	defaultTable *Table
	defaultErr   error
	loadOnce     sync.Once
)

// SeedError reports a problem in the embedded reference data. It only occurs
// when the seed files shipped with the binary are inconsistent.
type SeedError struct {
	File  string
	Cause error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("bad seed data in %s: %v", e.File, e.Cause)
}

func (e *SeedError) Unwrap() error {
	return e.Cause
}

// Default returns the table built from the embedded seed files. The seed is
// loaded and validated once; later calls reuse the same read-only table, which
// is safe to share across goroutines.
func Default() (*Table, error) {
	loadOnce.Do(func() {
		defaultTable, defaultErr = load()
	})
	return defaultTable, defaultErr
}

// MustDefault is Default for callers that treat seed errors as fatal at startup.
func MustDefault() *Table {
	table, err := Default()
	if err != nil {
		panic(fmt.Sprintf("failed to load region seed data: %v", err))
	}
	return table
}

func load() (*Table, error) {
	members, err := loadMembers()
	if err != nil {
		return nil, err
	}

	owners := make(map[string]string)
	for region, states := range members {
		for _, state := range states {
			if prev, taken := owners[state]; taken {
				return nil, &SeedError{
					File:  "regions.json",
					Cause: fmt.Errorf("state %s claimed by both %s and %s", state, prev, region),
				}
			}
			owners[state] = region
		}
	}

	profiles, err := loadProfiles(owners)
	if err != nil {
		return nil, err
	}

	return &Table{members: members, owners: owners, profiles: profiles}, nil
}

func loadMembers() (map[string][]string, error) {
	data, schema, err := readSeed("regions.json", "regions.schema.json")
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateBytes("regions.schema.json", schema, data); err != nil {
		return nil, &SeedError{File: "regions.json", Cause: err}
	}

	var members map[string][]string
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, &SeedError{File: "regions.json", Cause: err}
	}
	return members, nil
}

func loadProfiles(owners map[string]string) (map[string]types.StateProfile, error) {
	data, schema, err := readSeed("state_profiles.json", "state_profiles.schema.json")
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateBytes("state_profiles.schema.json", schema, data); err != nil {
		return nil, &SeedError{File: "state_profiles.json", Cause: err}
	}

	var list []types.StateProfile
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, &SeedError{File: "state_profiles.json", Cause: err}
	}

	profiles := make(map[string]types.StateProfile, len(list))
	for i := range list {
		profile := list[i]
		if err := profile.Validate(); err != nil {
			return nil, &SeedError{
				File:  "state_profiles.json",
				Cause: fmt.Errorf("profile %s: %w", profile.State, err),
			}
		}
		if _, ok := owners[profile.State]; !ok {
			return nil, &SeedError{
				File:  "state_profiles.json",
				Cause: fmt.Errorf("profile %s references a state outside every region", profile.State),
			}
		}
		if _, dup := profiles[profile.State]; dup {
			return nil, &SeedError{
				File:  "state_profiles.json",
				Cause: fmt.Errorf("duplicate profile for state %s", profile.State),
			}
		}
		profiles[profile.State] = profile
	}
	return profiles, nil
}

func readSeed(dataFile, schemaFile string) (data, schema []byte, err error) {
	data, err = seedFiles.ReadFile(dataFile)
	if err != nil {
		return nil, nil, &SeedError{File: dataFile, Cause: err}
	}
	schema, err = seedFiles.ReadFile(schemaFile)
	if err != nil {
		return nil, nil, &SeedError{File: schemaFile, Cause: err}
	}
	return data, schema, nil
}
