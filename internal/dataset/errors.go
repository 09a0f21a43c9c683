// Package dataset decodes the JSON collection files exported by the managed
// backend into the entity model.
package dataset

import "fmt"

// LoadError reports a failure while loading one collection file, carrying the
// file and, when known, the offending record.
type LoadError struct {
	File   string
	Record string
	Cause  error
}

func (e *LoadError) Error() string {
	if e.Record != "" {
		return fmt.Sprintf("dataset %s: record %s: %v", e.File, e.Record, e.Cause)
	}
	return fmt.Sprintf("dataset %s: %v", e.File, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
