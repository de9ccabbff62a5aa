package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Record is a single configuration entry: field names mapped to arbitrary
// JSON values (strings, numbers, booleans, nulls, nested objects, arrays).
type Record map[string]any

// WithDefaults returns a copy of r filled in with every field from defaults
// that r does not already set. Fields present in r always win; neither input
// is mutated.
func (r Record) WithDefaults(defaults Record) (Record, error) {
	merged := make(Record, len(r)+len(defaults))
	for key, value := range r {
		merged[key] = value
	}

	if err := mergo.Merge(&merged, defaults); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return merged, nil
}
