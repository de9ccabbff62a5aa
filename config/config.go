// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Loader resolves configuration records from JSON documents. The zero value
// is usable and silent; use [NewLoader] to attach a logger that records
// skipped document keys at debug level.
type Loader struct {
	log zerolog.Logger
}

// NewLoader returns a *Loader that logs skipped keys through log.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log}
}

// Load resolves the record stored under id in the JSON document at path and
// verifies it contains every key in requiredKeys. It is a shorthand for a
// [Loader] with no logger.
func Load(path string, requiredKeys []string, id uuid.UUID) (Record, error) {
	return (&Loader{log: zerolog.Nop()}).Load(path, requiredKeys, id)
}

// Load resolves the record stored under id in the JSON document at path.
//
// The document's top level must be a JSON object. Its keys are matched
// against id by UUID value, not by string equality, so case and formatting
// variants of the same UUID all match. Keys that do not parse as UUIDs are
// skipped, never reported as errors. If several keys parse to the same UUID
// the first one encountered wins; iteration order is unspecified and callers
// must not rely on it.
//
// Failures, each wrapping its sentinel:
//   - ErrNotFound — path is not an existing file;
//   - ErrUnsupportedFormat — path does not end in ".json" (checked before
//     any read of the content);
//   - ErrKeyNotFound — no key of the document parses into id;
//   - ErrMissingKeys (as *MissingKeysError) — the matched record lacks one
//     or more of requiredKeys.
//
// The file is re-read on every call; nothing is cached.
func (l *Loader) Load(path string, requiredKeys []string, id uuid.UUID) (Record, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("%w: %s must be a .json file", ErrUnsupportedFormat, path)
	}

	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var entries map[string]json.RawMessage
	if err := json.NewDecoder(jsonFile).Decode(&entries); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	matched, err := l.matchEntry(entries, id)
	if err != nil {
		return nil, err
	}

	var record Record
	if err := json.Unmarshal(matched, &record); err != nil {
		return nil, fmt.Errorf("error decoding config entry %s: %w", id, err)
	}

	if err := CheckRequiredKeys(requiredKeys, record, "config"); err != nil {
		return nil, err
	}

	return record, nil
}

// matchEntry scans top-level document keys for the first one whose UUID
// value equals id. Non-UUID keys are skipped by design.
func (l *Loader) matchEntry(entries map[string]json.RawMessage, id uuid.UUID) (json.RawMessage, error) {
	for key, value := range entries {
		entryID, err := uuid.Parse(key)
		if err != nil {
			l.log.Debug().Str("key", key).Msg("skipping non-uuid config key")
			continue
		}

		if entryID == id {
			return value, nil
		}
	}

	return nil, fmt.Errorf("%w: %s not found as key in config", ErrKeyNotFound, id)
}

// CheckRequiredKeys verifies that mapping contains every key in
// requiredKeys. Duplicates in requiredKeys are tolerated.
//
// On failure it returns a *MissingKeysError naming all missing keys at once
// (sorted, so messages are deterministic), with mappingName appended to the
// message when non-empty.
func CheckRequiredKeys(requiredKeys []string, mapping map[string]any, mappingName string) error {
	seen := make(map[string]struct{}, len(requiredKeys))

	var missing []string
	for _, key := range requiredKeys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if _, ok := mapping[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return &MissingKeysError{MappingName: mappingName, Keys: missing}
}
