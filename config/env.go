// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
)

// Source is a key-value lookup over environment-style variables. It stands
// in for direct os.Getenv calls so resolution logic stays testable without
// touching the real process environment.
type Source interface {
	// Lookup returns the value of the named variable and whether it is set.
	Lookup(key string) (string, bool)
	// Environ returns all variables as a map.
	Environ() map[string]string
}

// OSEnv is the [Source] backed by the process environment.
type OSEnv struct{}

func (OSEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (OSEnv) Environ() map[string]string {
	environ := os.Environ()
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if name, value, ok := strings.Cut(kv, "="); ok {
			vars[name] = value
		}
	}

	return vars
}

// MapSource is a map-backed [Source], handy in tests and for values parsed
// out of env-format text by [ParseEnvString].
type MapSource map[string]string

func (m MapSource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

func (m MapSource) Environ() map[string]string {
	return m
}

// ParseEnvString parses multi-line KEY=VALUE text (the dotenv shape) into a
// [MapSource]. Quotation marks are removed, surrounding whitespace is
// trimmed, and blank lines or lines without an assignment are ignored.
func ParseEnvString(envString string) MapSource {
	vars := make(MapSource)
	for _, line := range strings.Split(strings.ReplaceAll(envString, `"`, ""), "\n") {
		name, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}

		vars[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return vars
}

// LoadIDFromEnv reads the named variable from src and parses it as a UUID.
//
// Fails with ErrNotFound when the variable is unset and ErrInvalidFormat
// when its value is not a valid UUID.
func LoadIDFromEnv(src Source, name string) (uuid.UUID, error) {
	value, ok := src.Lookup(name)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s not found in environment variables", ErrNotFound, name)
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: the value of %s is not a valid UUID", ErrInvalidFormat, name)
	}

	return id, nil
}

// Locator tells the resolver where the configuration document lives and
// which record to fetch from it. Populated from a [Source] via caarlos0/env
// struct tags.
type Locator struct {
	// Path is the JSON config file path.
	// Env: CONFIG
	Path string `env:"CONFIG"`

	// ID is the UUID of the record to resolve.
	// Env: CONFIG_UUID
	ID uuid.UUID `env:"CONFIG_UUID"`

	// RequiredKeys optionally lists keys the resolved record must contain,
	// comma-separated.
	// Env: CONFIG_REQUIRED_KEYS
	RequiredKeys []string `env:"CONFIG_REQUIRED_KEYS" envSeparator:","`
}

// LoadLocator populates a [Locator] from src.
//
// Fails with ErrInvalidFormat when a variable cannot be converted to its
// field type, and ErrNotFound when CONFIG is empty or CONFIG_UUID is unset.
// A CONFIG_UUID explicitly set to the nil UUID is a set value, not an
// absence, and is passed through.
func LoadLocator(src Source) (*Locator, error) {
	var loc Locator
	if err := env.ParseWithOptions(&loc, env.Options{Environment: src.Environ()}); err != nil {
		return nil, fmt.Errorf("%w: error getting env configs: %v", ErrInvalidFormat, err)
	}

	if loc.Path == "" {
		return nil, fmt.Errorf("%w: CONFIG not found in environment variables", ErrNotFound)
	}

	if _, ok := src.Lookup("CONFIG_UUID"); !ok {
		return nil, fmt.Errorf("%w: CONFIG_UUID not found in environment variables", ErrNotFound)
	}

	return &loc, nil
}

// LoadFromSource resolves a record using location data taken from src: the
// document path from CONFIG, the record UUID from CONFIG_UUID, and required
// keys from CONFIG_REQUIRED_KEYS joined with requiredKeys.
func (l *Loader) LoadFromSource(src Source, requiredKeys []string) (Record, error) {
	loc, err := LoadLocator(src)
	if err != nil {
		return nil, err
	}

	required := make([]string, 0, len(loc.RequiredKeys)+len(requiredKeys))
	required = append(required, loc.RequiredKeys...)
	required = append(required, requiredKeys...)

	return l.Load(loc.Path, required, loc.ID)
}
