// Command configcheck resolves one record from a shared JSON configuration
// document and prints it as indented JSON.
//
// Flags:
//
//	-c/-config json config file path
//	-id UUID of the record to resolve
//	-require comma-separated list of required keys
//
// Flags left empty fall back to the CONFIG, CONFIG_UUID and
// CONFIG_REQUIRED_KEYS environment variables.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-app-utils/config"
	"github.com/MKhiriev/go-app-utils/logger"
	"github.com/google/uuid"
)

func main() {
	var configPath, rawID, rawRequired string

	flag.StringVar(&configPath, "c", "", "JSON config file path")
	flag.StringVar(&configPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&rawID, "id", "", "UUID of the config record to resolve")
	flag.StringVar(&rawRequired, "require", "", "Comma-separated required keys")
	flag.Parse()

	log := logger.NewLogger("configcheck")

	record, err := resolve(config.OSEnv{}, log, configPath, rawID, rawRequired)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving config")
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("error encoding resolved record")
	}

	fmt.Println(string(out))
}

// resolve loads the requested record, falling back to src for any location
// data not supplied through flags.
func resolve(src config.Source, log *logger.Logger, configPath, rawID, rawRequired string) (config.Record, error) {
	loader := config.NewLoader(log.Logger)

	var requiredKeys []string
	if rawRequired != "" {
		requiredKeys = strings.Split(rawRequired, ",")
	}

	if configPath == "" && rawID == "" {
		return loader.LoadFromSource(src, requiredKeys)
	}

	// LoadFromSource reads CONFIG_REQUIRED_KEYS itself; the flag path must
	// fall back to it too.
	if rawRequired == "" {
		if fromEnv, ok := src.Lookup("CONFIG_REQUIRED_KEYS"); ok && fromEnv != "" {
			requiredKeys = strings.Split(fromEnv, ",")
		}
	}

	if configPath == "" {
		path, ok := src.Lookup("CONFIG")
		if !ok {
			return nil, fmt.Errorf("%w: CONFIG not found in environment variables", config.ErrNotFound)
		}
		configPath = path
	}

	var id uuid.UUID
	if rawID == "" {
		var err error
		id, err = config.LoadIDFromEnv(src, "CONFIG_UUID")
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		id, err = uuid.Parse(rawID)
		if err != nil {
			return nil, fmt.Errorf("%w: -id is not a valid UUID", config.ErrInvalidFormat)
		}
	}

	return loader.Load(configPath, requiredKeys, id)
}
