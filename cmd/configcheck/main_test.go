package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-app-utils/config"
	"github.com/MKhiriev/go-app-utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

// writeConfig writes a document with one record under testID and returns
// its path.
func writeConfig(t *testing.T) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{
		"`+testID+`": {"a": 1, "b": 2}
	}`), 0o600))
	return p
}

func TestResolve_FlagsOnly(t *testing.T) {
	// Arrange
	p := writeConfig(t)

	// Act
	record, err := resolve(config.MapSource{}, logger.Nop(), p, testID, "a,b")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, float64(1), record["a"])
}

func TestResolve_RequiredKeysEnvFallbackOnFlagPath(t *testing.T) {
	// Arrange: location comes from flags, required keys only from the
	// environment, naming a key the record lacks.
	p := writeConfig(t)
	src := config.MapSource{"CONFIG_REQUIRED_KEYS": "a,missing"}

	// Act
	record, err := resolve(src, logger.Nop(), p, testID, "")

	// Assert
	require.ErrorIs(t, err, config.ErrMissingKeys)
	assert.Nil(t, record)
}

func TestResolve_RequireFlagWinsOverEnv(t *testing.T) {
	// Arrange: the -require flag overrides CONFIG_REQUIRED_KEYS entirely.
	p := writeConfig(t)
	src := config.MapSource{"CONFIG_REQUIRED_KEYS": "missing"}

	// Act
	record, err := resolve(src, logger.Nop(), p, testID, "a")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, float64(2), record["b"])
}

func TestResolve_EnvOnly(t *testing.T) {
	// Arrange
	p := writeConfig(t)
	src := config.MapSource{
		"CONFIG":               p,
		"CONFIG_UUID":          testID,
		"CONFIG_REQUIRED_KEYS": "a,b",
	}

	// Act
	record, err := resolve(src, logger.Nop(), "", "", "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, float64(1), record["a"])
}

func TestResolve_InvalidIDFlag(t *testing.T) {
	// Act
	record, err := resolve(config.MapSource{}, logger.Nop(), writeConfig(t), "not-a-uuid", "")

	// Assert
	require.ErrorIs(t, err, config.ErrInvalidFormat)
	assert.Nil(t, record)
}
