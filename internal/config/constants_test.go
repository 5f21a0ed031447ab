package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKnownConstants(t *testing.T) {
	known := DefaultKnownConstants()

	assert.True(t, known.Contains("AT&T"))
	assert.True(t, known.Contains("WIFI=Call over Wi-Fi"))
	assert.True(t, known.Contains(""))
	assert.False(t, known.Contains("UNKNOWN_TOKEN"))
}

func TestLoadKnownConstants(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		known, err := LoadKnownConstants("")
		require.NoError(t, err)
		assert.Equal(t, DefaultKnownConstants(), known)
	})

	t.Run("file entries extend defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "constants.yaml")
		content := "known_constants:\n  - \"Verizon\"\n  - \"INTL=International Calling\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		known, err := LoadKnownConstants(path)
		require.NoError(t, err)
		assert.True(t, known.Contains("Verizon"))
		assert.True(t, known.Contains("INTL=International Calling"))
		assert.True(t, known.Contains("AT&T"))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadKnownConstants(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("known_constants: {"), 0600))
		_, err := LoadKnownConstants(path)
		assert.Error(t, err)
	})
}
