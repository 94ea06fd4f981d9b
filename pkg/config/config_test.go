// Test Type: Unit Test
// Description: Tests embedded defaults and user config overlay

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LiteObject/WindowsUtils/pkg/config"
	"github.com/LiteObject/WindowsUtils/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "ask", cfg.Install.Overwrite)
	assert.Equal(t, "fold", cfg.Install.Match)
	assert.Empty(t, cfg.Discovery.ExtraExtensions)
	assert.Empty(t, cfg.Store.FontDir)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[install]
overwrite = "no"

[discovery]
extra_extensions = ["woff", ".woff2"]
`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "no", cfg.Install.Overwrite)
	// Untouched sections keep their defaults
	assert.Equal(t, "fold", cfg.Install.Match)
	assert.Equal(t, []string{"woff", ".woff2"}, cfg.Discovery.ExtraExtensions)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[install\noverwrite="), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
