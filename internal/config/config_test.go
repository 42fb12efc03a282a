package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesOnlySetKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bc.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[compile]
preserve_comments = true

[output]
format = "yaml"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Compile.PreserveComments)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.Equal(t, 64, cfg.Compile.TargetWidth) // untouched, keeps the default
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 64, cfg.Compile.TargetWidth)
	assert.Equal(t, "text", cfg.Output.Format)
}
