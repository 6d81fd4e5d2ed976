package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	as "github.com/aluitink/ActivityStreams"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "asld.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, as.DefaultMaxDepth, cfg.Codec.MaxDepth)
	assert.True(t, cfg.Codec.preserveUnknown())
	assert.False(t, cfg.Codec.KeepEmpty)
	assert.Empty(t, cfg.Mint.Base)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[codec]
max_depth = 8
preserve_unknown = false
keep_empty = true

[mint]
base = "https://example.org/objects/"
`)

	cfg, undecoded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, undecoded)
	assert.Equal(t, 8, cfg.Codec.MaxDepth)
	assert.False(t, cfg.Codec.preserveUnknown())
	assert.True(t, cfg.Codec.KeepEmpty)
	assert.Equal(t, "https://example.org/objects/", cfg.Mint.Base)
	assert.Len(t, cfg.Codec.Options(), 3)
}

func TestLoadConfigPartial(t *testing.T) {
	path := writeConfig(t, `
[mint]
base = "https://example.org/"
colour = "blue"
`)

	cfg, undecoded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"mint.colour"}, undecoded)
	assert.Equal(t, as.DefaultMaxDepth, cfg.Codec.MaxDepth)
	assert.True(t, cfg.Codec.preserveUnknown())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
		},
		{
			name: "invalid toml",
			path: func(t *testing.T) string { return writeConfig(t, "[codec\n") },
		},
		{
			name: "relative mint base",
			path: func(t *testing.T) string { return writeConfig(t, "[mint]\nbase = \"/notes/\"\n") },
		},
		{
			name: "zero depth",
			path: func(t *testing.T) string { return writeConfig(t, "[codec]\nmax_depth = 0\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := LoadConfig(tt.path(t))
			assert.Error(t, err)
		})
	}
}
