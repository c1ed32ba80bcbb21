package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agptool.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), false)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), true)
	assert.Error(t, err)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[gap]
size = 200
evidence = "map"

[fasta]
wrap = 80
`)

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Gap.Size)
	assert.Equal(t, "map", cfg.Gap.Evidence)
	assert.Equal(t, 80, cfg.Fasta.Wrap)
	// untouched keys keep their defaults
	assert.Equal(t, defaultConfig().Gap.Type, cfg.Gap.Type)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero gap size", "[gap]\nsize = 0\n"},
		{"negative wrap", "[fasta]\nwrap = -1\n"},
		{"invalid toml", "gap = [[[\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content), true)
			assert.Error(t, err)
		})
	}
}
