package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Appearance.DarkPalette.Accent = "#123456"

	require.NoError(t, WriteConfigOrdered(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestMarshal_SortsSections(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	content := string(data)
	order := []string{"[ambient]", "[appearance]", "[appearance.dark_palette]", "[appearance.light_palette]", "[database]", "[logging]"}
	last := -1
	for _, header := range order {
		idx := strings.Index(content, header)
		require.GreaterOrEqual(t, idx, 0, "missing %s", header)
		assert.Greater(t, idx, last, "%s out of order", header)
		last = idx
	}
}

func TestMarshal_Nil(t *testing.T) {
	_, err := Marshal(nil)
	assert.Error(t, err)
}

func TestSortTOMLSections(t *testing.T) {
	input := "top = 1\n\n[zeta]\na = 1\n\n[alpha]\nb = 2\n"
	want := "top = 1\n\n[alpha]\nb = 2\n\n[zeta]\na = 1\n"
	assert.Equal(t, want, sortTOMLSections(input))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "dusk configuration", schema["title"])
	assert.Contains(t, string(data), "light_palette")
	assert.Contains(t, string(data), "override_file")
}
