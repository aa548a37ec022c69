package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "ZTIMESTAMP", cfg.Columns.Timestamp)
	assert.Equal(t, "ZSPEED", cfg.Columns.Speed)
	assert.Equal(t, []string{"ZLATITUDE", "ZATITUDE"}, cfg.Columns.Latitude)
	assert.Equal(t, []string{"ZLONGITUDE"}, cfg.Columns.Longitude)
	assert.Equal(t, "Z_PK", cfg.Columns.RowID)

	assert.Equal(t, "location_data_map.html", cfg.Map.FileName)
	assert.Equal(t, 12, cfg.Map.Zoom)
	assert.Equal(t, "red", cfg.Map.MarkerColor)
	assert.Equal(t, 0.6, cfg.Map.FillOpacity)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
columns:
  timestamp: TS
  latitude: [LAT]
map:
  zoom: 10
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, "TS", cfg.Columns.Timestamp)
	assert.Equal(t, []string{"LAT"}, cfg.Columns.Latitude)
	assert.Equal(t, 10, cfg.Map.Zoom)

	// Unset keys keep the defaults.
	assert.Equal(t, "ZSPEED", cfg.Columns.Speed)
	assert.Equal(t, "location_data_map.html", cfg.Map.FileName)
	assert.Equal(t, "red", cfg.Map.MarkerColor)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "columns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: [not, a, mapping"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
