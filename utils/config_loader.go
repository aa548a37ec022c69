package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ─── Column configuration ───────────────────────────────────────────────

// ColumnsConfig names the source and derived columns of the location table.
// Cache exports seen in the wild disagree on the latitude spelling
// (ZLATITUDE vs ZATITUDE), so the coordinate names are alias lists and the
// first alias present in the input wins.
type ColumnsConfig struct {
	Timestamp        string   `yaml:"timestamp"`
	Speed            string   `yaml:"speed"`
	Latitude         []string `yaml:"latitude"`
	Longitude        []string `yaml:"longitude"`
	RowID            string   `yaml:"row_id"`
	DisplayTimestamp string   `yaml:"display_timestamp"`
	DateOnly         string   `yaml:"date_only"`
	DisplaySpeed     string   `yaml:"display_speed"`
}

// ─── Map configuration ──────────────────────────────────────────────────

// MapConfig controls the rendered map document. The file name is fixed per
// run and independent of the output table's name.
type MapConfig struct {
	FileName     string  `yaml:"file_name"`
	Zoom         int     `yaml:"zoom"`
	MarkerRadius float64 `yaml:"marker_radius"`
	MarkerColor  string  `yaml:"marker_color"`
	FillOpacity  float64 `yaml:"fill_opacity"`
}

// Config is the top-level structure for columns.yaml.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Map     MapConfig     `yaml:"map"`
}

// ─── Loaders ────────────────────────────────────────────────────────────

// DefaultConfig returns the configuration matching a stock
// com.apple.routined ZRTCLLOCATIONMO export.
func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Timestamp:        "ZTIMESTAMP",
			Speed:            "ZSPEED",
			Latitude:         []string{"ZLATITUDE", "ZATITUDE"},
			Longitude:        []string{"ZLONGITUDE"},
			RowID:            "Z_PK",
			DisplayTimestamp: "Full_ZTIMESTAMP",
			DateOnly:         "DATE_ONLY",
			DisplaySpeed:     "SPEED",
		},
		Map: MapConfig{
			FileName:     "location_data_map.html",
			Zoom:         12,
			MarkerRadius: 2,
			MarkerColor:  "red",
			FillOpacity:  0.6,
		},
	}
}

// LoadConfig reads and parses columns.yaml over the defaults, so a partial
// file only overrides the keys it names.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read columns config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse columns config: %w", err)
	}
	return cfg, nil
}
