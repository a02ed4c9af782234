// Package config loads cmd/qrgen's optional YAML defaults file, in the
// same load/merge/save shape dfbb-im2code uses for its own config.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the default rendering and encoding options cmd/qrgen
// falls back to when a flag is not explicitly set.
type Config struct {
	ECL       string `yaml:"ecl"`
	Version   int    `yaml:"version"`
	Mask      int    `yaml:"mask"`
	Quiet     int    `yaml:"quiet"`
	Uppercase bool   `yaml:"uppercase"`
	Invert    bool   `yaml:"invert"`
	FixECL    bool   `yaml:"fixecl"`
	Output    string `yaml:"output"`

	BMPScale            int     `yaml:"bmp_scale"`
	SVGPoint            float64 `yaml:"svg_point"`
	SVGRound            float64 `yaml:"svg_round"`
	SVGFinderRound      float64 `yaml:"svg_finder_round"`
	SVGAlignmentRound   float64 `yaml:"svg_alignment_round"`
	SVGColor            string  `yaml:"svg_color"`
	SixelScale          int     `yaml:"sixel_scale"`

	Open bool `yaml:"open"`
}

// Defaults returns a Config populated with cmd/qrgen's built-in
// defaults, used when no config file is present.
func Defaults() *Config {
	return &Config{
		ECL:        "m",
		Mask:       -1,
		Quiet:      4,
		Output:     "text",
		BMPScale:   8,
		SVGPoint:   10,
		SixelScale: 8,
		SVGColor:   "#000000",
	}
}

// Load reads path as YAML over Defaults(), returning the defaults
// unmodified if path does not exist.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
