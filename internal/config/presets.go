package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a named partial configuration loaded from a YAML presets file.
// Absent keys leave the current value untouched, so a preset can override
// just the border ratios while keeping flag-provided dimensions.
type Preset struct {
	Width          *int     `yaml:"width"`
	Height         *int     `yaml:"height"`
	LandscapeVert  *float64 `yaml:"landscape_vert"`
	LandscapeHoriz *float64 `yaml:"landscape_horiz"`
	PortraitVert   *float64 `yaml:"portrait_vert"`
	PortraitHoriz  *float64 `yaml:"portrait_horiz"`
	JPEGQuality    *int     `yaml:"jpeg_quality"`
	Prefix         *string  `yaml:"prefix"`
}

// LoadPresets parses a YAML file mapping preset names to partial configs:
//
//	gallery:
//	  landscape_vert: 0.08
//	  landscape_horiz: 0.08
//	instagram:
//	  width: 1080
//	  height: 1350
func LoadPresets(path string) (map[string]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading presets file: %w", err)
	}
	presets := make(map[string]Preset)
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parsing presets file %s: %w", path, err)
	}
	return presets, nil
}

// ApplyPreset overlays a named preset onto the config. It returns false if
// the name is unknown; the config is left unchanged in that case.
func (c *Config) ApplyPreset(name string, presets map[string]Preset) bool {
	p, ok := presets[name]
	if !ok {
		return false
	}

	if p.Width != nil {
		c.TargetWidth = *p.Width
	}
	if p.Height != nil {
		c.TargetHeight = *p.Height
	}
	if p.LandscapeVert != nil {
		c.LandscapeVert = *p.LandscapeVert
	}
	if p.LandscapeHoriz != nil {
		c.LandscapeHoriz = *p.LandscapeHoriz
	}
	if p.PortraitVert != nil {
		c.PortraitVert = *p.PortraitVert
	}
	if p.PortraitHoriz != nil {
		c.PortraitHoriz = *p.PortraitHoriz
	}
	if p.JPEGQuality != nil {
		c.JPEGQuality = *p.JPEGQuality
	}
	if p.Prefix != nil {
		c.OutputPrefix = *p.Prefix
	}

	return true
}
