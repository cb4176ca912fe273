// Package config holds the resolved batch parameters: target canvas size,
// the four orientation-dependent border ratios, encode quality, and the
// output-location policy. A Config is built once at startup, validated, and
// then shared read-only by every per-image task.
package config

import (
	"fmt"
	"path/filepath"

	apperrors "github.com/andresmejia3/matte/internal/errors"
)

// SubfolderName is the dedicated output directory created inside the input
// folder when SeparateFolder is set.
const SubfolderName = "bordered_images"

// Config holds all runtime settings for a batch run.
type Config struct {
	TargetWidth  int
	TargetHeight int

	// Border ratios: fraction of the target axis reserved as white margin
	// on each side, selected by source orientation. Valid range [0, 0.5).
	LandscapeVert  float64
	LandscapeHoriz float64
	PortraitVert   float64
	PortraitHoriz  float64

	JPEGQuality    int    // 1-100, lossy output only
	OutputPrefix   string // prepended to the original filename
	SeparateFolder bool   // write into SubfolderName instead of in place
}

// Default returns the stock configuration: 1080x1080 canvas, the standard
// border ratios, maximum JPEG quality, dedicated output subfolder.
func Default() Config {
	return Config{
		TargetWidth:    1080,
		TargetHeight:   1080,
		LandscapeVert:  0.05,
		LandscapeHoriz: 0.03,
		PortraitVert:   0.005,
		PortraitHoriz:  0.18,
		JPEGQuality:    100,
		OutputPrefix:   "bordered_",
		SeparateFolder: true,
	}
}

// Validate checks every numeric parameter before any file is touched.
// A ratio of 0.5 or more on an axis would reserve the whole axis for
// margins and leave no interior area.
func (c *Config) Validate() error {
	if c.TargetWidth <= 0 || c.TargetHeight <= 0 {
		return apperrors.NewConfigError(
			fmt.Sprintf("target dimensions must be positive, got %dx%d", c.TargetWidth, c.TargetHeight), nil)
	}
	ratios := map[string]float64{
		"landscape-vert":  c.LandscapeVert,
		"landscape-horiz": c.LandscapeHoriz,
		"portrait-vert":   c.PortraitVert,
		"portrait-horiz":  c.PortraitHoriz,
	}
	for name, r := range ratios {
		if r < 0 || r >= 0.5 {
			return apperrors.NewConfigError(
				fmt.Sprintf("%s ratio must be in [0, 0.5), got %g", name, r), nil)
		}
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return apperrors.NewConfigError(
			fmt.Sprintf("jpeg quality must be in 1-100, got %d", c.JPEGQuality), nil)
	}
	if !c.SeparateFolder && c.OutputPrefix == "" {
		return apperrors.NewConfigError(
			"in-place output with an empty prefix would overwrite the source images", nil)
	}
	return nil
}

// OutputDir resolves the directory output files are written to for a given
// input folder.
func (c *Config) OutputDir(inputDir string) string {
	if c.SeparateFolder {
		return filepath.Join(inputDir, SubfolderName)
	}
	return inputDir
}
