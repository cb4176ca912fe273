// Package geometry computes where a source image lands on the target
// canvas: orientation-dependent border selection, fit-scale, and centering
// offsets. Compute is a pure function so its behavior is byte-for-byte
// reproducible across runs and platforms.
package geometry

import (
	"fmt"
	"math"

	"github.com/andresmejia3/matte/internal/config"
	apperrors "github.com/andresmejia3/matte/internal/errors"
)

// Placement describes the scaled size and position of a source image on the
// target canvas.
type Placement struct {
	Scale        float64
	ScaledWidth  int
	ScaledHeight int
	OffsetX      int
	OffsetY      int
}

// Compute maps source dimensions onto the interior of the target canvas.
//
// Orientation uses a strict width > height test: a square source counts as
// portrait and gets the portrait ratio pair. The interior area is computed
// in floating point, the fit-scale is the smaller of the two axis
// constraints (sources smaller than the interior are upscaled), scaled
// dimensions round half away from zero (math.Round), and the centering
// offsets use truncating integer division. On an odd pixel difference the
// truncation leaves the image one pixel right/down of true center; that
// bias is deliberate, observable behavior.
func Compute(origWidth, origHeight int, cfg *config.Config) (Placement, error) {
	if origWidth <= 0 || origHeight <= 0 {
		return Placement{}, apperrors.NewDimensionsError(
			fmt.Sprintf("source has empty dimensions %dx%d", origWidth, origHeight), nil)
	}

	isLandscape := origWidth > origHeight

	vertRatio := cfg.PortraitVert
	horizRatio := cfg.PortraitHoriz
	if isLandscape {
		vertRatio = cfg.LandscapeVert
		horizRatio = cfg.LandscapeHoriz
	}

	availableWidth := float64(cfg.TargetWidth) * (1 - 2*horizRatio)
	availableHeight := float64(cfg.TargetHeight) * (1 - 2*vertRatio)
	if availableWidth <= 0 || availableHeight <= 0 {
		return Placement{}, apperrors.NewConfigError(
			fmt.Sprintf("border ratios %g/%g leave no interior area on a %dx%d canvas",
				vertRatio, horizRatio, cfg.TargetWidth, cfg.TargetHeight), nil)
	}

	scale := math.Min(
		availableWidth/float64(origWidth),
		availableHeight/float64(origHeight),
	)

	scaledWidth := int(math.Round(float64(origWidth) * scale))
	scaledHeight := int(math.Round(float64(origHeight) * scale))

	return Placement{
		Scale:        scale,
		ScaledWidth:  scaledWidth,
		ScaledHeight: scaledHeight,
		OffsetX:      (cfg.TargetWidth - scaledWidth) / 2,
		OffsetY:      (cfg.TargetHeight - scaledHeight) / 2,
	}, nil
}
