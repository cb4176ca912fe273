// Package canvas builds the output image: a solid-white canvas of the target
// size with the scaled source composited at its computed placement.
package canvas

import (
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	apperrors "github.com/andresmejia3/matte/internal/errors"
	"github.com/andresmejia3/matte/internal/geometry"
)

// Compose allocates a fully-opaque white targetWidth x targetHeight canvas
// and scales src into the placement rectangle in a single bilinear pass.
// The source image is never mutated.
//
// The bounds check duplicates the geometry invariant on purpose: a violation
// here means the placement math is broken, and failing one file beats
// panicking inside the draw call.
func Compose(src image.Image, p geometry.Placement, targetWidth, targetHeight int) (*image.RGBA, error) {
	if p.OffsetX < 0 || p.OffsetY < 0 ||
		p.OffsetX+p.ScaledWidth > targetWidth ||
		p.OffsetY+p.ScaledHeight > targetHeight {
		return nil, apperrors.NewCompositionError(
			fmt.Sprintf("placement %dx%d at (%d,%d) exceeds %dx%d canvas",
				p.ScaledWidth, p.ScaledHeight, p.OffsetX, p.OffsetY, targetWidth, targetHeight), nil)
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	destRect := image.Rect(p.OffsetX, p.OffsetY, p.OffsetX+p.ScaledWidth, p.OffsetY+p.ScaledHeight)
	xdraw.ApproxBiLinear.Scale(dst, destRect, src, src.Bounds(), xdraw.Over, nil)

	return dst, nil
}
