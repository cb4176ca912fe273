// Package codec wraps the decode and encode primitives. The output codec is
// selected by the output path's extension, case-insensitive: .png encodes
// losslessly (quality ignored), everything else is treated as JPEG at the
// configured quality. JPEG has no alpha channel, so transparency is flattened
// against the white canvas it was composited onto.
package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/andresmejia3/matte/internal/errors"
)

// Decode reads and decodes a JPEG or PNG source image.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewDecodeError("opening source image", err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".png":
		img, err = png.Decode(f)
	default:
		return nil, apperrors.NewDecodeError("unsupported image format "+filepath.Ext(path), nil)
	}
	if err != nil {
		return nil, apperrors.NewDecodeError("decoding source image", err)
	}
	return img, nil
}

// Encode serializes img to path, dispatching on the output extension.
func Encode(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewEncodeError("creating output file", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".png" {
		err = png.Encode(f, img)
	} else {
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	}
	if err != nil {
		f.Close()
		return apperrors.NewEncodeError("encoding output image", err)
	}

	if err := f.Close(); err != nil {
		return apperrors.NewEncodeError("flushing output file", err)
	}
	return nil
}
