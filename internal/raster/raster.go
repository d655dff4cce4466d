// Package raster reads the images that contours are traced from and renders
// vectorized paths back into pixels.
package raster

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/image/vector"

	"honnef.co/go/spvec"
)

// Format is an image encoding.
type Format int

const (
	None Format = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ExtFormat returns the format belonging to a filename extension, with or
// without the leading dot.
func ExtFormat(ext string) (Format, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	case "":
		return None, errors.New("empty extension")
	}
	return None, fmt.Errorf("extension %q not recognized", ext)
}

// Open decodes the image in the named file. png, jpeg, gif, tiff, bmp and
// webp are supported, and the format is detected from the contents.
func Open(filename string) (image.Image, Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, None, err
	}
	defer f.Close()
	img, format, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, None, fmt.Errorf("decode %s: %w", filename, err)
	}
	return img, format, nil
}

// Decode decodes an image in any of the supported formats.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, None, err
	}
	format, err := ExtFormat(name)
	return img, format, err
}

// Save encodes img into the named file, choosing the format by the
// file's extension. png, tiff and bmp can be written.
func Save(filename string, img image.Image) error {
	format, err := ExtFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = Encode(bw, img, format)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// SavePNG encodes img as PNG into the named file.
func SavePNG(filename string, img image.Image) error {
	if ext := filepath.Ext(filename); !strings.EqualFold(ext, ".png") {
		return fmt.Errorf("save %s: not a .png file", filename)
	}
	return Save(filename, img)
}

// Encode writes img to w.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("can't encode %s", format)
	}
}

// Render fills paths into a w×h coverage mask after transforming them by
// aff. Overlapping paths of opposite orientation cancel, so holes traced
// counterclockwise inside clockwise outlines stay empty. Paths whose control
// box lies outside the mask are skipped.
func Render(paths []spvec.BezPath, w, h int, aff spvec.Affine) *image.Alpha {
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	ras := vector.NewRasterizer(w, h)
	ras.DrawOp = draw.Src
	canvas := spvec.Rect{X1: float64(w), Y1: float64(h)}
	for _, p := range paths {
		p = p.Transform(aff)
		if len(p) == 0 || !p.ControlBox().Overlaps(canvas) {
			continue
		}
		for _, el := range p {
			switch el.Kind {
			case spvec.MoveToKind:
				ras.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			case spvec.LineToKind:
				ras.LineTo(float32(el.P0.X), float32(el.P0.Y))
			case spvec.CubicToKind:
				ras.CubeTo(
					float32(el.P0.X), float32(el.P0.Y),
					float32(el.P1.X), float32(el.P1.Y),
					float32(el.P2.X), float32(el.P2.Y),
				)
			case spvec.ClosePathKind:
				ras.ClosePath()
			}
		}
		ras.ClosePath()
	}
	mask := image.NewAlpha(ras.Bounds())
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// Preview paints mask black on a white background.
func Preview(mask *image.Alpha) *image.Gray {
	img := image.NewGray(mask.Bounds())
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, mask, mask.Bounds().Min, draw.Over)
	return img
}
