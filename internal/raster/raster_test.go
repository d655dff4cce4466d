package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/spvec"
)

func rect(x0, y0, x1, y1 float64, clockwise bool) spvec.BezPath {
	var p spvec.BezPath
	p.MoveTo(spvec.Pt(x0, y0))
	if clockwise {
		p.LineTo(spvec.Pt(x1, y0))
		p.LineTo(spvec.Pt(x1, y1))
		p.LineTo(spvec.Pt(x0, y1))
	} else {
		p.LineTo(spvec.Pt(x0, y1))
		p.LineTo(spvec.Pt(x1, y1))
		p.LineTo(spvec.Pt(x1, y0))
	}
	p.ClosePath()
	return p
}

func TestRender(t *testing.T) {
	mask := Render([]spvec.BezPath{rect(2, 2, 8, 8, true)}, 10, 10, spvec.Identity)
	require.Equal(t, image.Rect(0, 0, 10, 10), mask.Bounds())
	assert.Equal(t, uint8(0xff), mask.AlphaAt(2, 2).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(7, 7).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 5).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(8, 5).A)

	// half covered pixels
	mask = Render([]spvec.BezPath{rect(0.5, 0, 2, 1, true)}, 2, 1, spvec.Identity)
	assert.InDelta(t, 0x80, int(mask.AlphaAt(0, 0).A), 2)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(1, 0).A)
}

func TestRenderHole(t *testing.T) {
	paths := []spvec.BezPath{
		rect(0, 0, 10, 10, true),
		rect(3, 3, 7, 7, false),
	}
	mask := Render(paths, 10, 10, spvec.Identity)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(8, 5).A)
}

func TestRenderTransform(t *testing.T) {
	aff := spvec.Scale(2, 2).ThenTranslate(spvec.Vec(1, 0))
	mask := Render([]spvec.BezPath{rect(0, 0, 2, 2, true)}, 8, 8, aff)
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 1).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(4, 3).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(5, 1).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 4).A)

	assert.Equal(t, image.Rectangle{}, Render(nil, 0, 5, spvec.Identity).Bounds())

	// paths off the canvas are skipped
	paths := []spvec.BezPath{rect(20, 20, 30, 30, true), nil, rect(2, 2, 4, 4, true)}
	mask = Render(paths, 8, 8, spvec.Identity)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(3, 3).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(7, 7).A)
}

func TestRenderCurve(t *testing.T) {
	res, err := spvec.Vectorize(disc(30, 200), &spvec.DefaultConfig)
	require.NoError(t, err)
	mask := Render([]spvec.BezPath{res.Curves.BezPath()}, 70, 70, spvec.Translate(spvec.Vec(35, 35)))

	assert.Equal(t, uint8(0xff), mask.AlphaAt(35, 35).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(35, 8).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(35, 2).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(5, 5).A)

	// the covered area is close to the disc's
	var sum float64
	for _, a := range mask.Pix {
		sum += float64(a) / 0xff
	}
	assert.InEpsilon(t, math.Pi*30*30, sum, 0.05)
}

func disc(r float64, n int) []spvec.Point {
	pts := make([]spvec.Point, n+1)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = spvec.Pt(r*cos, r*sin)
	}
	pts[n] = pts[0]
	return pts
}

func TestPreview(t *testing.T) {
	mask := Render([]spvec.BezPath{rect(1, 1, 3, 3, true)}, 4, 4, spvec.Identity)
	img := Preview(mask)
	assert.Equal(t, color.Gray{Y: 0}, img.GrayAt(1, 1))
	assert.Equal(t, color.Gray{Y: 0xff}, img.GrayAt(0, 0))
}

func TestSaveOpen(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(1, 0, color.Gray{Y: 0x80})
	img.SetGray(2, 1, color.Gray{Y: 0xff})

	dir := t.TempDir()
	for _, tt := range []struct {
		name   string
		format Format
	}{
		{"img.png", PNG},
		{"img.bmp", BMP},
		{"img.TIF", TIFF},
	} {
		fn := filepath.Join(dir, tt.name)
		require.NoError(t, Save(fn, img), tt.name)
		got, format, err := Open(fn)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.format, format, tt.name)
		assert.Equal(t, img.Bounds(), got.Bounds(), tt.name)
		for _, p := range []image.Point{{0, 0}, {1, 0}, {2, 1}} {
			assert.Equal(t, img.GrayAt(p.X, p.Y), color.GrayModel.Convert(got.At(p.X, p.Y)), "%s at %v", tt.name, p)
		}
	}

	assert.Error(t, Save(filepath.Join(dir, "img.webp"), img))
	assert.Error(t, Save(filepath.Join(dir, "img"), img))
	assert.Error(t, SavePNG(filepath.Join(dir, "img.bmp"), img))
	require.NoError(t, SavePNG(filepath.Join(dir, "out.png"), img))

	_, _, err := Open(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 1, 1))))
	_, format, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, PNG, format)
	assert.Equal(t, "png", format.String())

	_, _, err = Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}

func TestExtFormat(t *testing.T) {
	for ext, want := range map[string]Format{
		".png": PNG, "JPG": JPEG, "jpeg": JPEG, ".gif": GIF,
		".tiff": TIFF, "tif": TIFF, ".BMP": BMP, "webp": WebP,
	} {
		got, err := ExtFormat(ext)
		require.NoError(t, err, ext)
		assert.Equal(t, want, got, ext)
	}
	_, err := ExtFormat(".svg")
	assert.Error(t, err)
	_, err = ExtFormat("")
	assert.Error(t, err)
	assert.Equal(t, "Format(12)", Format(12).String())
}
