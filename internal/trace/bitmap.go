package trace

import (
	"image"
	"math/bits"

	"github.com/anthonynsimon/bild/segment"
)

const (
	wordBits = 64
	hiBit    = Word(1) << (wordBits - 1)
	allBits  = ^Word(0)
)

// Word packs 64 pixels of a scanline.
type Word uint64

// Bitmap is a 1-bit image. The leftmost pixel of scanline y is the most
// significant bit of Map[y*Dy]. Bits past the width of a scanline are
// always clear.
type Bitmap struct {
	W, H int    // width and height, in pixels
	Dy   int    // words per scanline
	Map  []Word // raw data, Dy*H words
}

// NewBitmap returns a clear bitmap of the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	dy := 0
	if w != 0 {
		dy = (w-1)/wordBits + 1
	}
	return &Bitmap{
		W: w, H: h,
		Map: make([]Word, dy*h), Dy: dy,
	}
}

// NewBitmapFromImage binarizes img. Pixels whose luminance is below level
// are set, all others, including fully transparent ones, are clear.
func NewBitmapFromImage(img image.Image, level uint8) *Bitmap {
	gray := segment.Threshold(img, level)
	r := gray.Bounds()
	bm := NewBitmap(r.Dx(), r.Dy())
	for y := 0; y < bm.H; y++ {
		for x := 0; x < bm.W; x++ {
			if gray.GrayAt(r.Min.X+x, r.Min.Y+y).Y == 0 {
				bm.Set(x, y, true)
			}
		}
	}
	return bm
}

func (bm *Bitmap) scanline(y int) []Word { return bm.Map[y*bm.Dy : (y+1)*bm.Dy] }
func (bm *Bitmap) index(x, y int) *Word  { return &bm.Map[y*bm.Dy+x/wordBits] }
func (bm *Bitmap) mask(x int) Word       { return hiBit >> (uint(x) & (wordBits - 1)) }

// Get reports whether the pixel at (x, y) is set. Pixels outside the
// bitmap are clear.
func (bm *Bitmap) Get(x, y int) bool {
	if x >= 0 && x < bm.W && y >= 0 && y < bm.H {
		return *bm.index(x, y)&bm.mask(x) != 0
	}
	return false
}

// Set sets or clears the pixel at (x, y). Coordinates outside the bitmap
// are ignored.
func (bm *Bitmap) Set(x, y int, v bool) {
	if x >= 0 && x < bm.W && y >= 0 && y < bm.H {
		if v {
			*bm.index(x, y) |= bm.mask(x)
		} else {
			*bm.index(x, y) &^= bm.mask(x)
		}
	}
}

// NextSet returns the first x' >= x such that (x', y) is set, or W if
// there is none.
func (bm *Bitmap) NextSet(x, y int) int {
	return bm.next(x, y, 0)
}

// NextClear returns the first x' >= x such that (x', y) is clear, or W if
// there is none.
func (bm *Bitmap) NextClear(x, y int) int {
	return bm.next(x, y, allBits)
}

// next finds the first bit at or after x in scanline y that differs from
// the bits of inv.
func (bm *Bitmap) next(x, y int, inv Word) int {
	if y < 0 || y >= bm.H || x >= bm.W {
		return bm.W
	}
	x = max(x, 0)
	line := bm.scanline(y)
	i := x / wordBits
	w := (line[i] ^ inv) & (allBits >> (uint(x) & (wordBits - 1)))
	for {
		if w != 0 {
			return min(i*wordBits+bits.LeadingZeros64(uint64(w)), bm.W)
		}
		i++
		if i >= len(line) {
			return bm.W
		}
		w = line[i] ^ inv
	}
}

// point4 samples the 2×2 block of pixels around the vertex (x, y) as
// 8·B(x-1, y-1) + 4·B(x, y-1) + 2·B(x-1, y) + B(x, y).
func (bm *Bitmap) point4(x, y int) int {
	var idx int
	if bm.Get(x-1, y-1) {
		idx |= 8
	}
	if bm.Get(x, y-1) {
		idx |= 4
	}
	if bm.Get(x-1, y) {
		idx |= 2
	}
	if bm.Get(x, y) {
		idx |= 1
	}
	return idx
}
