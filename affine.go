package spvec

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// MapRect creates an affine transform that maps src onto dst, scaling
// uniformly so that all of src fits, and centering it in dst.
//
// src must have non-zero width and height.
func MapRect(src, dst Rect) Affine {
	s := min(dst.Width()/src.Width(), dst.Height()/src.Height())
	off := Vec2{
		X: dst.X0 + 0.5*(dst.Width()-s*src.Width()) - s*src.X0,
		Y: dst.Y0 + 0.5*(dst.Height()-s*src.Height()) - s*src.Y0,
	}
	return Scale(s, s).ThenTranslate(off)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
