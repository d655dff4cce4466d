package spvec

import "math"

// fitSamples is the number of intervals a candidate curve is sampled with
// before it is compared to the polyline.
const fitSamples = 16

// maxCandidates is the number of tangent candidates tried per span.
const maxCandidates = 4

// FitBezier fits a cubic Bézier to the nodes p[i] … p[j], which must have at
// least one node between them. It returns the interior control points of the
// best curve and the area between that curve and the polyline.
//
// The curve is constructed such that
//   - the segment (p[i], p[i+1]) is its start tangent,
//   - the segment (p[j-1], p[j]) is its end tangent, and
//   - a line through a point near the middle of the span is its tangent at
//     t = 0.5.
//
// Up to four such lines, taken from the middle of the span, are tried. A
// candidate is only accepted if its control points point in the direction of
// the end tangents, their distance from the end points lies between 10 % and
// 100 % of the arc length of the span, and the curve stays within maxDist of
// the polyline. The accepted candidate with the least area wins.
func FitBezier(p Path, i, j int, maxDist float64) (ctrl [2]Point, area float64, ok bool) {
	var f fitter
	return f.fit(p, i, j, maxDist)
}

// fitter holds scratch space that is reused across fits.
type fitter struct {
	span    []Point
	samples [fitSamples + 1]Point
}

func (f *fitter) fit(p Path, i, j int, maxDist float64) (ctrl [2]Point, area float64, ok bool) {
	if j-i < 2 {
		return ctrl, 0, false
	}
	b0, b3 := p[i].Point, p[j].Point
	m1 := p[i+1].Sub(b0)
	m2 := p[j-1].Sub(b3)

	// the end tangents must not turn away from the chord by more than 90°
	seg := b3.Sub(b0)
	if m1.Dot(seg) < 0 || m2.Dot(seg) > 0 {
		return ctrl, 0, false
	}

	maxLen2 := p[j].Arclen - p[i].Arclen
	maxLen2 *= maxLen2
	minLen2 := maxLen2 * 0.01

	cnt := j - i - 1
	if cnt > maxCandidates {
		cnt = maxCandidates - cnt&1
	}

	f.span = p[i : j+1].appendPoints(f.span[:0])
	area = math.Inf(1)
	for k := i + (j-i+1-cnt)/2; cnt > 0; k, cnt = k+1, cnt-1 {
		// the line pt + r·mt shall touch the curve at t = 0.5
		pt := p[k].Lerp(p[k+1].Point, 1.0/3)
		mt := p[k+1].Sub(p[k-1].Point)

		b1, b2, ok := controlPoints(b0, b3, m1, m2, pt, mt)
		if !ok {
			continue
		}

		bm1 := b1.Sub(b0)
		bm2 := b2.Sub(b3)
		if bm1.Dot(m1) < 0 || bm2.Dot(m2) < 0 {
			continue
		}
		if l := bm1.Hypot2(); l > maxLen2 || l < minLen2 {
			continue
		}
		if l := bm2.Hypot2(); l > maxLen2 || l < minLen2 {
			continue
		}

		samples := CubicBez{b0, b1, b2, b3}.Sample(f.samples[:0], fitSamples)
		a, ok := PolylineArea(f.span, samples, maxDist)
		if !ok {
			continue
		}
		if a < area {
			area = a
			ctrl = [2]Point{b1, b2}
		}
	}
	if math.IsInf(area, 1) {
		return ctrl, 0, false
	}
	return ctrl, area, true
}

// controlPoints computes b1 = b0 + s·m1 and b2 = b3 + t·m2 such that the
// cubic (b0, b1, b2, b3) at t = 0.5 touches the line pt + r·mt.
//
// With B(0.5) = (b0 + 3b1 + 3b2 + b3)/8 and B'(0.5) ∥ (b3 + b2 − b1 − b0),
// requiring B(0.5) − pt and B'(0.5) to be parallel to mt yields a linear
// system in s and t.
func controlPoints(b0, b3 Point, m1, m2 Vec2, pt Point, mt Vec2) (b1, b2 Point, ok bool) {
	r1 := m1.Cross(mt)
	r2 := m2.Cross(mt)

	h := Vec2(pt).Mul(4).Sub(Vec2(b0)).Sub(Vec2(b3))
	c1 := h.Sub(Vec2(b0).Mul(2)).Cross(mt)
	c2 := h.Sub(Vec2(b3).Mul(2)).Cross(mt)

	s, t, ok := solveLinear(2*r1, r2, c1, r1, 2*r2, c2)
	if !ok {
		return b1, b2, false
	}
	return b0.Translate(m1.Mul(s)), b3.Translate(m2.Mul(t)), true
}

// solveLinear solves ax + by = c, dx + ey = f by Cramer's rule.
func solveLinear(a, b, c, d, e, f float64) (x, y float64, ok bool) {
	det := a*e - d*b
	if det == 0 {
		return 0, 0, false
	}
	detx := c*e - f*b
	dety := a*f - d*c
	return detx / det, dety / det, true
}
