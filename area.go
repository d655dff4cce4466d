package spvec

import "math"

// PolylineArea computes the area enclosed between the polylines p and q and
// checks that they stay close to each other. Both polylines must start at the
// same point and end at the same point.
//
// The region between p and q is cut into simple pieces at the points where
// the polylines cross, and the area of each piece is computed with the
// shoelace formula 2A = Σ x[i]·(y[i-1] − y[i+1]). The crossings are found by
// a sweep over both polylines in linear time, which finds all of them as long
// as
//
//  1. neither polyline intersects itself, and
//  2. the vertices can be visited in a common order such that the edges
//     (p[i-1], p[i]) and (q[j-1], q[j]) do not intersect if p[i] comes before
//     q[j-1] or q[j] comes before p[i-1].
//
// The second condition means that the polylines never reverse direction
// relative to each other, which bounds the number of crossings linearly.
//
// The sweep keeps a cursor into each polyline and always advances the one
// that is behind; a line perpendicular to the current edge of p decides
// which one that is. Every vertex that is passed must lie within maxDist of
// the current edge of the other polyline, or the polylines are rejected.
//
// PolylineArea returns false if the distance check fails or if either
// polyline has fewer than two points.
func PolylineArea(p, q []Point, maxDist float64) (float64, bool) {
	pn, qn := len(p)-1, len(q)-1
	if pn <= 0 || qn <= 0 {
		return 0, false
	}

	var (
		// x of the first point of the current piece
		x = p[0].X
		// p[pi-1] and q[qi-1]; both restart at the last crossing
		lp, lq = p[0], q[0]
		// y of the points before lp and lq
		yp, yq float64
		// twice the signed area of the current piece
		a    float64
		area float64
	)
	pi, qi := 1, 1
	pBehind := q[qi].Sub(p[pi]).Dot(p[pi].Sub(lp)) > 0

	for pi < pn || qi < qn {
		// p can't advance past its last point, and q is done when it is at
		// its last point.
		advanceP := (pBehind && pi < pn) || qi == qn

		if advanceP {
			if !(Line{lq, q[qi]}).Within(p[pi], maxDist) {
				return 0, false
			}
			yp = lp.Y
			lp = p[pi]
			pi++
			if pi < pn {
				pBehind = p[pi].Sub(q[qi]).Dot(p[pi+1].Sub(lp)) < 0
			}
		} else {
			if !(Line{lp, p[pi]}).Within(q[qi], maxDist) {
				return 0, false
			}
			yq = lq.Y
			lq = q[qi]
			qi++
			if pi < pn {
				pBehind = q[qi].Sub(p[pi]).Dot(p[pi+1].Sub(lp)) > 0
			}
		}

		if s, ok := (Line{lp, p[pi]}).Intersect(Line{lq, q[qi]}); ok {
			// close the current piece at s
			if advanceP {
				a += (lp.X - x) * (s.Y - yp)
			} else {
				a += (lq.X - x) * (yq - s.Y)
			}
			a += (s.X - x) * (lq.Y - lp.Y)

			area += math.Abs(a)
			a = 0

			x = s.X
			lp, lq = s, s
		} else if advanceP {
			a += (lp.X - x) * (p[pi].Y - yp)
		} else {
			a += (lq.X - x) * (yq - q[qi].Y)
		}
	}

	return area / 2, true
}

// NodeArea is like [PolylineArea] for a span of path nodes.
func NodeArea(p Path, q []Point, maxDist float64) (float64, bool) {
	return PolylineArea(p.Points(), q, maxDist)
}

// Fidelity returns the area between the contour orig and its simplification,
// checking that no vertex of either is farther than maxDist from the other.
// Both paths must start and end at the same point.
func Fidelity(orig, simplified Path, maxDist float64) (float64, bool) {
	return NodeArea(orig, simplified.Points(), maxDist)
}
