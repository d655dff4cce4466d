package spvec

import "math"

// IntermediatePoints prepares the result of the line phase for the curve
// phase. The closed path p is copied, with every vertex flagged Corner if
// the angle between its two edges is cornerAngle degrees or less, and with
// Middle points inserted in the middle of every edge.
//
// Where an edge is more than twice as long as its neighbor, another Middle
// point is inserted on the long edge, at half the neighbor's length away
// from the shared vertex. This gives the curve fitter enough points to
// work with around short edges.
//
// The returned path starts and ends at the Middle point of the first edge,
// and the Arclen of every node is set. It has at most three times as many
// nodes as p.
func IntermediatePoints(p Path, cornerAngle float64) (Path, error) {
	if err := p.check(); err != nil {
		return nil, err
	}
	last := len(p) - 1
	cosCorner := math.Cos((180 - cornerAngle) * (math.Pi / 180))

	q := make(Path, 0, 3*len(p))
	emit := func(pt Point, flag Flag, pos float64) {
		q = append(q, Node{Point: pt, Pred: NoPred, Flag: flag, Arclen: pos})
	}

	//       m2,len2
	// p[0] ---------> p[1]
	m2 := p[1].Sub(p[0].Point)
	len2 := m2.Hypot()
	var pos float64

	for i := 1; i <= last; i++ {
		m1, len1 := m2, len2
		if i < last {
			m2 = p[i+1].Sub(p[i].Point)
		} else {
			m2 = p[1].Sub(p[0].Point)
		}
		len2 = m2.Hypot()
		pos += len1

		//         m1,len1   pos   m2,len2
		// p[i-1] ---------> p[i] ---------> p[i+1]

		// p[i-1] ----+---- p[i] --------- p[i+1]
		emit(p[i].Translate(m1.Mul(-0.5)), Middle, pos-len1*0.5)

		if len1 > 2*len2 {
			// p[i-1] ------------+-- p[i] ----- p[i+1]
			a := 0.5 * len2 / len1
			emit(p[i].Translate(m1.Mul(-a)), Middle, pos-len2*0.5)
		}

		var flag Flag
		// NaN for zero-length edges, which makes them corners
		if !(m1.CosAngle(m2) > cosCorner) {
			flag = Corner
		}
		emit(p[i].Point, flag, pos)

		if len2 > 2*len1 {
			// p[i-1] ---- p[i] --+------------ p[i+1]
			a := 0.5 * len1 / len2
			emit(p[i].Translate(m2.Mul(a)), Middle, pos+len1*0.5)
		}
	}

	first := q[0]
	first.Arclen += pos
	q = append(q, first)
	return q, nil
}
