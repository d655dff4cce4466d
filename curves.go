package spvec

// BezierCost is the cost model of the curve phase. It operates on a path
// prepared by [IntermediatePoints]: spans that only skip Middle points are
// straight segments of the line phase, all other spans are replaced by a
// fitted cubic Bézier.
type BezierCost struct {
	p   Path
	cfg *Config
	fit fitter

	// result of the last TryCost, for Relaxed
	isCurve bool
	ctrl    [2]Point
}

var _ CostModel = (*BezierCost)(nil)

func NewBezierCost(p Path, cfg *Config) *BezierCost {
	return &BezierCost{p: p, cfg: cfg}
}

// TryCost implements [CostModel].
func (bc *BezierCost) TryCost(i, j int) (float64, bool) {
	p := bc.p
	corners := 0
	for k := i + 1; k < j; k++ {
		if p[k].Flag&Middle == 0 {
			corners++
		}
	}

	if corners == 0 {
		bc.isCurve = false
		// straight lines don't count towards the in-degree
		p[j].InDegree--
		return bc.cfg.CurveCostSegment, true
	}

	// curves start and end at corners or in the middle of straight lines
	const ends = Corner | Middle
	if p[i].Flag&ends == 0 || p[j].Flag&ends == 0 {
		return 0, false
	}
	ctrl, area, ok := bc.fit.fit(p, i, j, bc.cfg.CurveMaxDistance)
	if !ok {
		return 0, false
	}
	bc.isCurve = true
	bc.ctrl = ctrl
	return bc.cfg.CurveCostCurve + bc.cfg.CurveCostArea*area, true
}

// Relaxed implements [CostModel].
func (bc *BezierCost) Relaxed(j int) {
	n := &bc.p[j]
	if bc.isCurve {
		n.Flag |= Bezier
		n.Ctrl = bc.ctrl
	} else {
		// a straight edge replaced an earlier curve
		n.Flag &^= Bezier
		n.Ctrl = [2]Point{}
	}
}
