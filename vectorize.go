package spvec

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of vectorizing one contour.
type Result struct {
	// Lines is the polygon found by the line phase.
	Lines Path
	// Refined is Lines after [IntermediatePoints], with the solver state of
	// the curve phase.
	Refined Path
	// Curves is the final path. Nodes with the Bezier flag end a cubic
	// Bézier, all other nodes end a straight segment.
	Curves Path

	LineCost  float64
	CurveCost float64

	Stats Stats
}

// Stats summarizes one or more results.
type Stats struct {
	Contours int
	// Points is the number of contour points, not counting the duplicated
	// end point.
	Points int
	// Lines is the number of segments found by the line phase.
	Lines int
	// Curves and Straight are the number of curve and straight segments of
	// the final paths.
	Curves   int
	Straight int

	// LinePenalty is the part of the line phase's cost not caused by
	// the number of segments.
	LinePenalty float64
	// CurvePenalty is the part of the curve phase's cost not caused by
	// the number of segments.
	CurvePenalty float64

	// LineArea is the area between the contours and the line phase.
	// LineAreaOK is false if a contour strayed too far from its polygon
	// for the area to be computed.
	LineArea   float64
	LineAreaOK bool

	// LineTime and CurveTime are the time spent in the two phases.
	LineTime  time.Duration
	CurveTime time.Duration
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	if s.Contours == 0 {
		s.LineAreaOK = true
	}
	s.Contours += o.Contours
	s.Points += o.Points
	s.Lines += o.Lines
	s.Curves += o.Curves
	s.Straight += o.Straight
	s.LinePenalty += o.LinePenalty
	s.CurvePenalty += o.CurvePenalty
	s.LineArea += o.LineArea
	s.LineAreaOK = s.LineAreaOK && o.LineAreaOK
	s.LineTime += o.LineTime
	s.CurveTime += o.CurveTime
}

// Vectorize converts a closed contour into straight segments and cubic
// Béziers. The first and last point of contour must be identical.
//
// The contour is first simplified to a polygon whose edges stay within
// cfg.LineMaxDistance of the contour. Runs of polygon edges are then
// replaced by curves that stay within cfg.CurveMaxDistance of the polygon,
// wherever that lowers the total cost.
func Vectorize(contour []Point, cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	p := NewPath(contour)
	if err := p.check(); err != nil {
		return nil, err
	}

	start := time.Now()
	Solve(p, cfg, NewLineCost(p, cfg))
	lines, lineCost := Extract(p)
	lineTime := time.Since(start)

	start = time.Now()
	refined, err := IntermediatePoints(lines, cfg.CornerAngle)
	if err != nil {
		return nil, err
	}
	Solve(refined, cfg, NewBezierCost(refined, cfg))
	curves, curveCost := Extract(refined)
	curveTime := time.Since(start)

	nc, ns := curves.Count()
	res := &Result{
		Lines:     lines,
		Refined:   refined,
		Curves:    curves,
		LineCost:  lineCost,
		CurveCost: curveCost,
		Stats: Stats{
			Contours:     1,
			Points:       len(p) - 1,
			Lines:        len(lines) - 1,
			Curves:       nc,
			Straight:     ns,
			LinePenalty:  lineCost - float64(len(lines)-1)*cfg.LineCostSegment,
			CurvePenalty: curveCost - float64(ns)*cfg.CurveCostSegment - float64(nc)*cfg.CurveCostCurve,
			LineTime:     lineTime,
			CurveTime:    curveTime,
		},
	}
	// the polygon may cut corners of the contour by up to the line distance
	// on either side
	res.Stats.LineArea, res.Stats.LineAreaOK = Fidelity(p, lines, 2*cfg.LineMaxDistance)
	return res, nil
}

// VectorizeAll vectorizes independent contours concurrently, using at most
// workers goroutines; workers ≤ 0 means no limit. The results are in the
// order of contours. Canceling ctx stops contours that haven't started yet.
func VectorizeAll(ctx context.Context, contours [][]Point, cfg *Config, workers int) ([]*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	results := make([]*Result, len(contours))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, contour := range contours {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Vectorize(contour, cfg)
			if err != nil {
				return fmt.Errorf("contour %d: %w", i, err)
			}
			slog.Debug("vectorized contour",
				"index", i,
				"points", res.Stats.Points,
				"lines", res.Stats.Lines,
				"curves", res.Stats.Curves,
				"straight", res.Stats.Straight,
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
