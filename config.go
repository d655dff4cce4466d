package spvec

import (
	"errors"
	"fmt"
)

// FitHeuristic selects how candidate Bézier curves are constructed.
type FitHeuristic int

const (
	// FitTangent places the control points so that the curve touches a
	// tangent taken from the middle of the span.
	FitTangent FitHeuristic = 1
)

// Config holds the parameters of both optimization phases. It is never
// modified by the optimizer.
type Config struct {
	// DepthLimit bounds how far back the solver looks for predecessors.
	DepthLimit int `toml:"depth_limit" yaml:"depth_limit"`
	// MissedLimit stops the scan for predecessors after this many
	// consecutive missing edges.
	MissedLimit int `toml:"missed_limit" yaml:"missed_limit"`

	// LineMaxDistance is the largest distance a contour point may have from
	// the straight segment replacing it.
	LineMaxDistance  float64 `toml:"line_max_distance" yaml:"line_max_distance"`
	LineCostSegment  float64 `toml:"line_cost_segment" yaml:"line_cost_segment"`
	LineCostDistance float64 `toml:"line_cost_distance" yaml:"line_cost_distance"`
	LineCostArea     float64 `toml:"line_cost_area" yaml:"line_cost_area"`

	FitHeuristic FitHeuristic `toml:"fit_heuristic" yaml:"fit_heuristic"`
	// CornerAngle is the angle, in degrees, between the two edges of a
	// vertex of the line phase at or below which the vertex counts as a
	// corner.
	CornerAngle float64 `toml:"corner_angle" yaml:"corner_angle"`
	// CurveMaxDistance is the largest distance between a fitted curve and
	// the polyline it replaces.
	CurveMaxDistance float64 `toml:"curve_max_distance" yaml:"curve_max_distance"`
	CurveCostCurve   float64 `toml:"curve_cost_curve" yaml:"curve_cost_curve"`
	CurveCostArea    float64 `toml:"curve_cost_area" yaml:"curve_cost_area"`
	CurveCostSegment float64 `toml:"curve_cost_segment" yaml:"curve_cost_segment"`
}

var DefaultConfig = Config{
	DepthLimit:  500,
	MissedLimit: 10,

	LineMaxDistance:  1,
	LineCostSegment:  10,
	LineCostDistance: 0,
	LineCostArea:     1,

	FitHeuristic:     FitTangent,
	CornerAngle:      90,
	CurveMaxDistance: 1.1,
	CurveCostCurve:   20,
	CurveCostArea:    1,
	CurveCostSegment: 40,
}

// Validate reports all invalid settings of cfg.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.DepthLimit < 1 {
		errs = append(errs, fmt.Errorf("depth limit %d < 1", cfg.DepthLimit))
	}
	if cfg.MissedLimit < 1 {
		errs = append(errs, fmt.Errorf("missed limit %d < 1", cfg.MissedLimit))
	}
	if cfg.LineMaxDistance < 0 {
		errs = append(errs, fmt.Errorf("negative line distance %g", cfg.LineMaxDistance))
	}
	if cfg.CurveMaxDistance < 0 {
		errs = append(errs, fmt.Errorf("negative curve distance %g", cfg.CurveMaxDistance))
	}
	for _, w := range [...]struct {
		name string
		v    float64
	}{
		{"line segment cost", cfg.LineCostSegment},
		{"line distance cost", cfg.LineCostDistance},
		{"line area cost", cfg.LineCostArea},
		{"curve cost", cfg.CurveCostCurve},
		{"curve area cost", cfg.CurveCostArea},
		{"curve segment cost", cfg.CurveCostSegment},
	} {
		if w.v < 0 {
			errs = append(errs, fmt.Errorf("negative %s %g", w.name, w.v))
		}
	}
	if cfg.FitHeuristic != FitTangent {
		errs = append(errs, fmt.Errorf("unknown fit heuristic %d", cfg.FitHeuristic))
	}
	if cfg.CornerAngle <= 0 || cfg.CornerAngle > 180 {
		errs = append(errs, fmt.Errorf("corner angle %g outside (0, 180]", cfg.CornerAngle))
	}
	return errors.Join(errs...)
}
