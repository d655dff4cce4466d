package params

import (
	"fmt"
	"strconv"

	"honnef.co/go/spvec"
)

type entry struct {
	name string
	get  func(f *File) string
	set  func(f *File, v string) error
}

func intEntry(name string, field func(f *File) *int) entry {
	return entry{
		name: name,
		get:  func(f *File) string { return strconv.Itoa(*field(f)) },
		set: func(f *File, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*field(f) = n
			return nil
		},
	}
}

func floatEntry(name string, field func(f *File) *float64) entry {
	return entry{
		name: name,
		get:  func(f *File) string { return fmt.Sprintf("%f", *field(f)) },
		set: func(f *File, v string) error {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return err
			}
			*field(f) = x
			return nil
		},
	}
}

// boolEntry stores flags as 0 and 1. Any other integer counts as true.
func boolEntry(name string, field func(f *File) *bool) entry {
	return entry{
		name: name,
		get: func(f *File) string {
			if *field(f) {
				return "1"
			}
			return "0"
		},
		set: func(f *File, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			*field(f) = n != 0
			return nil
		},
	}
}

// entries lists the settings of the Lines format, in the order they are
// written.
var entries = []entry{
	boolEntry("tr_middle_points", func(f *File) *bool { return &f.Trace.MiddlePoints }),
	{
		name: "tr_threshold",
		get:  func(f *File) string { return strconv.Itoa(int(f.Trace.Threshold)) },
		set: func(f *File, v string) error {
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return err
			}
			f.Trace.Threshold = uint8(n)
			return nil
		},
	},
	intEntry("sp_depth_limit", func(f *File) *int { return &f.Config.DepthLimit }),
	intEntry("sp_missed_limit", func(f *File) *int { return &f.Config.MissedLimit }),

	floatEntry("l_max_distance", func(f *File) *float64 { return &f.Config.LineMaxDistance }),
	floatEntry("l_cost_segment", func(f *File) *float64 { return &f.Config.LineCostSegment }),
	floatEntry("l_cost_distance", func(f *File) *float64 { return &f.Config.LineCostDistance }),
	floatEntry("l_cost_area", func(f *File) *float64 { return &f.Config.LineCostArea }),

	{
		name: "b_fit_heuristic",
		get:  func(f *File) string { return strconv.Itoa(int(f.Config.FitHeuristic)) },
		set: func(f *File, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return err
			}
			f.Config.FitHeuristic = spvec.FitHeuristic(n)
			return nil
		},
	},
	floatEntry("b_corner_angle", func(f *File) *float64 { return &f.Config.CornerAngle }),
	floatEntry("b_max_distance", func(f *File) *float64 { return &f.Config.CurveMaxDistance }),
	floatEntry("b_cost_curve", func(f *File) *float64 { return &f.Config.CurveCostCurve }),
	floatEntry("b_cost_area", func(f *File) *float64 { return &f.Config.CurveCostArea }),
	floatEntry("b_cost_segment", func(f *File) *float64 { return &f.Config.CurveCostSegment }),

	boolEntry("svg_points", func(f *File) *bool { return &f.SVG.Points }),
	boolEntry("svg_lines1", func(f *File) *bool { return &f.SVG.Lines }),
	boolEntry("svg_lines2", func(f *File) *bool { return &f.SVG.Refined }),
	boolEntry("svg_curves", func(f *File) *bool { return &f.SVG.Curves }),
	boolEntry("svg_control", func(f *File) *bool { return &f.SVG.Control }),
	boolEntry("svg_fill", func(f *File) *bool { return &f.SVG.Fill }),
}
