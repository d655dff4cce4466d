// Package svg writes vectorization results as SVG documents, optionally
// with debug layers showing the intermediate stages.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"honnef.co/go/spvec"
)

// Layers selects what is drawn for each contour.
type Layers struct {
	// Points draws the traced contour.
	Points bool `toml:"points" yaml:"points"`
	// Lines draws the result of the line phase.
	Lines bool `toml:"lines" yaml:"lines"`
	// Refined draws the line phase's result with its intermediate points.
	Refined bool `toml:"refined" yaml:"refined"`
	// Curves draws the final path.
	Curves bool `toml:"curves" yaml:"curves"`
	// Control draws the control points of the final path's curves.
	Control bool `toml:"control" yaml:"control"`
	// Fill fills the final paths of all contours.
	Fill bool `toml:"fill" yaml:"fill"`
}

// DefaultLayers draws the final path over the refined polygon.
var DefaultLayers = Layers{
	Refined: true,
	Curves:  true,
	Control: true,
}

// Style describes how a path is drawn.
type Style struct {
	Color string
	// Width is the stroke width. It is ignored if Fill is set.
	Width float64
	Fill  bool
	// Marker is the id of a marker drawn at every vertex, if not empty.
	Marker string
}

const (
	markerBlue    = "blue"
	markerRed     = "red"
	markerControl = "control"
)

const header = `<?xml version="1.0" standalone="yes"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d">
<g id="all">
<defs>
<marker id="blue" viewBox="0 0 10 10" refX="5" refY="5" markerUnits="strokeWidth" markerWidth="3" markerHeight="3">
<path fill="blue" stroke="none" d="M 0 0 L 10 0 L 10 10 L 0 10 z" />
</marker>
<marker id="red" viewBox="0 0 10 10" refX="5" refY="5" markerUnits="userSpaceOnUse" markerWidth="0.5" markerHeight="0.5">
<path fill="red" stroke="none" d="M 0 0 L 10 0 L 10 10 L 0 10 z" />
</marker>
<marker id="control" viewBox="0 0 10 10" refX="5" refY="5" markerUnits="userSpaceOnUse" markerWidth="1" markerHeight="1">
<path stroke="green" stroke-width="1" fill="none" d="M 5 0 L 5 10 M 0 5 L 10 5 z" />
</marker>
</defs>
`

// Writer writes a single SVG document. Write errors are sticky and
// reported by Close.
type Writer struct {
	bw   *bufio.Writer
	opts spvec.SVGOptions
}

// NewWriter returns a writer that writes path coordinates with at most
// precision fractional digits. A precision of 0 writes them exactly.
func NewWriter(w io.Writer, precision int) *Writer {
	return &Writer{
		bw:   bufio.NewWriter(w),
		opts: spvec.SVGOptions{MaxPrecision: precision},
	}
}

// Header starts the document, which is width×height pixels large.
func (w *Writer) Header(width, height int) {
	fmt.Fprintf(w.bw, header, width, height)
}

// Image references the image that has been traced as a background.
func (w *Writer) Image(width, height int, href string) {
	fmt.Fprintf(w.bw, `<image x="0" y="0" width="%d" height="%d" xlink:href="`, width, height)
	xml.EscapeText(w.bw, []byte(href))
	fmt.Fprint(w.bw, `" style="image-rendering: crisp-edges;" />`+"\n")
}

// Path draws p.
func (w *Writer) Path(p spvec.BezPath, st Style) {
	if len(p) == 0 {
		return
	}
	if st.Fill {
		fmt.Fprintf(w.bw, `<path style="fill:%s; stroke:none" `, st.Color)
	} else {
		fmt.Fprintf(w.bw, `<path style="fill:none; stroke:%s; stroke-width:%g" `, st.Color, st.Width)
	}
	if st.Marker != "" {
		fmt.Fprintf(w.bw, `marker-mid="url(#%[1]s)" marker-start="url(#%[1]s)" marker-end="url(#%[1]s)" `, st.Marker)
	}
	fmt.Fprint(w.bw, `d="`)
	p.WriteSVG(w.bw, w.opts)
	fmt.Fprint(w.bw, `" />`+"\n")
}

// ControlPoints draws dashed lines from the ends of each curve of p to its
// control points.
func (w *Writer) ControlPoints(p spvec.Path) {
	if len(p) == 0 {
		return
	}
	fmt.Fprintf(w.bw, `<g style="fill:none; stroke:green; stroke-width:0.05; stroke-dasharray:0.5,0.5" marker-end="url(#%s)">`+"\n", markerControl)
	for i := 1; i < len(p); i++ {
		if p[i].Flag&spvec.Bezier == 0 {
			continue
		}
		w.segment(p[i-1].Point, p[i].Ctrl[0])
		w.segment(p[i].Point, p[i].Ctrl[1])
	}
	fmt.Fprint(w.bw, "</g>\n")
}

func (w *Writer) segment(a, b spvec.Point) {
	fmt.Fprint(w.bw, `<path d="`)
	spvec.BezPath{spvec.MoveTo(a), spvec.LineTo(b)}.WriteSVG(w.bw, w.opts)
	fmt.Fprint(w.bw, `" />`+"\n")
}

// Result draws the selected stages of vectorizing contour. The Fill
// layer isn't drawn per contour, see [Writer.Filled].
func (w *Writer) Result(contour []spvec.Point, res *spvec.Result, l Layers) {
	if l.Points {
		w.Path(spvec.NewPath(contour).Polyline(), Style{Color: "blue", Width: 0.1, Marker: markerBlue})
	}
	if l.Lines {
		w.Path(res.Lines.Polyline(), Style{Color: "red", Width: 0.1, Marker: markerRed})
	}
	if l.Refined {
		w.Path(res.Refined.Polyline(), Style{Color: "blue", Width: 0.1, Marker: markerBlue})
	}
	if l.Curves {
		w.Path(res.Curves.BezPath(), Style{Color: "green", Width: 0.3})
		w.Path(straightSegments(res.Curves), Style{Color: "red", Width: 0.3, Marker: markerRed})
		if l.Control {
			w.ControlPoints(res.Curves)
		}
	}
}

// Filled fills all paths as a single shape, so that holes stay empty.
func (w *Writer) Filled(paths []spvec.BezPath, color string) {
	var all spvec.BezPath
	for _, p := range paths {
		all = append(all, p...)
	}
	w.Path(all, Style{Color: color, Fill: true})
}

// Close ends the document and flushes it.
func (w *Writer) Close() error {
	fmt.Fprint(w.bw, "</g>\n</svg>\n")
	return w.bw.Flush()
}

// straightSegments returns the straight segments of p, skipping over its
// curves.
func straightSegments(p spvec.Path) spvec.BezPath {
	if len(p) == 0 {
		return nil
	}
	out := spvec.BezPath{spvec.MoveTo(p[0].Point)}
	for _, n := range p[1:] {
		if n.Flag&spvec.Bezier != 0 {
			out.MoveTo(n.Point)
		} else {
			out.LineTo(n.Point)
		}
	}
	return out
}

// Results draws the layers of all results. contours and results
// correspond by index.
func (w *Writer) Results(contours [][]spvec.Point, results []*spvec.Result, l Layers) {
	if l.Fill {
		paths := make([]spvec.BezPath, len(results))
		for i, res := range results {
			paths[i] = res.Curves.BezPath()
		}
		w.Filled(paths, "black")
	}
	for i, res := range results {
		w.Result(contours[i], res, l)
	}
}
