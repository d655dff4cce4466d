package spvec

import (
	"errors"
	"fmt"
	"strings"
)

// Flag annotates a path node for the curve phase.
type Flag uint8

const (
	// Corner marks a vertex where the contour turns sharply. A curve may
	// start or end here.
	Corner Flag = 1 << iota
	// Middle marks a synthetic point inserted on a straight edge of the
	// line phase. A curve may start or end here.
	Middle
	// Bezier marks a node that ends a cubic Bézier; the node's Ctrl field
	// holds the interior control points.
	Bezier
)

func (f Flag) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	if f&Corner != 0 {
		parts = append(parts, "Corner")
	}
	if f&Middle != 0 {
		parts = append(parts, "Middle")
	}
	if f&Bezier != 0 {
		parts = append(parts, "Bezier")
	}
	return strings.Join(parts, "|")
}

// NoPred is the predecessor of nodes that have not been reached, and of the
// first node.
const NoPred = -1

var (
	ErrTooFewPoints = errors.New("spvec: path needs at least 2 points")
	ErrOpenPath     = errors.New("spvec: path is not closed")
	ErrNonFinite    = errors.New("spvec: path has an infinite or NaN coordinate")
)

// Node is a vertex of a path together with the bookkeeping of the
// shortest-path solver and the annotations of the curve phase.
type Node struct {
	Point

	// Cost is the minimal accumulated cost of reaching this node from the
	// first node of the path.
	Cost float64
	// Pred is the index of the predecessor on the minimal path, or NoPred.
	Pred int
	// InDegree counts the edges ending at this node that the solver found.
	InDegree int

	Flag Flag
	// Arclen is the length of the path up to this node.
	Arclen float64
	// Ctrl holds the interior control points of the curve that ends at this
	// node. It is only meaningful if Flag has Bezier set.
	Ctrl [2]Point
}

// Path is a sequence of nodes. Paths fed to [Vectorize] and
// [IntermediatePoints] are closed: the first and last node share the same
// position.
type Path []Node

// NewPath returns a path with one unflagged node per point.
func NewPath(pts []Point) Path {
	p := make(Path, len(pts))
	for i, pt := range pts {
		p[i] = Node{Point: pt, Pred: NoPred}
	}
	return p
}

// Points returns the positions of the nodes.
func (p Path) Points() []Point {
	return p.appendPoints(make([]Point, 0, len(p)))
}

func (p Path) appendPoints(dst []Point) []Point {
	for i := range p {
		dst = append(dst, p[i].Point)
	}
	return dst
}

// IsClosed reports whether the path has at least two nodes and ends where
// it starts.
func (p Path) IsClosed() bool {
	return len(p) >= 2 && p[0].Point == p[len(p)-1].Point
}

// check reports the boundary errors shared by the pipeline entry points.
func (p Path) check() error {
	if len(p) < 2 {
		return ErrTooFewPoints
	}
	if !p.IsClosed() {
		return ErrOpenPath
	}
	for i := range p {
		if p[i].IsNaN() || p[i].IsInf() {
			return fmt.Errorf("node %d: %w", i, ErrNonFinite)
		}
	}
	return nil
}

// Count returns the number of curve and straight segments of a solved
// path.
func (p Path) Count() (curves, lines int) {
	for i := 1; i < len(p); i++ {
		if p[i].Flag&Bezier != 0 {
			curves++
		} else {
			lines++
		}
	}
	return curves, lines
}
