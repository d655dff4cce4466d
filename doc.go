// Package spvec converts traced raster contours into vector paths made of
// straight segments and cubic Béziers.
//
// Vectorization is posed as two shortest-path problems over the points of a
// contour. The points form a directed acyclic graph in which an edge (i, j)
// replaces the points between i and j with a single segment, and a cost
// model decides which edges exist and what they cost. Fewer, better fitting
// segments are cheaper.
//
// # Line phase
//
// The first phase simplifies the closed contour to a polygon. [LineCost]
// admits an edge if every contour point it skips lies within
// [Config.LineMaxDistance] of the segment, and charges a fixed cost per
// segment plus penalties for the distance of the skipped points.
//
// # Curve phase
//
// The polygon is then refined by [IntermediatePoints], which flags sharp
// vertices as [Corner] and inserts [Middle] points on the edges. [BezierCost]
// admits two kinds of edges: straight runs that only skip Middle points, and
// cubic Béziers fitted by [FitBezier] between Corner and Middle points. A
// curve is accepted if it stays within [Config.CurveMaxDistance] of the
// polygon, and costs more the more area lies between it and the polygon, as
// computed by [PolylineArea].
//
// [Vectorize] runs both phases on one contour and [VectorizeAll] on many
// contours concurrently. The nodes of the resulting path carry the [Bezier]
// flag and control points of the curves ending at them; [Path.BezPath]
// converts them into path elements that can be written as SVG path data.
//
// # Solver
//
// [Solve] finds minimal paths in a single pass over the nodes, looking back
// at most [Config.DepthLimit] nodes and giving up after
// [Config.MissedLimit] consecutive missing edges. The edge between
// neighboring nodes always exists, so every node is reached, but a cheaper
// long edge hidden behind many missing ones can be missed.
package spvec
