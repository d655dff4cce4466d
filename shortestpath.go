package spvec

import (
	"math"
	"slices"
)

// CostModel decides which edges of the path graph exist and what they cost.
// It is implemented by [*LineCost] and [*BezierCost].
type CostModel interface {
	// TryCost reports whether the edge from node i to node j exists, and its
	// cost if so. i < j.
	TryCost(i, j int) (float64, bool)
	// Relaxed is called after the edge most recently passed to TryCost
	// became the best known way to reach node j.
	Relaxed(j int)
}

// Solve computes the minimal-cost paths from the first node of p to every
// other node, storing the results in the Cost, Pred and InDegree fields.
//
// The nodes of p are a topological order of a directed acyclic graph. The
// edge (i, j) exists if
//
//  1. j − cfg.DepthLimit ≤ i < j,
//  2. m.TryCost(i, j) succeeds, and
//  3. fewer than cfg.MissedLimit consecutive edges between i and j were
//     missing.
//
// Nodes are processed in order. For each node j its predecessors are
// examined backwards from j−1 until one of the limits is reached. Condition
// 3 can miss a cheaper long edge behind a run of missing ones; that trades
// optimality for speed.
//
// The edge (j−1, j) exists in both cost models, so every node is reached.
func Solve(p Path, cfg *Config, m CostModel) {
	if len(p) == 0 {
		return
	}
	p[0].Cost = 0
	p[0].Pred = NoPred
	p[0].InDegree = 0

	for j := 1; j < len(p); j++ {
		nj := &p[j]
		nj.Cost = math.Inf(1)
		nj.Pred = NoPred
		nj.InDegree = 0

		missed := 0
		for i := j - 1; i >= 0 && i >= j-cfg.DepthLimit; i-- {
			c, ok := m.TryCost(i, j)
			if !ok {
				missed++
				if missed >= cfg.MissedLimit {
					break
				}
				continue
			}
			missed = 0
			nj.InDegree++
			if p[i].Cost+c < nj.Cost {
				nj.Cost = p[i].Cost + c
				nj.Pred = i
				m.Relaxed(j)
			}
		}
	}
}

// Extract returns the minimal path from the first to the last node of a
// solved path, and its cost.
func Extract(p Path) (Path, float64) {
	if len(p) == 0 {
		return nil, 0
	}
	var q Path
	for i := len(p) - 1; i != NoPred; i = p[i].Pred {
		q = append(q, p[i])
	}
	cost := q[0].Cost
	slices.Reverse(q)
	return q, cost
}
