// This file implements the DistanceIndex: the exact integer distance
// between every unordered pair of distinct input points, and the
// deterministic ascending edge ordering derived from it.
package linkage

import (
	"sort"

	"github.com/katalvlaran/spanforest/core"
)

// Pair identifies an unordered pair of points by their positions in
// the input list, canonicalized so A < B. Positions — not coordinate
// values — identify points, so two input lines with equal coordinates
// are distinct nodes at distance zero.
type Pair struct {
	A, B int
}

// Edge is a candidate connection: a canonical Pair weighted by the
// exact integer distance between its endpoints.
type Edge struct {
	Pair Pair
	Dist uint64
}

// DistanceIndex holds the distance between every unordered pair of
// distinct input points. It is immutable once built.
type DistanceIndex struct {
	points []core.Point
	dist   map[Pair]uint64
}

// NewDistanceIndex computes the full canonical-pair → distance mapping
// over points. Pure: the input slice is copied, nothing is mutated.
//
// Time: O(n²). Memory: O(n²) — n·(n−1)/2 entries.
func NewDistanceIndex(points []core.Point) *DistanceIndex {
	n := len(points)
	ix := &DistanceIndex{
		points: append([]core.Point(nil), points...),
		dist:   make(map[Pair]uint64, n*(n-1)/2),
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ix.dist[Pair{A: i, B: j}] = points[i].Dist(points[j])
		}
	}

	return ix
}

// Len returns the number of stored pairs: n·(n−1)/2.
func (ix *DistanceIndex) Len() int { return len(ix.dist) }

// NumPoints returns the number of indexed points.
func (ix *DistanceIndex) NumPoints() int { return len(ix.points) }

// Point returns the point at input position i.
func (ix *DistanceIndex) Point(i int) core.Point { return ix.points[i] }

// Points returns a copy of the indexed points in input order.
func (ix *DistanceIndex) Points() []core.Point {
	return append([]core.Point(nil), ix.points...)
}

// Distance reports the distance between the points at positions i and
// j, in either argument order. ok is false when i == j or either
// position is out of range.
func (ix *DistanceIndex) Distance(i, j int) (uint64, bool) {
	if i > j {
		i, j = j, i
	}
	d, ok := ix.dist[Pair{A: i, B: j}]

	return d, ok
}

// Edges returns every pair as an Edge, sorted ascending by distance.
// Pairs with equal distance are ordered by the canonical pair itself:
// first position, then second. The full key is a total order, so the
// map's iteration order never leaks into the result and repeated calls
// yield identical sequences.
//
// Time: O(n² log n). Memory: O(n²).
func (ix *DistanceIndex) Edges() []Edge {
	edges := make([]Edge, 0, len(ix.dist))
	for pair, d := range ix.dist {
		edges = append(edges, Edge{Pair: pair, Dist: d})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Dist != edges[j].Dist {
			return edges[i].Dist < edges[j].Dist
		}
		if edges[i].Pair.A != edges[j].Pair.A {
			return edges[i].Pair.A < edges[j].Pair.A
		}

		return edges[i].Pair.B < edges[j].Pair.B
	})

	return edges
}
