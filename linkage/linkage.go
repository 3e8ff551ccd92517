// This file implements Build, the single driver loop shared by both
// stopping policies, and the Result it produces.
package linkage

import (
	"github.com/katalvlaran/spanforest/core"
)

// Result carries the outcome of one construction run.
type Result struct {
	// Forest holds the final disjoint trees, largest first.
	Forest *Forest

	// Connections is the number of accepted connections, including
	// redundant ones that changed no tree.
	Connections int

	// Completing is the edge whose acceptance left a single tree
	// spanning every point. Non-nil only in Exhaustive mode.
	Completing *Edge

	// points resolves Pair positions back to coordinates.
	points []core.Point
}

// Build runs the incremental closest-pair construction over points,
// applying any number of functional Options.
//
// Steps:
//  1. Apply options; surface ErrOptionViolation immediately.
//  2. Select the stopping policy; exhaustive mode requires at least two
//     points (ErrTooFewPoints).
//  3. Compute the DistanceIndex and the deterministic ascending edge
//     ordering.
//  4. Sweep the edges in order. Each edge is classified by what it does
//     to the forest — create a new two-node tree, graft a new point onto
//     an existing tree, merge two trees, or nothing (endpoints already
//     connected) — and every case counts as one accepted connection and
//     fires OnConnect. The stopping policy is consulted after each
//     accepted connection; on halt, remaining edges are never touched.
//  5. Finalize: group participating points by set root into a Forest
//     sorted by descending tree size.
//
// Complexity: O(n² log n) time dominated by the edge ordering;
// near-O(α(n)) amortized per sweep step. Memory: O(n²).
func Build(points []core.Point, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := len(points)
	var policy stopPolicy
	switch o.Mode {
	case Bounded:
		policy = boundedPolicy{max: o.MaxConnections}
	default:
		if n < 2 {
			return nil, ErrTooFewPoints
		}
		policy = exhaustivePolicy{total: n}
	}

	// Private copy: the Result resolves Pair positions against it.
	pts := append([]core.Point(nil), points...)
	edges := NewDistanceIndex(pts).Edges()

	d := newDisjointSet(n)
	seen := make([]bool, n) // participated in at least one accepted connection
	var (
		connections int
		largest     int // size of the largest tree so far
		completing  *Edge
	)
	for k := range edges {
		e := edges[k]
		a, b := e.Pair.A, e.Pair.B
		kind := classify(d, seen, a, b)
		root, _ := d.union(a, b)
		seen[a], seen[b] = true, true
		if s := d.size[root]; s > largest {
			largest = s
		}

		connections++
		o.OnConnect(e, kind)

		if policy.done(connections, largest) {
			if policy.recordCompleting() {
				completing = &edges[k]
			}
			break
		}
	}

	// Exhaustive mode must end with the completing edge in hand; on a
	// complete pair set the sweep cannot run dry first.
	if policy.recordCompleting() && completing == nil {
		return nil, ErrIncomplete
	}

	return &Result{
		Forest:      newForest(pts, d, seen),
		Connections: connections,
		Completing:  completing,
		points:      pts,
	}, nil
}

// classify names the structural change an accepted edge is about to
// cause. "In a tree" means the point already participated in an earlier
// accepted connection.
func classify(d *disjointSet, seen []bool, a, b int) ConnectKind {
	switch {
	case !seen[a] && !seen[b]:
		return ConnectCreate
	case seen[a] != seen[b]:
		return ConnectGraft
	case d.find(a) == d.find(b):
		return ConnectRedundant
	default:
		return ConnectMerge
	}
}
