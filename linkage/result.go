// This file provides the collaborator-facing derived values over a
// finished Result: cluster-size products and the completing edge's
// endpoints.
package linkage

import (
	"github.com/katalvlaran/spanforest/core"
)

// LargestSizesProduct returns the product of the k largest tree sizes.
//
// Trees beyond the forest's length are absent, not zero: with fewer
// than k trees only the existing sizes multiply, so a single tree of
// size s yields s. An empty forest, or k <= 0, yields 0.
func (r *Result) LargestSizesProduct(k int) uint64 {
	trees := r.Forest.trees
	if k <= 0 || len(trees) == 0 {
		return 0
	}
	if k > len(trees) {
		k = len(trees)
	}

	product := uint64(1)
	for _, t := range trees[:k] {
		product *= uint64(t.Size())
	}

	return product
}

// CompletingEndpoints returns the two points joined by the completing
// edge, in canonical order. ErrNoCompletingEdge when none was recorded.
func (r *Result) CompletingEndpoints() (core.Point, core.Point, error) {
	if r.Completing == nil {
		return core.Point{}, core.Point{}, ErrNoCompletingEdge
	}

	return r.points[r.Completing.Pair.A], r.points[r.Completing.Pair.B], nil
}

// CompletingXProduct returns the product of the X coordinates of the
// completing edge's endpoints. ErrNoCompletingEdge when none was
// recorded (bounded mode never records one).
func (r *Result) CompletingXProduct() (uint64, error) {
	u, v, err := r.CompletingEndpoints()
	if err != nil {
		return 0, err
	}

	return u.X * v.X, nil
}
