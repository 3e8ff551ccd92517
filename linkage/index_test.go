package linkage_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/linkage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomPoints generates n distinct points with coordinates in
// [0, span) from a deterministically seeded generator, so every test
// run sees the same cloud.
func randomPoints(n int, span uint64, seed int64) []core.Point {
	r := rand.New(rand.NewSource(seed))
	used := make(map[core.Point]bool, n)
	points := make([]core.Point, 0, n)
	for len(points) < n {
		p := core.Point{
			X: r.Uint64() % span,
			Y: r.Uint64() % span,
			Z: r.Uint64() % span,
		}
		if used[p] {
			continue
		}
		used[p] = true
		points = append(points, p)
	}
	return points
}

// TestNewDistanceIndex_PairCount verifies the index holds exactly
// n·(n−1)/2 pairs and resolves points by input position.
func TestNewDistanceIndex_PairCount(t *testing.T) {
	points := randomPoints(5, 100, 1)
	ix := linkage.NewDistanceIndex(points)

	assert.Equal(t, 10, ix.Len()) // 5·4/2
	assert.Equal(t, 5, ix.NumPoints())
	for i, p := range points {
		assert.Equal(t, p, ix.Point(i))
	}
	assert.Equal(t, points, ix.Points())
}

// TestDistance_Lookup verifies order-insensitive pair lookup and that
// self-pairs and out-of-range positions report ok == false.
func TestDistance_Lookup(t *testing.T) {
	ix := linkage.NewDistanceIndex([]core.Point{
		{},
		{X: 3, Y: 4},
	})

	d, ok := ix.Distance(0, 1)
	require.True(t, ok)
	assert.Equal(t, uint64(5), d)

	// Same pair, reversed arguments.
	rev, ok := ix.Distance(1, 0)
	require.True(t, ok)
	assert.Equal(t, d, rev)

	_, ok = ix.Distance(1, 1)
	assert.False(t, ok)
	_, ok = ix.Distance(0, 2)
	assert.False(t, ok)
}

// TestEdges_NonDecreasing verifies the order invariant on a random
// cloud: distances never decrease along the sequence, and every pair
// is canonical (A < B).
func TestEdges_NonDecreasing(t *testing.T) {
	points := randomPoints(40, 1000, 2)
	edges := linkage.NewDistanceIndex(points).Edges()

	require.Len(t, edges, 40*39/2)
	for i, e := range edges {
		assert.Less(t, e.Pair.A, e.Pair.B, "edge %d not canonical", i)
		if i > 0 {
			assert.GreaterOrEqual(t, e.Dist, edges[i-1].Dist, "edge %d out of order", i)
		}
	}
}

// TestEdges_TieOrder pins the deterministic secondary key. The four
// points below are mutually at distance 1 (the unit-diagonal pairs are
// sqrt(2), floored to 1), so the whole sequence is one big tie and must
// come out in canonical pair order.
func TestEdges_TieOrder(t *testing.T) {
	edges := linkage.NewDistanceIndex([]core.Point{
		{},
		{X: 1},
		{Y: 1},
		{Z: 1},
	}).Edges()

	want := []linkage.Edge{
		{Pair: linkage.Pair{A: 0, B: 1}, Dist: 1},
		{Pair: linkage.Pair{A: 0, B: 2}, Dist: 1},
		{Pair: linkage.Pair{A: 0, B: 3}, Dist: 1},
		{Pair: linkage.Pair{A: 1, B: 2}, Dist: 1},
		{Pair: linkage.Pair{A: 1, B: 3}, Dist: 1},
		{Pair: linkage.Pair{A: 2, B: 3}, Dist: 1},
	}
	assert.Empty(t, cmp.Diff(want, edges))
}

// TestEdges_Idempotent verifies byte-identical edge sequences across
// repeated calls on one index and across freshly built indexes — the
// map's iteration order must never leak through.
func TestEdges_Idempotent(t *testing.T) {
	points := randomPoints(30, 64, 3) // small span forces many exact ties
	ix := linkage.NewDistanceIndex(points)

	first := ix.Edges()
	second := ix.Edges()
	fresh := linkage.NewDistanceIndex(points).Edges()

	assert.Empty(t, cmp.Diff(first, second))
	assert.Empty(t, cmp.Diff(first, fresh))
}
