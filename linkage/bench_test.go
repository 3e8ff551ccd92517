package linkage_test

import (
	"testing"

	"github.com/katalvlaran/spanforest/linkage"
)

// BenchmarkDistanceIndex_Edges measures the O(n²) index plus the
// O(n² log n) ordering on a 300-point cloud (44,850 pairs).
func BenchmarkDistanceIndex_Edges(b *testing.B) {
	points := randomPoints(300, 1000, 42) // pre-build cloud once
	b.ResetTimer()                        // exclude generation
	for i := 0; i < b.N; i++ {
		_ = linkage.NewDistanceIndex(points).Edges()
	}
}

// BenchmarkBuild_Exhaustive measures a full run to a single spanning
// tree on 300 points.
func BenchmarkBuild_Exhaustive(b *testing.B) {
	points := randomPoints(300, 1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linkage.Build(points)
	}
}

// BenchmarkBuild_Bounded measures a capped run (n−1 connections) on
// the same cloud.
func BenchmarkBuild_Bounded(b *testing.B) {
	points := randomPoints(300, 1000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = linkage.Build(points, linkage.WithBounded(len(points)-1))
	}
}
