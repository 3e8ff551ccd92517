// This file declares the Point value type, exact integer Euclidean
// distance, canonical ordering, and the textual rendering of a point.
package core

import (
	"fmt"
	"math/bits"
)

// Point is an immutable location in 3-D non-negative integer space.
// Points are compared by value and may be used as map keys.
type Point struct {
	// X, Y, Z are the coordinates along the three axes.
	X, Y, Z uint64
}

// Dist returns the Euclidean distance between p and q rounded down to
// the nearest integer: floor(sqrt((pX−qX)² + (pY−qY)² + (pZ−qZ)²)).
//
// The computation is exact integer arithmetic throughout, so two pairs
// at the same true distance always report the same value — no floating
// point rounding can split or fake a tie. Coordinate deltas must stay
// below 2^31 so the summed squares fit in uint64.
//
// Complexity: O(1).
func (p Point) Dist(q Point) uint64 {
	dx := absDiff(p.X, q.X)
	dy := absDiff(p.Y, q.Y)
	dz := absDiff(p.Z, q.Z)

	return isqrt(dx*dx + dy*dy + dz*dz)
}

// Less reports whether p precedes q in lexicographic (X, Y, Z) order.
// It fixes the canonical relative order of an unordered pair of points.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}

	return p.Z < q.Z
}

// String renders the point in its textual form "x,y,z", the same shape
// ParsePoint accepts.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// absDiff returns |a−b| without signed conversion.
func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}

// isqrt returns floor(sqrt(v)).
//
// Newton iteration seeded strictly above the true root: the sequence
// decreases monotonically, so the first non-decreasing step is the
// exact floor.
func isqrt(v uint64) uint64 {
	if v < 2 {
		return v
	}
	// 2^ceil(bitlen/2) ≥ sqrt(v) for every v ≥ 2.
	x := uint64(1) << ((bits.Len64(v) + 1) / 2)
	for {
		y := (x + v/x) / 2
		if y >= x {
			return x
		}
		x = y
	}
}
