// This file implements the connectivity query behind the builder: a
// flat-array disjoint set with path compression and union by size.
// Membership, merge and size queries are near-O(1) amortized, replacing
// linear scans over nested tree structures.
package linkage

// disjointSet tracks which points are connected. Element i is the
// point at input position i; size is maintained per set root.
type disjointSet struct {
	parent []int
	size   []int
}

// newDisjointSet starts every element in its own singleton set.
func newDisjointSet(n int) *disjointSet {
	d := &disjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// find returns the root of x, compressing the walked path by pointing
// each visited element at its grandparent.
func (d *disjointSet) find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// union merges the sets holding a and b, attaching the smaller set
// below the larger. It returns the surviving root and reports whether
// the sets were separate; the absorbed set's parent pointer is the only
// mutation — nothing is removed or copied.
func (d *disjointSet) union(a, b int) (int, bool) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return ra, false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return ra, true
}
