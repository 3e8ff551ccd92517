// This file defines the finalized Forest and Tree result types and
// their construction from the builder's disjoint set.
package linkage

import (
	"sort"

	"github.com/katalvlaran/spanforest/core"
)

// Tree is one connected cluster of points. Its root is the member with
// the lowest input position; membership is queried by coordinate value.
type Tree struct {
	members []core.Point // ascending input position; members[0] is the root
	index   map[core.Point]struct{}
}

// Root returns the tree's representative point: the member that
// appeared earliest in the input.
func (t *Tree) Root() core.Point { return t.members[0] }

// Size returns the number of points in the tree. Duplicate input
// coordinates count once each — size counts nodes, not distinct
// coordinate values.
func (t *Tree) Size() int { return len(t.members) }

// Contains reports whether the tree holds a point with p's coordinates.
// Contains(Root()) is always true.
func (t *Tree) Contains(p core.Point) bool {
	_, ok := t.index[p]

	return ok
}

// Members returns a copy of the tree's points in input order.
func (t *Tree) Members() []core.Point {
	return append([]core.Point(nil), t.members...)
}

// Forest is the finalized, immutable collection of disjoint trees,
// sorted by descending size; equal sizes keep the tree with the
// earlier root first. No point appears in more than one tree.
type Forest struct {
	trees []*Tree
}

// Trees returns the forest's trees, largest first.
func (f *Forest) Trees() []*Tree { return append([]*Tree(nil), f.trees...) }

// Len returns the number of trees in the forest.
func (f *Forest) Len() int { return len(f.trees) }

// TotalPoints returns the summed size of all trees: the number of
// points that participated in at least one accepted connection.
func (f *Forest) TotalPoints() int {
	total := 0
	for _, t := range f.trees {
		total += t.Size()
	}

	return total
}

// TreeOf returns the tree holding a point with p's coordinates, or
// false when no accepted connection has touched such a point.
func (f *Forest) TreeOf(p core.Point) (*Tree, bool) {
	for _, t := range f.trees {
		if t.Contains(p) {
			return t, true
		}
	}

	return nil, false
}

// newForest groups the points that participated in at least one
// accepted connection by their disjoint-set root. Untouched points
// belong to no tree.
func newForest(points []core.Point, d *disjointSet, seen []bool) *Forest {
	byRoot := make(map[int]*Tree)
	var trees []*Tree
	// Ascending input position, so each tree's first member is its root
	// and trees are created in root order.
	for i, p := range points {
		if !seen[i] {
			continue
		}
		root := d.find(i)
		t, ok := byRoot[root]
		if !ok {
			t = &Tree{index: make(map[core.Point]struct{}, d.size[root])}
			byRoot[root] = t
			trees = append(trees, t)
		}
		t.members = append(t.members, p)
		t.index[p] = struct{}{}
	}

	// Largest first; the stable sort keeps root order as the tie-break,
	// so the final forest is deterministic.
	sort.SliceStable(trees, func(a, b int) bool {
		return trees[a].Size() > trees[b].Size()
	})

	return &Forest{trees: trees}
}
