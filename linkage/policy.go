// This file defines the stopping policies. Both modes share the one
// driver loop in Build; the policy only decides when it halts and
// whether the halting edge is worth keeping.
package linkage

// stopPolicy decides, after each accepted connection, whether the
// builder halts. done receives the running accepted-connection count
// and the size of the largest tree so far; recordCompleting reports
// whether the edge that triggered the halt must be recorded.
type stopPolicy interface {
	done(connections, largest int) bool
	recordCompleting() bool
}

// boundedPolicy halts at a fixed accepted-connection cap. The forest
// it leaves behind may still hold several disjoint trees.
type boundedPolicy struct {
	max int
}

func (p boundedPolicy) done(connections, _ int) bool { return connections >= p.max }

func (p boundedPolicy) recordCompleting() bool { return false }

// exhaustivePolicy halts once one tree spans every input point; the
// edge that produced that state is the completing edge.
type exhaustivePolicy struct {
	total int
}

func (p exhaustivePolicy) done(_, largest int) bool { return largest >= p.total }

func (p exhaustivePolicy) recordCompleting() bool { return true }
