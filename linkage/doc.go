// Package linkage builds a forest of connectivity trees over 3-D
// integer points by repeatedly connecting the geometrically closest
// not-yet-fully-connected pair (single-linkage clustering, the forest
// phase of Kruskal's construction).
//
// What:
//
//   - DistanceIndex computes the exact integer distance between every
//     unordered pair of distinct input points.
//   - Edges() orders the n·(n−1)/2 candidate pairs ascending by
//     distance, with a fixed deterministic tie-break.
//   - Build sweeps the ordered edges, growing and merging trees through
//     a flat-array disjoint set, until the configured stopping policy
//     halts it.
//   - The Result exposes the final Forest (largest tree first), the
//     accepted-connection count, and — in exhaustive mode — the edge
//     whose acceptance connected everything.
//
// Why:
//
//   - Proximity clustering: group nearby stations, sensors, fixtures.
//   - Wiring problems: connect a site pair-by-shortest-pair and ask
//     which connection finally closes the network.
//   - Cluster-size analytics: the largest components after a budgeted
//     number of connections.
//
// Determinism:
//
//	Pairs with equal distance are ordered by the canonical pair itself:
//	first point position, then second (positions are original input
//	enumeration order). The pair→distance map's iteration order never
//	reaches a caller, so every run over the same input produces the
//	identical edge sequence, forest, and completing edge.
//
// Options:
//
//   - WithBounded(max): halt after max accepted connections (connections
//     that change nothing still count).
//   - default (exhaustive): halt once one tree spans every input point;
//     the completing edge is recorded.
//   - WithOnConnect(fn): observe every accepted edge and how it changed
//     the forest (create / graft / merge / redundant).
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option value was supplied.
//   - ErrTooFewPoints: exhaustive mode with fewer than two points.
//   - ErrIncomplete: the edge sweep ended without spanning all points
//     (unreachable on a complete pair set; guards refactors).
//   - ErrNoCompletingEdge: Result.CompletingXProduct without a recorded
//     completing edge.
//
// Complexity:
//
//	O(n²) distances, O(n² log n) ordering, near-O(α(n)) amortized per
//	sweep step via path compression and union by size. Memory O(n²).
package linkage
