// Package core defines the leaf value types of spanforest: the
// immutable 3-D integer Point, exact integer Euclidean distance, and
// parsing of the "x,y,z" textual point format.
//
// What:
//
//   - Point is a value type over three non-negative integer coordinates;
//     it is comparable, hashable, and usable as a map key.
//   - Point.Dist computes floor(sqrt(Σ (aᵢ−bᵢ)²)) in pure integer
//     arithmetic, so equal distances compare exactly equal.
//   - ParsePoint / ParsePoints read the one-point-per-line text form
//     "x,y,z" (three base-10 unsigned integers joined by commas).
//
// Why:
//
//   - Clustering decisions hinge on distance ties; floating point would
//     make tie detection platform- and order-dependent.
//   - Parsing fails before any construction begins, so the algorithm
//     layer never sees partial input.
//
// Complexity:
//
//   - Dist: O(1) (a handful of integer multiplies plus Newton isqrt).
//   - ParsePoints: O(total input length).
//
// Errors:
//
//   - ErrBadPoint: a coordinate line is not three base-10 non-negative
//     integers joined by commas.
package core
