// Package spanforest is an in-memory toolkit for discovering the
// connectivity structure hidden in a cloud of 3-D integer points —
// a single-linkage clustering / minimum-spanning-forest construction.
//
// 🚀 What is spanforest?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: exact integer 3-D points, parsing, floor-sqrt distance
//		• DistanceIndex: all-pairs exact integer Euclidean distances
//		• Edge ordering: ascending by distance with a documented tie-break
//		• Forest construction: closest pairs connected first, union-find inside
//		• Stopping policies: bounded connection count, or exhaustive spanning
//
// ✨ Why choose spanforest?
//
//   - Exact arithmetic – no floating point anywhere, distance ties are exact
//   - Reproducible – a fixed secondary sort key makes every run identical
//   - Pure Go – no cgo, no hidden deps
//   - Observable – hook options (OnConnect) instead of baked-in logging
//
// Under the hood, everything is organized under two subpackages:
//
//	core/    — Point value type, exact integer distance, "x,y,z" parsing
//	linkage/ — DistanceIndex, edge ordering, forest builder & policies
//
// Quick ASCII example:
//
//	    (0,0,0)──1──(1,0,0)          closest pair connects first,
//	        \                        then the next closest joins the
//	         3──(0,3,0)              growing tree, and so on.
//
// Dive into examples/ for a full walkthrough, and the package docs of
// core and linkage for the complete API.
//
//	go get github.com/katalvlaran/spanforest
package spanforest
