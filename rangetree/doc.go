// Package rangetree implements a static k-dimensional range tree for
// orthogonal range search over point sets.
//
// Structure:
//
//	Each tree level is a height-balanced binary search tree ordered by one
//	coordinate index. Every node caches the [min,max] interval its subtree
//	spans on that coordinate, and — while further coordinates remain — owns a
//	subordinate range tree over the same descendant point set, ordered by the
//	next coordinate (the classic "tree of trees" / associated-structure
//	design).
//
// Query walk:
//
//	QueryRange descends dimension by dimension. At each level it clamps the
//	query interval to the root's cached range, rejects disjoint intervals
//	immediately, then descends to the lowest node whose cached range still
//	covers the clamped interval and recurses into that node's subordinate
//	tree. At the final dimension an in-order traversal with a direct
//	coordinate-bound filter collects the matching points.
//
// The tree is bulk-built: all points are supplied up front, then a single
// bottom-up pass computes cached ranges and constructs subordinate trees.
// There is no single-point insert or delete; rebuild instead.
//
// Points are shared: the tree stores the caller's vec.Vec headers and query
// results return those same headers, never copies. Duplicate coordinate
// values keep their insertion order, so rebuilding from the same input
// yields identical query results.
//
// Complexity:
//
//   - Build:  O(n·log^(d-1) n) time and space
//   - Query:  O(log^d n + k) for k reported points
package rangetree
