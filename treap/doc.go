// Package treap implements a two-dimensional treap: a binary tree that is
// simultaneously a search tree on the first point coordinate and a max-heap
// on the second.
//
// Insertion places the point by BST order on coordinate 0, then rotates it
// upward until the heap order on coordinate 1 is restored. With priorities
// that behave like random values the expected depth is O(log n).
//
// The structure is intended for consumers that need a combined
// order-plus-priority view of a point set: the root always carries the
// maximum priority, an in-order walk always yields the points sorted by
// the first coordinate, and Node handles expose the tree shape for
// traversal-based algorithms.
//
// Points are shared, never copied; a point must have at least two
// coordinates and must not be mutated after insertion.
package treap
