// Package closestpair computes the minimum-distance pair of a point set
// under three interchangeable algorithms:
//
//   - Sweep: a 2D sweep-line over x-sorted points. An ordered "active strip"
//     keyed by y holds exactly the points within the current best distance d
//     behind the sweep position; each new point queries the strip within
//     [y-d, y+d] and shrinks d on improvement. O(n log n).
//   - RTree: any dimension. All points are bulk-loaded into a bounding-volume
//     R-tree; an x-ordered pass queries a d-half-width window around each
//     point, shrinking d on improvement.
//   - RangeTree: the identical windowed pass, using rangetree.QueryRange as
//     the window primitive instead of a separate index.
//
// All three return the same minimum distance for identical input (within
// DistEpsilon); when several pairs attain the minimum they may return
// different pairs. Fewer than two points is a precondition violation
// reported as ErrTooFewPoints.
package closestpair
