package closestpair

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/arvidhal/geosearch/rangetree"
	"github.com/arvidhal/geosearch/vec"
)

// DistEpsilon is the tolerance within which the three algorithms agree on
// the minimum distance for identical input.
const DistEpsilon = 1e-9

// Sentinel errors for closest-pair preconditions.
var (
	// ErrTooFewPoints indicates fewer than two input points.
	ErrTooFewPoints = errors.New("closestpair: need at least two points")
	// ErrDimension indicates non-2D input to the sweep-line algorithm.
	ErrDimension = errors.New("closestpair: sweep-line requires 2-dimensional points")
)

// Pair is a minimum-distance point pair. A and B are shared references to
// the input points.
type Pair struct {
	A, B vec.Vec
	Dist float64
}

// sortedByX returns the points as a new slice of shared headers, stably
// sorted by the first coordinate.
func sortedByX(points []vec.Vec) []vec.Vec {
	pts := make([]vec.Vec, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(a, b int) bool { return pts[a][0] < pts[b][0] })

	return pts
}

// Sweep computes the closest pair of a 2D point set with a sweep-line.
//
// The points are processed in x order. The active strip holds exactly the
// points within horizontal distance d of the point being processed, ordered
// by y; points falling more than d behind the sweep are evicted, and each
// new point is tested against the strip entries within [y-d, y+d] before
// joining the strip itself.
//
// Complexity: O(n log n).
func Sweep(points []vec.Vec) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, ErrTooFewPoints
	}
	dim, err := vec.CheckDims(points)
	if err != nil {
		return Pair{}, err
	}
	if dim != 2 {
		return Pair{}, ErrDimension
	}

	pts := sortedByX(points)

	bestA, bestB := pts[0], pts[1]
	d := vec.Dist(bestA, bestB)

	var status strip
	status.insert(pts[0][1], 0)
	status.insert(pts[1][1], 1)

	trail := 0
	for i := 2; i < len(pts); {
		if d == 0 {
			break
		}
		if pts[trail][0] <= pts[i][0]-d {
			// trail point fell behind the strip; evict it
			status.delete(pts[trail][1], trail)
			trail++
			continue
		}

		status.visitRange(pts[i][1]-d, pts[i][1]+d, func(j int) {
			if nd := vec.Dist(pts[j], pts[i]); nd < d {
				d = nd
				bestA, bestB = pts[j], pts[i]
			}
		})
		status.insert(pts[i][1], i)
		i++
	}

	return Pair{A: bestA, B: bestB, Dist: d}, nil
}

// pointEntry wraps one point for R-tree storage.
type pointEntry struct {
	pt   vec.Vec
	idx  int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *pointEntry) Bounds() rtreego.Rect { return e.rect }

// rtreeMinBranch and rtreeMaxBranch bound the R-tree node fan-out.
const (
	rtreeMinBranch = 25
	rtreeMaxBranch = 50
	pointRectTol   = 1e-9
)

// RTree computes the closest pair of a point set of any dimension using a
// bounding-volume R-tree as the window-query index.
//
// All points are bulk-loaded, then processed in x order; each point queries
// the box [x-d,x] × Π[cᵢ-d, cᵢ+d] and shrinks d on improvement.
func RTree(points []vec.Vec) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, ErrTooFewPoints
	}
	dim, err := vec.CheckDims(points)
	if err != nil {
		return Pair{}, err
	}

	pts := sortedByX(points)

	tree := rtreego.NewTree(dim, rtreeMinBranch, rtreeMaxBranch)
	for i, p := range pts {
		tree.Insert(&pointEntry{
			pt:   p,
			idx:  i,
			rect: rtreego.Point(p).ToRect(pointRectTol),
		})
	}

	bestA, bestB := pts[0], pts[1]
	d := vec.Dist(bestA, bestB)

	corner := make(rtreego.Point, dim)
	lengths := make([]float64, dim)
	for i := 1; i < len(pts); i++ {
		if d == 0 {
			break
		}
		cur := pts[i]

		corner[0], lengths[0] = cur[0]-d, d
		for k := 1; k < dim; k++ {
			corner[k], lengths[k] = cur[k]-d, 2*d
		}
		window, err := rtreego.NewRect(corner, lengths)
		if err != nil {
			return Pair{}, err
		}

		for _, sp := range tree.SearchIntersect(window) {
			e := sp.(*pointEntry)
			if e.idx == i {
				continue
			}
			if nd := vec.Dist(e.pt, cur); nd < d {
				d = nd
				bestA, bestB = e.pt, cur
			}
		}
	}

	return Pair{A: bestA, B: bestB, Dist: d}, nil
}

// RangeTree computes the closest pair with the identical windowed pass as
// RTree, using rangetree.QueryRange as the window primitive.
func RangeTree(points []vec.Vec) (Pair, error) {
	if len(points) < 2 {
		return Pair{}, ErrTooFewPoints
	}

	tree, err := rangetree.New(points)
	if err != nil {
		return Pair{}, err
	}
	pts := tree.Points() // x-sorted shared references
	dim := tree.Dim()

	bestA, bestB := pts[0], pts[1]
	d := vec.Dist(bestA, bestB)

	min := make(vec.Vec, dim)
	max := make(vec.Vec, dim)
	for i := 1; i < len(pts); i++ {
		if d == 0 {
			break
		}
		cur := pts[i]

		min[0], max[0] = cur[0]-d, cur[0]
		for k := 1; k < dim; k++ {
			min[k], max[k] = cur[k]-d, cur[k]+d
		}
		hits, err := tree.QueryRange(min, max)
		if err != nil {
			return Pair{}, err
		}

		// skip exactly one identity hit for cur itself; a second hit
		// with the same backing array is a genuine zero-distance pair
		// (the same point referenced twice in the input)
		self := false
		for _, h := range hits {
			if !self && vec.Same(h, cur) {
				self = true
				continue
			}
			if nd := vec.Dist(h, cur); nd < d {
				d = nd
				bestA, bestB = h, cur
			}
		}
	}

	return Pair{A: bestA, B: bestB, Dist: d}, nil
}
