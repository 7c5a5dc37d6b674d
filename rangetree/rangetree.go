package rangetree

import (
	"errors"
	"sort"

	"github.com/arvidhal/geosearch/vec"
)

// Sentinel errors for range tree operations.
var (
	// ErrQueryDimension indicates query bounds whose dimension differs from the tree's.
	ErrQueryDimension = errors.New("rangetree: query bounds must match tree dimension")
)

// nilIdx marks an absent arena link.
const nilIdx = -1

// node is one arena slot. Links are indices into Tree.nodes; nilIdx = none.
type node struct {
	pt     vec.Vec
	parent int
	left   int
	right  int

	// cached interval over coordinate Tree.idx spanned by this subtree
	lo, hi float64

	// subordinate tree on idx+1 over this node's descendant set;
	// nil at the final dimension
	sub *Tree
}

// Tree is one level of a k-dimensional range tree, ordered by coordinate idx.
// The zero value is not usable; construct with New.
type Tree struct {
	nodes []node
	root  int
	dim   int
	idx   int
}

// New bulk-builds a range tree over points. The points are shared, not
// copied; they must not be mutated afterwards. An empty point set yields a
// valid tree whose queries return no results.
//
// Returns vec.ErrDimensionMismatch or vec.ErrZeroDimension on inconsistent
// input. Complexity: O(n·log^(d-1) n).
func New(points []vec.Vec) (*Tree, error) {
	dim, err := vec.CheckDims(points)
	if err != nil {
		return nil, err
	}

	return newLevel(points, dim, 0), nil
}

// newLevel builds one tree level over points, sorted on coordinate idx,
// then runs the bottom-up update pass.
func newLevel(points []vec.Vec, dim, idx int) *Tree {
	t := &Tree{root: nilIdx, dim: dim, idx: idx}
	if len(points) == 0 {
		return t
	}

	sorted := make([]vec.Vec, len(points))
	copy(sorted, points)
	// stable: equal coordinates keep insertion order, making repeated
	// builds and queries reproducible
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a][idx] < sorted[b][idx]
	})

	t.nodes = make([]node, 0, len(sorted))
	t.root = t.build(sorted, nilIdx)
	t.update(t.root)

	return t
}

// build creates a height-balanced BST from an already sorted point slice
// and returns the subtree root's arena index.
func (t *Tree) build(pts []vec.Vec, parent int) int {
	if len(pts) == 0 {
		return nilIdx
	}
	mid := len(pts) / 2
	i := len(t.nodes)
	t.nodes = append(t.nodes, node{
		pt:     pts[mid],
		parent: parent,
		left:   nilIdx,
		right:  nilIdx,
	})

	left := t.build(pts[:mid], i)
	right := t.build(pts[mid+1:], i)
	t.nodes[i].left = left
	t.nodes[i].right = right

	return i
}

// update recomputes, bottom-up, the cached coordinate range of every node
// and constructs its subordinate tree for the next coordinate.
func (t *Tree) update(i int) {
	if i == nilIdx {
		return
	}
	left, right := t.nodes[i].left, t.nodes[i].right
	t.update(left)
	t.update(right)

	// cached range: BST order puts the subtree minimum in the leftmost
	// descendant and the maximum in the rightmost
	key := t.nodes[i].pt[t.idx]
	switch {
	case left == nilIdx && right == nilIdx:
		t.nodes[i].lo, t.nodes[i].hi = key, key
	case right == nilIdx:
		t.nodes[i].lo, t.nodes[i].hi = t.nodes[left].lo, key
	case left == nilIdx:
		t.nodes[i].lo, t.nodes[i].hi = key, t.nodes[right].hi
	default:
		t.nodes[i].lo, t.nodes[i].hi = t.nodes[left].lo, t.nodes[right].hi
	}

	// subordinate tree over this node's descendant set, next coordinate
	if t.idx+1 < t.dim {
		t.nodes[i].sub = newLevel(t.collect(i, nil, nil, nil), t.dim, t.idx+1)
	}
}

// collect appends, in-order, every point under node i whose coordinates all
// lie within [min,max]; nil bounds collect unconditionally.
func (t *Tree) collect(i int, min, max vec.Vec, out []vec.Vec) []vec.Vec {
	if i == nilIdx {
		return out
	}
	out = t.collect(t.nodes[i].left, min, max, out)
	if min == nil || inBox(t.nodes[i].pt, min, max) {
		out = append(out, t.nodes[i].pt)
	}

	return t.collect(t.nodes[i].right, min, max, out)
}

// inBox reports whether every coordinate of p lies within [min,max].
func inBox(p, min, max vec.Vec) bool {
	for i := range p {
		if p[i] < min[i] || p[i] > max[i] {
			return false
		}
	}

	return true
}

// QueryRange reports all points p with min[i] ≤ p[i] ≤ max[i] for every
// coordinate i. The returned slices are shared references to the indexed
// points, not copies. A disjoint interval at any level yields an empty
// result immediately; empty and singleton trees are valid inputs.
//
// Complexity: O(log^d n + k).
func (t *Tree) QueryRange(min, max vec.Vec) ([]vec.Vec, error) {
	if min.Dim() != t.dim || max.Dim() != t.dim {
		return nil, ErrQueryDimension
	}
	if t.root == nilIdx {
		return nil, nil
	}

	// the bounds are clamped level by level; work on copies
	qmin, qmax := min.Clone(), max.Clone()

	cur := t
	for {
		i := cur.root
		if i == nilIdx {
			return nil, nil
		}

		// fit the query interval to the level's overall range
		if qmin[cur.idx] < cur.nodes[i].lo {
			qmin[cur.idx] = cur.nodes[i].lo
		}
		if qmax[cur.idx] > cur.nodes[i].hi {
			qmax[cur.idx] = cur.nodes[i].hi
		}
		if qmin[cur.idx] > qmax[cur.idx] {
			// disjoint with everything stored on this level
			return nil, nil
		}

		// descend to the split node: the highest node whose key lies
		// inside [qmin,qmax]. Moving only while the interval is strictly
		// on one side of the key keeps every match, duplicates included,
		// inside the chosen subtree.
		for {
			key := cur.nodes[i].pt[cur.idx]
			if qmax[cur.idx] < key && cur.nodes[i].left != nilIdx {
				i = cur.nodes[i].left
				continue
			}
			if qmin[cur.idx] > key && cur.nodes[i].right != nilIdx {
				i = cur.nodes[i].right
				continue
			}
			break
		}

		if cur.nodes[i].sub == nil {
			// final dimension: direct coordinate-bound filter
			return cur.collect(i, qmin, qmax, nil), nil
		}
		cur = cur.nodes[i].sub
	}
}

// Points returns all indexed points in order of this level's coordinate
// (insertion-stable for ties). The slices are shared references.
func (t *Tree) Points() []vec.Vec {
	return t.collect(t.root, nil, nil, make([]vec.Vec, 0, len(t.nodes)))
}

// Size reports the number of indexed points.
func (t *Tree) Size() int { return len(t.nodes) }

// Dim reports the coordinate dimension of the indexed points.
func (t *Tree) Dim() int { return t.dim }
