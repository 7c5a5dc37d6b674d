package treap

import (
	"errors"

	"github.com/arvidhal/geosearch/vec"
)

// Sentinel errors for treap operations.
var (
	// ErrDimension indicates a point with fewer than two coordinates.
	ErrDimension = errors.New("treap: points need a key and a priority coordinate")
)

// nilIdx marks an absent arena link.
const nilIdx = -1

// node is one arena slot. Links are indices into Tree.nodes; nilIdx = none.
type node struct {
	pt     vec.Vec
	parent int
	left   int
	right  int
}

// Tree is a treap: BST on coordinate 0, max-heap on coordinate 1.
type Tree struct {
	nodes []node
	root  int
}

// New returns an empty treap.
func New() *Tree {
	return &Tree{root: nilIdx}
}

// Size reports the number of stored points.
func (t *Tree) Size() int { return len(t.nodes) }

// Insert adds a point, keeping BST order on coordinate 0 and max-heap order
// on coordinate 1 via rotations. The point is shared, not copied.
// Expected complexity: O(log n).
func (t *Tree) Insert(p vec.Vec) error {
	if p.Dim() < 2 {
		return ErrDimension
	}

	i := len(t.nodes)
	t.nodes = append(t.nodes, node{pt: p, parent: nilIdx, left: nilIdx, right: nilIdx})

	if t.root == nilIdx {
		t.root = i
		return nil
	}

	// ordinary BST descent on the key coordinate; equal keys go right
	cur := t.root
	for {
		if p[0] < t.nodes[cur].pt[0] {
			if t.nodes[cur].left == nilIdx {
				t.nodes[cur].left = i
				break
			}
			cur = t.nodes[cur].left
		} else {
			if t.nodes[cur].right == nilIdx {
				t.nodes[cur].right = i
				break
			}
			cur = t.nodes[cur].right
		}
	}
	t.nodes[i].parent = cur

	// restore the heap order on the priority coordinate
	for {
		p := t.nodes[i].parent
		if p == nilIdx || t.nodes[i].pt[1] <= t.nodes[p].pt[1] {
			break
		}
		t.rotateUp(i)
	}

	return nil
}

// InsertAll inserts a batch of points, stopping at the first invalid one.
func (t *Tree) InsertAll(points []vec.Vec) error {
	for _, p := range points {
		if err := t.Insert(p); err != nil {
			return err
		}
	}

	return nil
}

// rotateUp lifts node i above its parent, preserving in-order sequence.
func (t *Tree) rotateUp(i int) {
	p := t.nodes[i].parent
	g := t.nodes[p].parent

	if t.nodes[p].left == i {
		// right rotation around p
		t.nodes[p].left = t.nodes[i].right
		if t.nodes[i].right != nilIdx {
			t.nodes[t.nodes[i].right].parent = p
		}
		t.nodes[i].right = p
	} else {
		// left rotation around p
		t.nodes[p].right = t.nodes[i].left
		if t.nodes[i].left != nilIdx {
			t.nodes[t.nodes[i].left].parent = p
		}
		t.nodes[i].left = p
	}
	t.nodes[p].parent = i
	t.nodes[i].parent = g

	switch {
	case g == nilIdx:
		t.root = i
	case t.nodes[g].left == p:
		t.nodes[g].left = i
	default:
		t.nodes[g].right = i
	}
}

// InOrder walks the points in ascending key order, stopping early when
// visit returns false. The walk uses an explicit stack, so arbitrarily
// unbalanced shapes cannot exhaust the call stack.
func (t *Tree) InOrder(visit func(vec.Vec) bool) {
	stack := make([]int, 0, 32)
	cur := t.root
	for cur != nilIdx || len(stack) > 0 {
		for cur != nilIdx {
			stack = append(stack, cur)
			cur = t.nodes[cur].left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(t.nodes[cur].pt) {
			return
		}
		cur = t.nodes[cur].right
	}
}

// Node is a read-only handle onto one treap node.
type Node struct {
	t *Tree
	i int
}

// Root returns the root node handle; ok is false for an empty treap.
// The root always holds the maximum priority coordinate.
func (t *Tree) Root() (Node, bool) {
	if t.root == nilIdx {
		return Node{}, false
	}

	return Node{t: t, i: t.root}, true
}

// Point returns the node's (shared) point.
func (n Node) Point() vec.Vec { return n.t.nodes[n.i].pt }

// Left returns the left child handle; ok is false when absent.
func (n Node) Left() (Node, bool) {
	if l := n.t.nodes[n.i].left; l != nilIdx {
		return Node{t: n.t, i: l}, true
	}

	return Node{}, false
}

// Right returns the right child handle; ok is false when absent.
func (n Node) Right() (Node, bool) {
	if r := n.t.nodes[n.i].right; r != nilIdx {
		return Node{t: n.t, i: r}, true
	}

	return Node{}, false
}

// Parent returns the parent handle; ok is false at the root.
func (n Node) Parent() (Node, bool) {
	if p := n.t.nodes[n.i].parent; p != nilIdx {
		return Node{t: n.t, i: p}, true
	}

	return Node{}, false
}
