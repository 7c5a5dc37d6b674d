package closestpair

// strip is the sweep-line status structure: an AVL-balanced ordered multiset
// of point indices keyed by their y coordinate. It supports the three
// operations the sweep needs (insert, delete, and an in-order visit of all
// entries within a key interval), each in O(log n) plus visited entries.
//
// Entries are disambiguated by index, so equal y values coexist.
type strip struct {
	root *stripNode
}

type stripNode struct {
	key    float64 // y coordinate
	idx    int     // index into the x-sorted point slice
	left   *stripNode
	right  *stripNode
	height int
}

func (s *strip) insert(key float64, idx int) {
	s.root = stripInsert(s.root, key, idx)
}

func (s *strip) delete(key float64, idx int) {
	s.root = stripDelete(s.root, key, idx)
}

// visitRange calls fn for every entry with lo ≤ key ≤ hi, in key order.
func (s *strip) visitRange(lo, hi float64, fn func(idx int)) {
	stripVisit(s.root, lo, hi, fn)
}

func stripVisit(n *stripNode, lo, hi float64, fn func(int)) {
	if n == nil {
		return
	}
	if n.key >= lo {
		stripVisit(n.left, lo, hi, fn)
	}
	if n.key >= lo && n.key <= hi {
		fn(n.idx)
	}
	if n.key <= hi {
		stripVisit(n.right, lo, hi, fn)
	}
}

// less orders entries by key, then index, so every entry is unique.
func (n *stripNode) less(key float64, idx int) bool {
	if n.key != key {
		return n.key < key
	}

	return n.idx < idx
}

func stripHeight(n *stripNode) int {
	if n == nil {
		return 0
	}

	return n.height
}

func stripFix(n *stripNode) *stripNode {
	hl, hr := stripHeight(n.left), stripHeight(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}

	switch balance := hl - hr; {
	case balance > 1:
		if stripHeight(n.left.left) < stripHeight(n.left.right) {
			n.left = stripRotateLeft(n.left)
		}
		return stripRotateRight(n)
	case balance < -1:
		if stripHeight(n.right.right) < stripHeight(n.right.left) {
			n.right = stripRotateRight(n.right)
		}
		return stripRotateLeft(n)
	}

	return n
}

func stripRotateRight(n *stripNode) *stripNode {
	l := n.left
	n.left = l.right
	l.right = n
	n.height = 1 + maxInt(stripHeight(n.left), stripHeight(n.right))
	l.height = 1 + maxInt(stripHeight(l.left), stripHeight(l.right))

	return l
}

func stripRotateLeft(n *stripNode) *stripNode {
	r := n.right
	n.right = r.left
	r.left = n
	n.height = 1 + maxInt(stripHeight(n.left), stripHeight(n.right))
	r.height = 1 + maxInt(stripHeight(r.left), stripHeight(r.right))

	return r
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func stripInsert(n *stripNode, key float64, idx int) *stripNode {
	if n == nil {
		return &stripNode{key: key, idx: idx, height: 1}
	}
	if n.less(key, idx) {
		n.right = stripInsert(n.right, key, idx)
	} else {
		n.left = stripInsert(n.left, key, idx)
	}

	return stripFix(n)
}

func stripDelete(n *stripNode, key float64, idx int) *stripNode {
	if n == nil {
		return nil
	}
	switch {
	case n.key == key && n.idx == idx:
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// replace with the in-order successor
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.idx = succ.key, succ.idx
		n.right = stripDelete(n.right, succ.key, succ.idx)
	case n.less(key, idx):
		n.right = stripDelete(n.right, key, idx)
	default:
		n.left = stripDelete(n.left, key, idx)
	}

	return stripFix(n)
}
