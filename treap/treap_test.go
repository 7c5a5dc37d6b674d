package treap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvidhal/geosearch/treap"
	"github.com/arvidhal/geosearch/vec"
)

// checkHeap recursively verifies the max-heap order on coordinate 1.
func checkHeap(t *testing.T, n treap.Node) {
	t.Helper()
	if l, ok := n.Left(); ok {
		require.LessOrEqual(t, l.Point()[1], n.Point()[1],
			"left child priority exceeds parent")
		checkHeap(t, l)
	}
	if r, ok := n.Right(); ok {
		require.LessOrEqual(t, r.Point()[1], n.Point()[1],
			"right child priority exceeds parent")
		checkHeap(t, r)
	}
}

// TestInsert_Invariants inserts random points and verifies both the BST
// order on coordinate 0 and the heap order on coordinate 1.
func TestInsert_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	tr := treap.New()
	keys := make([]float64, 0, 200)
	for i := 0; i < 200; i++ {
		p := vec.New(rng.Float64()*100, rng.Float64()*100)
		require.NoError(t, tr.Insert(p))
		keys = append(keys, p[0])
	}
	require.Equal(t, 200, tr.Size())

	// in-order traversal must be sorted by the key coordinate
	var got []float64
	tr.InOrder(func(p vec.Vec) bool {
		got = append(got, p[0])
		return true
	})
	require.Len(t, got, 200)
	require.True(t, sort.Float64sAreSorted(got), "in-order walk not sorted by coordinate 0")

	sort.Float64s(keys)
	require.Equal(t, keys, got)

	// root carries the maximum priority, heap order holds throughout
	root, ok := tr.Root()
	require.True(t, ok)
	checkHeap(t, root)
}

// TestInsert_DuplicateKeys verifies duplicates are retained, not replaced.
func TestInsert_DuplicateKeys(t *testing.T) {
	tr := treap.New()
	require.NoError(t, tr.InsertAll([]vec.Vec{
		vec.New(1, 5), vec.New(1, 9), vec.New(1, 2),
	}))
	require.Equal(t, 3, tr.Size())

	root, ok := tr.Root()
	require.True(t, ok)
	require.Equal(t, 9.0, root.Point()[1])
	checkHeap(t, root)
}

// TestInsert_Dimension verifies the key+priority dimension precondition.
func TestInsert_Dimension(t *testing.T) {
	tr := treap.New()
	require.ErrorIs(t, tr.Insert(vec.New(1)), treap.ErrDimension)
	require.NoError(t, tr.Insert(vec.New(1, 2, 3)), "extra coordinates are allowed")
}

// TestInOrder_EarlyStop verifies traversal stops when visit returns false.
func TestInOrder_EarlyStop(t *testing.T) {
	tr := treap.New()
	require.NoError(t, tr.InsertAll([]vec.Vec{
		vec.New(3, 1), vec.New(1, 2), vec.New(2, 3),
	}))

	var seen int
	tr.InOrder(func(vec.Vec) bool {
		seen++
		return seen < 2
	})
	require.Equal(t, 2, seen)
}

// TestRoot_Empty verifies the empty-treap handle contract.
func TestRoot_Empty(t *testing.T) {
	_, ok := treap.New().Root()
	require.False(t, ok)
}
