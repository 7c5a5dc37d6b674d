package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvidhal/geosearch/graph"
)

// diamond builds A→B(1), A→C(4), B→C(2), C→D(1) on the given graph.
func diamond(t *testing.T, g graph.Graph) {
	t.Helper()
	for _, id := range []string{"A", "B", "C", "D", "X"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 4))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 1))
}

// TestShortestPaths_Diamond verifies distances and predecessors over both
// representations, including the unreachable vertex X.
func TestShortestPaths_Diamond(t *testing.T) {
	implementations(t, func(t *testing.T, g graph.Graph) {
		diamond(t, g)

		dist, prev, err := graph.ShortestPaths(g, graph.Source("A"), graph.WithReturnPath())
		require.NoError(t, err)

		require.Equal(t, 0.0, dist["A"])
		require.Equal(t, 1.0, dist["B"])
		require.Equal(t, 3.0, dist["C"], "path A->B->C beats the direct edge")
		require.Equal(t, 4.0, dist["D"])
		require.True(t, math.IsInf(dist["X"], 1))

		require.Equal(t, "", prev["A"])
		require.Equal(t, "A", prev["B"])
		require.Equal(t, "B", prev["C"])
		require.Equal(t, "C", prev["D"])
		require.Equal(t, "", prev["X"])
	})
}

// TestShortestPaths_NoPathMap verifies prev is omitted without the option.
func TestShortestPaths_NoPathMap(t *testing.T) {
	g := graph.NewAdjacencyList()
	diamond(t, g)

	dist, prev, err := graph.ShortestPaths(g, graph.Source("A"))
	require.NoError(t, err)
	require.Nil(t, prev)
	require.Equal(t, 4.0, dist["D"])
}

// TestShortestPaths_Preconditions covers the sentinel failure modes.
func TestShortestPaths_Preconditions(t *testing.T) {
	g := graph.NewAdjacencyMatrix()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	_, _, err := graph.ShortestPaths(g)
	require.ErrorIs(t, err, graph.ErrEmptySource)

	_, _, err = graph.ShortestPaths(g, graph.Source("Z"))
	require.ErrorIs(t, err, graph.ErrVertexNotFound)

	require.NoError(t, g.AddEdge("A", "B", -2))
	_, _, err = graph.ShortestPaths(g, graph.Source("A"))
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}
