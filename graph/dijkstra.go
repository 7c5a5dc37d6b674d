package graph

import (
	"container/heap"
	"fmt"
	"math"
)

// Option configures a ShortestPaths run.
type Option func(*options)

type options struct {
	source     string
	returnPath bool
}

// Source sets the start vertex identifier. Required.
func Source(ident string) Option {
	return func(o *options) { o.source = ident }
}

// WithReturnPath requests the predecessor map for path reconstruction.
func WithReturnPath() Option {
	return func(o *options) { o.returnPath = true }
}

// ShortestPaths runs Dijkstra's algorithm from the configured source over
// any Graph implementation.
//
// It returns the minimum distance from the source to every vertex
// (math.Inf(1) for unreachable vertices) and, when WithReturnPath is set,
// a predecessor map where prev[v] == u means the shortest path to v arrives
// via u ("" for the source and unreachable vertices).
//
// All edge weights must be non-negative; a negative weight fails fast with
// ErrNegativeWeight before any distance is computed.
//
// Complexity: O((V + E) log V) time, O(V + E) space under lazy
// decrease-key.
func ShortestPaths(g Graph, opts ...Option) (map[string]float64, map[string]string, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == "" {
		return nil, nil, ErrEmptySource
	}
	src, ok := g.VertexIndex(o.source)
	if !ok {
		return nil, nil, ErrVertexNotFound
	}

	n := g.NumVertices()
	for i := 0; i < n; i++ {
		for _, j := range g.NeighborsAt(i, Outgoing) {
			if w := g.WeightAt(i, j); w < 0 {
				from, _ := g.VertexIdent(i)
				to, _ := g.VertexIdent(j)
				return nil, nil, fmt.Errorf("%w: edge %s->%s weight=%v", ErrNegativeWeight, from, to, w)
			}
		}
	}

	dist := make([]float64, n)
	prev := make([]int, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[src] = 0

	pq := &distQueue{distItem{idx: src, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		u := item.idx
		if done[u] {
			continue // stale lazy-decrease-key entry
		}
		done[u] = true

		for _, v := range g.NeighborsAt(u, Outgoing) {
			if done[v] {
				continue
			}
			if nd := item.dist + g.WeightAt(u, v); nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				heap.Push(pq, distItem{idx: v, dist: nd})
			}
		}
	}

	distByID := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		id, _ := g.VertexIdent(i)
		distByID[id] = dist[i]
	}
	if !o.returnPath {
		return distByID, nil, nil
	}

	prevByID := make(map[string]string, n)
	for i := 0; i < n; i++ {
		id, _ := g.VertexIdent(i)
		if prev[i] >= 0 {
			p, _ := g.VertexIdent(prev[i])
			prevByID[id] = p
		} else {
			prevByID[id] = ""
		}
	}

	return distByID, prevByID, nil
}

// distItem is one (vertex, tentative distance) heap entry.
type distItem struct {
	idx  int
	dist float64
}

// distQueue is a min-heap of distItems ordered by distance.
type distQueue []distItem

func (q distQueue) Len() int            { return len(q) }
func (q distQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q distQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *distQueue) Push(x interface{}) { *q = append(*q, x.(distItem)) }
func (q *distQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
