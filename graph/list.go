package graph

// edgeRecord is one node of a vertex's singly linked outgoing edge list.
type edgeRecord struct {
	idx    int // target vertex index
	weight float64
	next   *edgeRecord
}

// AdjacencyList stores edges as per-vertex singly linked records, O(V+E)
// memory. Edge insertion prepends in O(1); lookup and removal walk the
// source vertex's list in O(degree).
type AdjacencyList struct {
	idents []string
	index  map[string]int
	heads  []*edgeRecord
}

// compile-time contract check
var _ Graph = (*AdjacencyList)(nil)

// NewAdjacencyList returns an empty list-backed graph.
func NewAdjacencyList() *AdjacencyList {
	return &AdjacencyList{index: make(map[string]int)}
}

// NumVertices returns the current vertex count.
func (l *AdjacencyList) NumVertices() int { return len(l.idents) }

// VertexIdent returns the identifier at index i.
func (l *AdjacencyList) VertexIdent(i int) (string, bool) {
	if i < 0 || i >= len(l.idents) {
		return "", false
	}

	return l.idents[i], true
}

// VertexIndex returns the index of the identified vertex.
func (l *AdjacencyList) VertexIndex(ident string) (int, bool) {
	i, ok := l.index[ident]

	return i, ok
}

// AddVertex appends an isolated vertex. O(1).
func (l *AdjacencyList) AddVertex(ident string) error {
	if ident == "" {
		return ErrEmptyVertexID
	}
	if _, dup := l.index[ident]; dup {
		return ErrDuplicateVertex
	}

	l.index[ident] = len(l.idents)
	l.idents = append(l.idents, ident)
	l.heads = append(l.heads, nil)

	return nil
}

// RemoveVertex removes the vertex, unlinks every edge record referencing
// its index anywhere in the graph, and renumbers surviving targets.
// Complexity: O(V + E).
func (l *AdjacencyList) RemoveVertex(ident string) error {
	r, ok := l.index[ident]
	if !ok {
		return ErrVertexNotFound
	}

	l.idents = append(l.idents[:r], l.idents[r+1:]...)
	l.heads = append(l.heads[:r], l.heads[r+1:]...)
	delete(l.index, ident)
	for id, i := range l.index {
		if i > r {
			l.index[id] = i - 1
		}
	}

	for i := range l.heads {
		// unlink records targeting r, shift higher targets down
		for pp := &l.heads[i]; *pp != nil; {
			rec := *pp
			if rec.idx == r {
				*pp = rec.next
				continue
			}
			if rec.idx > r {
				rec.idx--
			}
			pp = &rec.next
		}
	}

	return nil
}

// AddEdge inserts or overwrites the directed edge from→to. A new edge is
// prepended in O(1); overwriting walks the list in O(degree).
func (l *AdjacencyList) AddEdge(from, to string, weight float64) error {
	i, j, err := l.endpoints(from, to)
	if err != nil {
		return err
	}
	if rec := l.find(i, j); rec != nil {
		rec.weight = weight
		return nil
	}
	l.heads[i] = &edgeRecord{idx: j, weight: weight, next: l.heads[i]}

	return nil
}

// RemoveEdge deletes the directed edge from→to. O(degree).
func (l *AdjacencyList) RemoveEdge(from, to string) error {
	i, j, err := l.endpoints(from, to)
	if err != nil {
		return err
	}
	for pp := &l.heads[i]; *pp != nil; pp = &(*pp).next {
		if (*pp).idx == j {
			*pp = (*pp).next
			return nil
		}
	}

	return ErrEdgeNotFound
}

// SetWeight updates an existing edge, never creating one. O(degree).
func (l *AdjacencyList) SetWeight(from, to string, weight float64) error {
	i, j, err := l.endpoints(from, to)
	if err != nil {
		return err
	}
	rec := l.find(i, j)
	if rec == nil {
		return ErrEdgeNotFound
	}
	rec.weight = weight

	return nil
}

// Weight returns the edge weight, or 0 when endpoints or edge are absent.
func (l *AdjacencyList) Weight(from, to string) float64 {
	i, j, err := l.endpoints(from, to)
	if err != nil {
		return 0
	}
	if rec := l.find(i, j); rec != nil {
		return rec.weight
	}

	return 0
}

// WeightAt is Weight addressed by index; 0 out of range.
func (l *AdjacencyList) WeightAt(i, j int) float64 {
	if i < 0 || i >= len(l.idents) {
		return 0
	}
	if rec := l.find(i, j); rec != nil {
		return rec.weight
	}

	return 0
}

// IsAdjacent reports whether the directed edge from→to exists.
func (l *AdjacencyList) IsAdjacent(from, to string) bool {
	i, j, err := l.endpoints(from, to)

	return err == nil && l.find(i, j) != nil
}

// Neighbors returns identifiers adjacent to ident in the given direction.
// Outgoing costs O(degree); Incoming scans every list, O(V + E).
func (l *AdjacencyList) Neighbors(ident string, dir Direction) []string {
	i, ok := l.index[ident]
	if !ok {
		return nil
	}

	return identsOf(l, l.NeighborsAt(i, dir))
}

// NeighborsAt returns indices adjacent to i in the given direction.
// Outgoing neighbours appear most-recently-added first.
func (l *AdjacencyList) NeighborsAt(i int, dir Direction) []int {
	if i < 0 || i >= len(l.idents) {
		return nil
	}

	var out []int
	if dir == Outgoing {
		for rec := l.heads[i]; rec != nil; rec = rec.next {
			out = append(out, rec.idx)
		}
		return out
	}
	for j := range l.heads {
		if l.find(j, i) != nil {
			out = append(out, j)
		}
	}

	return out
}

// find returns the record for edge i→j, or nil.
func (l *AdjacencyList) find(i, j int) *edgeRecord {
	for rec := l.heads[i]; rec != nil; rec = rec.next {
		if rec.idx == j {
			return rec
		}
	}

	return nil
}

func (l *AdjacencyList) endpoints(from, to string) (int, int, error) {
	i, ok := l.index[from]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	j, ok := l.index[to]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return i, j, nil
}

// Records returns the raw target indices of every outgoing list, keyed by
// source index. Intended for representation-level tests and diagnostics.
func (l *AdjacencyList) Records() [][]int {
	out := make([][]int, len(l.heads))
	for i := range l.heads {
		for rec := l.heads[i]; rec != nil; rec = rec.next {
			out[i] = append(out[i], rec.idx)
		}
	}

	return out
}
