package graph

// Direction selects which incident edges a neighbour enumeration follows.
type Direction int

const (
	// Outgoing enumerates successors: edges leaving the vertex.
	Outgoing Direction = iota
	// Incoming enumerates predecessors: edges entering the vertex.
	Incoming
)

// Graph is the capability contract shared by both adjacency representations.
// All edges are directed and carry a float64 weight; edge presence is
// explicit, so weight 0 on a present edge is legitimate.
//
// Implementations renumber on vertex removal: every surviving vertex with an
// index greater than the removed one shifts down by one.
type Graph interface {
	// NumVertices returns the current vertex count.
	NumVertices() int
	// VertexIdent returns the identifier at index i, or false when i is
	// out of range.
	VertexIdent(i int) (string, bool)
	// VertexIndex returns the index of the identified vertex, or false
	// when absent.
	VertexIndex(ident string) (int, bool)

	// AddVertex appends a new isolated vertex. Returns ErrEmptyVertexID or
	// ErrDuplicateVertex on invalid input.
	AddVertex(ident string) error
	// RemoveVertex removes the vertex and every edge incident to it,
	// renumbering survivors. Returns ErrVertexNotFound when absent.
	RemoveVertex(ident string) error

	// AddEdge inserts the directed edge from→to, overwriting the weight if
	// the edge already exists. Returns ErrVertexNotFound for unknown
	// endpoints.
	AddEdge(from, to string, weight float64) error
	// RemoveEdge deletes the directed edge from→to. Returns
	// ErrVertexNotFound for unknown endpoints and ErrEdgeNotFound when the
	// edge is absent.
	RemoveEdge(from, to string) error
	// SetWeight updates an existing edge's weight. Unlike AddEdge it never
	// creates: absent edges yield ErrEdgeNotFound.
	SetWeight(from, to string, weight float64) error

	// Weight returns the edge weight, or 0 when either endpoint or the
	// edge is absent. Callers distinguishing "no edge" from a genuine
	// zero-weight edge use IsAdjacent.
	Weight(from, to string) float64
	// WeightAt is Weight addressed by index.
	WeightAt(i, j int) float64
	// IsAdjacent reports whether the directed edge from→to exists.
	IsAdjacent(from, to string) bool

	// Neighbors returns the identifiers adjacent to the identified vertex
	// in the given direction; empty for unknown vertices.
	Neighbors(ident string, dir Direction) []string
	// NeighborsAt is Neighbors addressed by index.
	NeighborsAt(i int, dir Direction) []int
}

// identsOf maps indices back to identifiers via g.VertexIdent.
func identsOf(g Graph, idxs []int) []string {
	out := make([]string, 0, len(idxs))
	for _, i := range idxs {
		if id, ok := g.VertexIdent(i); ok {
			out = append(out, id)
		}
	}

	return out
}
