package graph

// AdjacencyMatrix stores edges in a dense V×V weight matrix with a parallel
// presence matrix. Best suited to small, dense roadmaps where O(1) edge
// lookup matters more than the O(V²) memory.
type AdjacencyMatrix struct {
	idents  []string
	index   map[string]int
	weight  [][]float64
	present [][]bool
}

// compile-time contract check
var _ Graph = (*AdjacencyMatrix)(nil)

// NewAdjacencyMatrix returns an empty matrix-backed graph.
func NewAdjacencyMatrix() *AdjacencyMatrix {
	return &AdjacencyMatrix{index: make(map[string]int)}
}

// NumVertices returns the current vertex count.
func (m *AdjacencyMatrix) NumVertices() int { return len(m.idents) }

// VertexIdent returns the identifier at index i.
func (m *AdjacencyMatrix) VertexIdent(i int) (string, bool) {
	if i < 0 || i >= len(m.idents) {
		return "", false
	}

	return m.idents[i], true
}

// VertexIndex returns the index of the identified vertex.
func (m *AdjacencyMatrix) VertexIndex(ident string) (int, bool) {
	i, ok := m.index[ident]

	return i, ok
}

// AddVertex appends an isolated vertex, growing the matrix by one row and
// one column. Complexity: O(V²).
func (m *AdjacencyMatrix) AddVertex(ident string) error {
	if ident == "" {
		return ErrEmptyVertexID
	}
	if _, dup := m.index[ident]; dup {
		return ErrDuplicateVertex
	}

	n := len(m.idents)
	weight := make([][]float64, n+1)
	present := make([][]bool, n+1)
	for i := 0; i <= n; i++ {
		weight[i] = make([]float64, n+1)
		present[i] = make([]bool, n+1)
		if i < n {
			copy(weight[i], m.weight[i])
			copy(present[i], m.present[i])
		}
	}

	m.weight, m.present = weight, present
	m.index[ident] = n
	m.idents = append(m.idents, ident)

	return nil
}

// RemoveVertex drops the vertex's row and column and renumbers survivors.
// Complexity: O(V²).
func (m *AdjacencyMatrix) RemoveVertex(ident string) error {
	r, ok := m.index[ident]
	if !ok {
		return ErrVertexNotFound
	}

	n := len(m.idents)
	weight := make([][]float64, n-1)
	present := make([][]bool, n-1)
	for i, si := 0, 0; i < n; i++ {
		if i == r {
			continue
		}
		weight[si] = make([]float64, 0, n-1)
		present[si] = make([]bool, 0, n-1)
		for j := 0; j < n; j++ {
			if j == r {
				continue
			}
			weight[si] = append(weight[si], m.weight[i][j])
			present[si] = append(present[si], m.present[i][j])
		}
		si++
	}

	m.weight, m.present = weight, present
	m.idents = append(m.idents[:r], m.idents[r+1:]...)
	delete(m.index, ident)
	for id, i := range m.index {
		if i > r {
			m.index[id] = i - 1
		}
	}

	return nil
}

// AddEdge inserts or overwrites the directed edge from→to. O(1).
func (m *AdjacencyMatrix) AddEdge(from, to string, weight float64) error {
	i, j, err := m.endpoints(from, to)
	if err != nil {
		return err
	}
	m.weight[i][j] = weight
	m.present[i][j] = true

	return nil
}

// RemoveEdge deletes the directed edge from→to. O(1).
func (m *AdjacencyMatrix) RemoveEdge(from, to string) error {
	i, j, err := m.endpoints(from, to)
	if err != nil {
		return err
	}
	if !m.present[i][j] {
		return ErrEdgeNotFound
	}
	m.weight[i][j] = 0
	m.present[i][j] = false

	return nil
}

// SetWeight updates an existing edge, never creating one. O(1).
func (m *AdjacencyMatrix) SetWeight(from, to string, weight float64) error {
	i, j, err := m.endpoints(from, to)
	if err != nil {
		return err
	}
	if !m.present[i][j] {
		return ErrEdgeNotFound
	}
	m.weight[i][j] = weight

	return nil
}

// Weight returns the edge weight, or 0 when endpoints or edge are absent.
func (m *AdjacencyMatrix) Weight(from, to string) float64 {
	i, j, err := m.endpoints(from, to)
	if err != nil {
		return 0
	}

	return m.weight[i][j]
}

// WeightAt is Weight addressed by index; 0 out of range.
func (m *AdjacencyMatrix) WeightAt(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.idents) || j >= len(m.idents) {
		return 0
	}

	return m.weight[i][j]
}

// IsAdjacent reports whether the directed edge from→to exists.
func (m *AdjacencyMatrix) IsAdjacent(from, to string) bool {
	i, j, err := m.endpoints(from, to)

	return err == nil && m.present[i][j]
}

// Neighbors returns identifiers adjacent to ident in the given direction,
// in ascending index order. O(V).
func (m *AdjacencyMatrix) Neighbors(ident string, dir Direction) []string {
	i, ok := m.index[ident]
	if !ok {
		return nil
	}

	return identsOf(m, m.NeighborsAt(i, dir))
}

// NeighborsAt returns indices adjacent to i in the given direction. O(V).
func (m *AdjacencyMatrix) NeighborsAt(i int, dir Direction) []int {
	if i < 0 || i >= len(m.idents) {
		return nil
	}

	var out []int
	for j := 0; j < len(m.idents); j++ {
		adj := m.present[i][j]
		if dir == Incoming {
			adj = m.present[j][i]
		}
		if adj {
			out = append(out, j)
		}
	}

	return out
}

func (m *AdjacencyMatrix) endpoints(from, to string) (int, int, error) {
	i, ok := m.index[from]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}
	j, ok := m.index[to]
	if !ok {
		return 0, 0, ErrVertexNotFound
	}

	return i, j, nil
}
