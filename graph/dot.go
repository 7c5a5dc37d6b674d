package graph

import (
	"fmt"
	"io"
)

// WriteDot renders the graph in DOT form for Graphviz inspection. Vertices
// are emitted as their integer indices labelled with their identifiers;
// every present edge is emitted with its weight as the edge label.
func WriteDot(w io.Writer, g Graph) error {
	if _, err := fmt.Fprintf(w, "digraph roadmap\n{\n"); err != nil {
		return err
	}

	n := g.NumVertices()
	if _, err := fmt.Fprintf(w, "\t// vertices\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		id, _ := g.VertexIdent(i)
		if _, err := fmt.Fprintf(w, "\t%d [label=%q];\n", i, id); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\n\t// edges and weights\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for _, j := range g.NeighborsAt(i, Outgoing) {
			if _, err := fmt.Fprintf(w, "\t%d -> %d [label=\"%v\"];\n", i, j, g.WeightAt(i, j)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")

	return err
}
