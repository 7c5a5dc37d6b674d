package rangetree

import (
	"fmt"
	"io"
	"strings"
)

// WriteDot writes the top-level tree structure to w in DOT format, one state
// per node labelled with its point and cached range. Subordinate trees are
// omitted. Intended for debugging small trees.
func (t *Tree) WriteDot(w io.Writer) error {
	var states, transitions strings.Builder

	var walk func(i int)
	walk = func(i int) {
		if i == nilIdx {
			return
		}
		n := t.nodes[i]
		fmt.Fprintf(&states, "\t%d [label=\"%v [%g..%g]\"];\n", i, []float64(n.pt), n.lo, n.hi)
		if n.left != nilIdx {
			fmt.Fprintf(&transitions, "\t%d:sw -> %d:n [label=\"l\"];\n", i, n.left)
			walk(n.left)
		}
		if n.right != nilIdx {
			fmt.Fprintf(&transitions, "\t%d:se -> %d:n [label=\"r\"];\n", i, n.right)
			walk(n.right)
		}
	}
	walk(t.root)

	_, err := fmt.Fprintf(w, "digraph rangetree\n{\n\t// states\n%s\n\t// transitions\n%s}\n",
		states.String(), transitions.String())

	return err
}
