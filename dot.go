package refa

import (
	"bufio"
	"fmt"
	"os"
)

// dotEdge is one rendered transition line.
type dotEdge struct {
	from  int
	to    int
	label string
}

// writeDot emits a Graphviz digraph: header, left-to-right rank direction,
// accept states as double circles, remaining states as circles, then one
// line per edge. The file is created (or truncated) at path and closed on
// every exit path.
func writeDot(path, name string, accept []int, edges []dotEdge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "digraph %s {\n", name)
	fmt.Fprintf(w, "\trankdir=LR;\n")
	fmt.Fprintf(w, "\tnode [shape = doublecircle]; ")
	for _, s := range accept {
		fmt.Fprintf(w, "%d ", s)
	}
	fmt.Fprintf(w, ";\n\tnode [shape = circle];\n")
	for _, e := range edges {
		fmt.Fprintf(w, "\t%d -> %d [ label = \"%s\"]\n", e.from, e.to, e.label)
	}
	fmt.Fprintln(w, "}")

	return w.Flush()
}
