package fingertree

import (
	"fmt"
	"io"
	"strings"
)

type dotWriter[T, M any] struct {
	max      int
	nodelist strings.Builder
	edgelist strings.Builder
}

func (dw *dotWriter[T, M]) alloc() int {
	dw.max++
	return dw.max
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Spines are drawn as circles labeled with their cached measure, digits as
// records and leaves as boxes labeled with their item.
func ToDot[T, M any](t *Tree[T, M], w io.Writer) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	dw := &dotWriter[T, M]{}
	dw.spine(t.root, 0)
	var bf strings.Builder
	bf.WriteString("strict digraph {\n")
	bf.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	bf.WriteString(dw.nodelist.String())
	bf.WriteString(dw.edgelist.String())
	bf.WriteString("}\n")
	_, err := io.WriteString(w, bf.String())
	if err != nil {
		tracer().Errorf("fingertree DOT: %s", err.Error())
	}
	return err
}

func (dw *dotWriter[T, M]) spine(f fingers[M], level int) int {
	ID := dw.alloc()
	switch t := f.(type) {
	case nil:
		fmt.Fprintf(&dw.nodelist, "\"%d\" %s;\n", ID, emptyNode())
	case *single[M]:
		fmt.Fprintf(&dw.nodelist, "\"%d\" [label=\"single\\n%v\" %s];\n", ID, t.measure(), spineDotStyles(level))
		dw.edge(ID, dw.element(t.x))
	case *deep[M]:
		fmt.Fprintf(&dw.nodelist, "\"%d\" [label=\"deep\\n%v\" %s];\n", ID, t.m, spineDotStyles(level))
		dw.edge(ID, dw.digit(t.prefix, "prefix"))
		dw.edge(ID, dw.spine(t.middle, level+1))
		dw.edge(ID, dw.digit(t.suffix, "suffix"))
	}
	return ID
}

func (dw *dotWriter[T, M]) digit(d digit[M], name string) int {
	ID := dw.alloc()
	fmt.Fprintf(&dw.nodelist, "\"%d\" [label=\"%s\\n%v\",shape=record,style=filled,fillcolor=\"#FFEEDD\"];\n",
		ID, name, d.m)
	for _, x := range d.items {
		dw.edge(ID, dw.element(x))
	}
	return ID
}

func (dw *dotWriter[T, M]) element(e element[M]) int {
	ID := dw.alloc()
	switch x := e.(type) {
	case *node[M]:
		fmt.Fprintf(&dw.nodelist, "\"%d\" [label=\"%v\",shape=circle,style=filled,fillcolor=\"#CCDDFF\"];\n", ID, x.m)
		for _, child := range x.items {
			dw.edge(ID, dw.element(child))
		}
	case leaf[T, M]:
		label := strings.ReplaceAll(fmt.Sprintf("%v", x.value), "\"", "\\\"")
		fmt.Fprintf(&dw.nodelist, "\"%d\" [label=\"“%s”\\n%v\",shape=box];\n", ID, label, x.m)
	}
	return ID
}

func (dw *dotWriter[T, M]) edge(from, to int) {
	fmt.Fprintf(&dw.edgelist, "\"%d\" -> \"%d\";\n", from, to)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func spineDotStyles(level int) string {
	return fmt.Sprintf(",style=filled,color=black,fillcolor=\"%s\",shape=circle",
		hexcolors[level%len(hexcolors)])
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
