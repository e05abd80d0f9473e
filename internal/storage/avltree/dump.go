package avltree

import (
	"cmp"
	"fmt"
	"io"
	"strings"
)

// dumpR - Prints p at the given level and recursively its children. Leaves have their (empty) children omitted.
func dumpR[K cmp.Ordered, V any](w io.Writer, level int, p *node[K, V]) (err error) {
	if p == nil {
		_, err = fmt.Fprintf(w, "%s#\n", indent(level))
		return
	}

	parent := "null"
	if p.parent != nil {
		parent = fmt.Sprint(p.parent.Key())
	}
	_, err = fmt.Fprintf(w, "%s%v %v h=%d ^%s\n", indent(level), p.Key(), p.Value(), p.height, parent)
	if err != nil {
		return
	}

	if p.left != nil || p.right != nil {
		if err = dumpR(w, level+1, p.left); err != nil {
			return
		}
		err = dumpR(w, level+1, p.right)
	}

	return
}

// indent - Returns the line prefix for a node at level
func indent(level int) string {
	if level == 0 {
		return ""
	}
	return strings.Repeat("   ", level-1) + "|__"
}
