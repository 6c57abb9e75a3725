package wbs

import "strings"

// Tree renders the subtree at n as an outline: one line per node in
// pre-order, each indented by two spaces per level below n and marked with a
// backslash before the name.
//
//	\
//	  \a
//	    \a.1
//	  \b
func (n *Node) Tree() string {
	var b strings.Builder
	n.writeTo(&b, 0)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder, level int) {
	if level > 0 {
		b.WriteByte('\n')
	}
	for range level {
		b.WriteString("  ")
	}
	b.WriteByte('\\')
	b.WriteString(n.name)
	for _, c := range n.children {
		c.writeTo(b, level+1)
	}
}
