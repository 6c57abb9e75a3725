package wbs

import (
	"iter"
	"slices"
)

// Nodes returns the pre-order sequence of the subtree at n: n itself unless
// it is a root, then each child's subtree in order. The slice is built on
// each call.
func (n *Node) Nodes() []*Node {
	var res []*Node
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur != n || !n.IsRoot() {
			res = append(res, cur)
		}
		for _, c := range slices.Backward(cur.children) {
			stack = append(stack, c)
		}
	}
	return res
}

// All iterates over Nodes(). Each range over the result starts from a newly
// built sequence.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, x := range n.Nodes() {
			if !yield(x) {
				return
			}
		}
	}
}

// Len returns the number of nodes All() yields.
func (n *Node) Len() int {
	return len(n.Nodes())
}

// Depth returns the number of levels below n in its deepest branch.
func (n *Node) Depth() int {
	base := n.Level()
	res := 0
	for _, x := range n.Nodes() {
		res = max(res, x.Level()-base)
	}
	return res
}

// Visit calls f on n before (isPost false) and after (isPost true) its
// children. Children are only visited when the pre call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
