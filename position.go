package wbs

import "fmt"

// Level returns the number of parent links between n and its root.
func (n *Node) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// IsTop reports whether n sits directly below the root.
func (n *Node) IsTop() bool {
	return n.parent != nil && n.parent.parent == nil
}

// Top returns the ancestor of n (possibly n itself) directly below the root.
func (n *Node) Top() (*Node, error) {
	if n.IsRoot() {
		return nil, fmt.Errorf("%w: can't navigate to top from root", ErrTreeNavigation)
	}
	res := n
	for !res.IsTop() {
		res = res.parent
	}
	return res, nil
}

// Root walks up until it reaches a node without a name. A named node that
// has no parent is its own root.
func (n *Node) Root() *Node {
	res := n
	for res.name != "" && res.parent != nil {
		res = res.parent
	}
	return res
}

// Ancestors returns GetAncestors(false).
func (n *Node) Ancestors() []*Node {
	return n.GetAncestors(false)
}

// GetAncestors returns the ancestors of n from nearest to furthest. The chain
// ends at the top node: the root never appears, and a top node has no
// ancestors other than itself when includeSelf is set.
func (n *Node) GetAncestors(includeSelf bool) []*Node {
	if n.IsRoot() {
		return []*Node{}
	}
	res := []*Node{}
	cur := n
	if !includeSelf {
		if n.IsTop() {
			return res
		}
		cur = n.parent
	}
	for {
		res = append(res, cur)
		if cur.IsTop() {
			return res
		}
		cur = cur.parent
	}
}

// IsEmpty reports whether the tree containing n has no nodes below its root.
func (n *Node) IsEmpty() bool {
	return len(n.Root().children) == 0
}

// Path returns the names from the top node down to n. The root has an empty
// path.
func (n *Node) Path() []string {
	var res []string
	for cur := n; cur.parent != nil; cur = cur.parent {
		res = append(res, cur.name)
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// GetPath follows names through direct children starting at n.
func (n *Node) GetPath(names ...string) (*Node, error) {
	cur := n
	for i, name := range names {
		next, err := cur.FindByName(name, DirectChildren(true), NoFail())
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %q (path element %d)", ErrNotFound, name, i)
		}
		cur = next
	}
	return cur, nil
}
