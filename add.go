package wbs

import (
	"fmt"

	"github.com/signadot/wbs/debug"
)

type addOpts struct {
	skip bool
}

// AddOption configures AddChild and AddChildNamed.
type AddOption func(*addOpts)

// SkipExisting makes an add return the node already holding the name
// instead of failing with ErrDuplicate.
func SkipExisting() AddOption {
	return func(o *addOpts) { o.skip = true }
}

// AddChild attaches child as the last child of n and returns it.
//
// child must be standalone and named; only a root has an empty name. It
// must not be n or one of n's ancestors. If n is uniform, child must have
// n's kind. The name of child must not be in use: among n's children when n
// allows duplicates, anywhere in the tree when it does not. On success
// child takes n's policy flags.
func (n *Node) AddChild(child *Node, opts ...AddOption) (*Node, error) {
	o := &addOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if child == nil {
		return nil, fmt.Errorf("%w: can only add a node child", ErrUniformity)
	}
	if child.name == "" {
		return nil, fmt.Errorf("%w: cannot add a nameless child to %q", ErrUniformity, n.name)
	}
	if child.parent != nil {
		return nil, fmt.Errorf("%w: %q already has parent %q", ErrTreeNavigation, child.name, child.parent.name)
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return nil, fmt.Errorf("%w: adding %q under %q makes a cycle", ErrTreeNavigation, child.name, n.name)
		}
	}
	if n.uniform && child.kind != n.kind {
		return nil, fmt.Errorf("%w: can only add a %q child to %q, got %q",
			ErrUniformity, n.kind, n.name, child.kind)
	}
	found, err := n.FindByName(child.name, NoFail(), DirectChildren(n.allowDuplicates))
	if err != nil {
		return nil, err
	}
	if found != nil {
		if o.skip {
			if debug.Add() {
				debug.Logf("add %q under %q: skipped, exists at %v\n", child.name, n.name, found.Path())
			}
			return found, nil
		}
		return nil, fmt.Errorf("%w: child %q already exists", ErrDuplicate, child.name)
	}
	n.children = append(n.children, child)
	child.parent = n
	child.allowDuplicates = n.allowDuplicates
	child.uniform = n.uniform
	if debug.Add() {
		debug.Logf("added %q under %q at level %d\n", child.name, n.name, child.Level())
	}
	return child, nil
}

// AddChildNamed attaches a new node of n's kind named name.
func (n *Node) AddChildNamed(name string, opts ...AddOption) (*Node, error) {
	return n.AddChild(n.newLike(name), opts...)
}

// AddChildren adds each child in turn. It stops at the first failure; the
// nodes attached up to then stay attached and are returned.
func (n *Node) AddChildren(children ...*Node) ([]*Node, error) {
	res := make([]*Node, 0, len(children))
	for _, child := range children {
		added, err := n.AddChild(child)
		if err != nil {
			return res, err
		}
		res = append(res, added)
	}
	return res, nil
}

// AddNames is AddChildren for bare names.
func (n *Node) AddNames(names ...string) ([]*Node, error) {
	res := make([]*Node, 0, len(names))
	for _, name := range names {
		added, err := n.AddChildNamed(name)
		if err != nil {
			return res, err
		}
		res = append(res, added)
	}
	return res, nil
}

// GetOrCreateChild returns the node named name, creating it under n with
// opts if there is none. The lookup is restricted to n's children when n
// disallows duplicates.
func (n *Node) GetOrCreateChild(name string, opts ...Option) (*Node, error) {
	existing, err := n.FindByName(name, NoFail(), DirectChildren(!n.allowDuplicates))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return n.AddChild(n.newLike(name, opts...))
}
