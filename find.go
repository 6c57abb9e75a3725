package wbs

import (
	"fmt"

	"github.com/signadot/wbs/debug"
)

// Predicate reports whether a node matches. An error, or a panic, while
// evaluating a predicate fails the search with ErrFunctionEvaluation.
type Predicate func(*Node) (bool, error)

type findOpts struct {
	noFail         bool
	directChildren bool
	skipErrors     bool
}

type FindOption func(*findOpts)

// NoFail makes a miss return a nil node and a nil error.
func NoFail() FindOption {
	return func(o *findOpts) { o.noFail = true }
}

// DirectChildren restricts the search to the children of the node searched
// from when v is true.
func DirectChildren(v bool) FindOption {
	return func(o *findOpts) { o.directChildren = v }
}

// SkipErrors treats nodes whose predicate fails as non-matching.
func SkipErrors() FindOption {
	return func(o *findOpts) { o.skipErrors = true }
}

// FindByFunc returns the first node matching pred.
//
// With DirectChildren, only the children of n are examined. Otherwise n
// itself is examined first, unless it is a root, followed by the whole tree
// from n.Root() in pre-order.
func (n *Node) FindByFunc(pred Predicate, opts ...FindOption) (*Node, error) {
	o := &findOpts{}
	for _, opt := range opts {
		opt(o)
	}
	var scope []*Node
	if o.directChildren {
		scope = n.children
	} else {
		if !n.IsRoot() {
			scope = append(scope, n)
		}
		scope = append(scope, n.Root().Nodes()...)
	}
	for _, x := range scope {
		ok, err := evalPredicate(pred, x)
		if err != nil {
			if o.skipErrors {
				if debug.Find() {
					debug.Logf("find: skipping %q: %v\n", x.name, err)
				}
				continue
			}
			return nil, fmt.Errorf("%w: at %q: %w", ErrFunctionEvaluation, x.name, err)
		}
		if ok {
			if debug.Find() {
				debug.Logf("find: matched %v\n", x.Path())
			}
			return x, nil
		}
	}
	if o.noFail {
		return nil, nil
	}
	return nil, fmt.Errorf("%w: no match in %d nodes", ErrNotFound, len(scope))
}

func evalPredicate(pred Predicate, x *Node) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, isErr := r.(error); isErr {
				err = rErr
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return pred(x)
}

// FindByName finds the first node named name, searching as FindByFunc.
func (n *Node) FindByName(name string, opts ...FindOption) (*Node, error) {
	return n.FindByFunc(func(x *Node) (bool, error) {
		return x.name == name, nil
	}, opts...)
}

// FindItem finds a node with the same name as item.
func (n *Node) FindItem(item *Node, opts ...FindOption) (*Node, error) {
	return n.FindByName(item.name, opts...)
}
