package wbs

import (
	"maps"
	"slices"
	"strings"
)

// Kind identifies the concrete kind of a node. Uniform trees compare kinds
// by value.
type Kind string

// DefaultKind is the kind of nodes created without WithKind.
const DefaultKind Kind = "breakdown"

// Node is an element of a breakdown structure. It owns its children and
// points back at its parent.
type Node struct {
	name            string
	kind            Kind
	parent          *Node
	children        []*Node
	allowDuplicates bool
	uniform         bool
	attrs           map[string]any
}

// Option configures a node at creation.
type Option func(*Node)

// Uniform requires children to share the node's kind.
func Uniform(v bool) Option {
	return func(n *Node) { n.uniform = v }
}

// AllowDuplicates permits a name to repeat in the tree, except among
// siblings.
func AllowDuplicates(v bool) Option {
	return func(n *Node) { n.allowDuplicates = v }
}

// WithKind sets the node's kind.
func WithKind(k Kind) Option {
	return func(n *Node) { n.kind = k }
}

// WithAttrs copies attrs into the node's associated data.
func WithAttrs(attrs map[string]any) Option {
	return func(n *Node) {
		if len(attrs) == 0 {
			return
		}
		if n.attrs == nil {
			n.attrs = make(map[string]any, len(attrs))
		}
		maps.Copy(n.attrs, attrs)
	}
}

// WithAttr sets a single attribute.
func WithAttr(key string, v any) Option {
	return func(n *Node) { n.SetAttr(key, v) }
}

// New creates a standalone node. A node created with an empty name is a
// tree root.
func New(name string, opts ...Option) *Node {
	n := &Node{name: name, kind: DefaultKind}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewRoot creates an empty tree.
func NewRoot(opts ...Option) *Node {
	return New("", opts...)
}

func (n *Node) Name() string          { return n.name }
func (n *Node) Kind() Kind            { return n.kind }
func (n *Node) Parent() *Node         { return n.parent }
func (n *Node) AllowDuplicates() bool { return n.allowDuplicates }
func (n *Node) Uniform() bool         { return n.uniform }

// Children returns a copy of the node's children in insertion order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

func (n *Node) Attrs() map[string]any {
	return maps.Clone(n.attrs)
}

func (n *Node) Attr(key string) (any, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *Node) SetAttr(key string, v any) {
	if n.attrs == nil {
		n.attrs = map[string]any{}
	}
	n.attrs[key] = v
}

func (n *Node) ChildNames() []string {
	res := make([]string, len(n.children))
	for i, c := range n.children {
		res[i] = c.name
	}
	return res
}

func (n *Node) ChildNamesUpper() []string {
	res := n.ChildNames()
	for i := range res {
		res[i] = strings.ToUpper(res[i])
	}
	return res
}

func (n *Node) String() string {
	return n.name
}

// newLike creates a node of the same kind as n.
func (n *Node) newLike(name string, opts ...Option) *Node {
	return New(name, append([]Option{WithKind(n.kind)}, opts...)...)
}
