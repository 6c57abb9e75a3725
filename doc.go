// Package wbs provides hierarchical breakdown structures: rooted, ordered
// trees of named nodes such as a work breakdown structure.
//
// # Overview
//
// A single type, [Node], is at once the tree, a subtree and a node. Any node
// may be treated as the root of its own subtree for read-only operations.
//
// The tree root is a synthetic anchor: it has no name and no parent and is
// never a "real" member of the hierarchy. The nodes directly below the root
// are "top" nodes, the first real tier.
//
//	root := wbs.NewRoot()
//	design, _ := root.AddChildNamed("design")
//	design.AddNames("schema", "api")
//	fmt.Println(root.Tree())
//
// prints
//
//	\
//	  \design
//	    \schema
//	    \api
//
// # Policies
//
// Two policy flags constrain mutation:
//
//   - AllowDuplicates: when false, a name may appear only once in the whole
//     tree; when true, names must only be unique among siblings.
//   - Uniform: when true, every attached child must have the same [Kind] as
//     its parent.
//
// Policies are set at construction and copied onto each child as it is
// attached, so a tree shares the policy pair of its root.
//
// # Searching
//
// [Node.FindByFunc] is the search primitive; [Node.FindByName] and
// [Node.FindItem] are built on it. Unless restricted to direct children, a
// search covers the whole tree from its root in pre-order, starting with the
// node searched from. Misses are reported as [ErrNotFound] unless [NoFail] is
// given.
//
// # Traversal
//
// [Node.Nodes] and [Node.All] produce the pre-order sequence of a subtree.
// Each call materializes a fresh sequence; nodes hold no iteration state.
//
// # Thread Safety
//
// Nodes are not thread-safe. Concurrent mutation must be synchronized by the
// caller.
package wbs
