package rtree

import "github.com/tormol/rstartree/geo"

// node is the tagged two-case variant described by the node model: a leaf
// holds exactly one item, a parent holds an ordered collection of children
// plus a cached envelope equal to the merge of all children's envelopes.
// A single generic struct discriminated by isLeaf is used instead of two
// distinct types, since the chooser, splitter and reinserter all need a
// uniform envelope() view regardless of which case they're looking at.
type node[T Object] struct {
	isLeaf bool

	item T // valid only if isLeaf

	children []*node[T] // valid only if !isLeaf
	bounds   geo.Envelope
}

// newLeaf wraps an object as a freshly created leaf node.
func newLeaf[T Object](item T) *node[T] {
	return &node[T]{
		isLeaf: true,
		item:   item,
		bounds: item.Envelope(),
	}
}

// newRoot returns an empty parent with a neutral envelope: merging it with
// any other envelope yields that envelope unchanged.
func newRoot[T Object](dims int) *node[T] {
	return &node[T]{bounds: geo.NewEmptyEnvelope(dims)}
}

// newParent returns a parent whose envelope is the tight merge of its
// children's envelopes.
func newParent[T Object](children []*node[T]) *node[T] {
	n := &node[T]{children: children}
	n.retighten()
	return n
}

// envelope returns the node's cached bounds for a parent, or the live
// bounds of its payload for a leaf.
func (n *node[T]) envelope() geo.Envelope {
	if n.isLeaf {
		return n.item.Envelope()
	}
	return n.bounds
}

// allChildrenLeaves reports whether every child of n is a leaf, i.e.
// whether n is a leaf parent.
func (n *node[T]) allChildrenLeaves() bool {
	for _, c := range n.children {
		if !c.isLeaf {
			return false
		}
	}
	return true
}

// retighten recomputes n's cached envelope from its current children. It
// must be used instead of trusting an eager merge whenever children may
// have been removed (reinsertion, split) rather than only appended.
func (n *node[T]) retighten() {
	e := geo.NewEmptyEnvelope(n.childDims())
	for _, c := range n.children {
		e.Merge(c.envelope())
	}
	n.bounds = e
}

// childDims returns the dimensionality carried by n's children, falling
// back to the dimensionality of its own bounds if it has no children.
func (n *node[T]) childDims() int {
	if len(n.children) > 0 {
		return n.children[0].envelope().Dims()
	}
	return n.bounds.Dims()
}
