package rtree

import "github.com/tormol/rstartree/geo"

// ForEach calls fn for every stored object until it returns false. The
// order objects are visited in is undefined.
func (t *Tree[T]) ForEach(fn func(T) bool) {
	toVisit := []*node[T]{t.root}
	for len(toVisit) > 0 {
		n := pop(&toVisit)
		if n.isLeaf {
			if !fn(n.item) {
				return
			}
			continue
		}
		toVisit = append(toVisit, n.children...)
	}
}

// ForEachNode calls fn for every node (parent or leaf) in the tree until
// it returns false, passing the node's envelope, whether it's a leaf,
// and its depth from the root (0 at the root).
func (t *Tree[T]) ForEachNode(fn func(bounds geo.Envelope, isLeaf bool, depth int) bool) {
	type visit struct {
		n     *node[T]
		depth int
	}
	toVisit := []visit{{t.root, 0}}
	for len(toVisit) > 0 {
		v := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		if !fn(v.n.envelope(), v.n.isLeaf, v.depth) {
			return
		}
		if !v.n.isLeaf {
			for _, c := range v.n.children {
				toVisit = append(toVisit, visit{c, v.depth + 1})
			}
		}
	}
}

// Range returns every stored object whose envelope intersects area, or,
// if mustCover is true, every stored object whose envelope area fully
// covers. Both modes prune the same way (a subtree whose envelope
// doesn't intersect area can hold nothing that merely intersects it,
// let alone anything it fully covers); mustCover only tightens the leaf
// test from Intersects to Contains.
func (t *Tree[T]) Range(area geo.Envelope, mustCover bool) []T {
	var found []T
	if t.size == 0 || !area.Intersects(t.root.envelope()) {
		return found
	}
	toVisit := []*node[T]{t.root}
	for len(toVisit) > 0 {
		n := pop(&toVisit)
		if n.isLeaf {
			leaf := n.envelope()
			if mustCover {
				if area.Contains(leaf) {
					found = append(found, n.item)
				}
			} else if area.Intersects(leaf) {
				found = append(found, n.item)
			}
			continue
		}
		for _, c := range n.children {
			if area.Intersects(c.envelope()) {
				toVisit = append(toVisit, c)
			}
		}
	}
	return found
}

// Locate returns every stored object whose envelope contains p.
func (t *Tree[T]) Locate(p geo.Point) []T {
	var found []T
	if t.size == 0 || !t.root.envelope().ContainsPoint(p) {
		return found
	}
	toVisit := []*node[T]{t.root}
	for len(toVisit) > 0 {
		n := pop(&toVisit)
		if n.isLeaf {
			if n.envelope().ContainsPoint(p) {
				found = append(found, n.item)
			}
			continue
		}
		for _, c := range n.children {
			if c.envelope().ContainsPoint(p) {
				toVisit = append(toVisit, c)
			}
		}
	}
	return found
}

// Contains reports whether any stored object's envelope contains p.
func (t *Tree[T]) Contains(p geo.Point) bool {
	found := false
	if t.size == 0 || !t.root.envelope().ContainsPoint(p) {
		return false
	}
	toVisit := []*node[T]{t.root}
	for len(toVisit) > 0 && !found {
		n := pop(&toVisit)
		if n.isLeaf {
			if n.envelope().ContainsPoint(p) {
				found = true
			}
			continue
		}
		for _, c := range n.children {
			if c.envelope().ContainsPoint(p) {
				toVisit = append(toVisit, c)
			}
		}
	}
	return found
}

func pop[T Object](stack *[]*node[T]) *node[T] {
	s := *stack
	last := len(s) - 1
	n := s[last]
	*stack = s[:last]
	return n
}
