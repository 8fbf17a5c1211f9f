package rtree

import (
	"container/heap"

	"github.com/tormol/rstartree/geo"
)

// candidate is one entry of the branch-and-bound priority queue: either
// a node to descend into or a leaf whose item is a result candidate,
// ordered by the squared distance lower bound from the query point.
type candidate[T Object] struct {
	n    *node[T]
	dist float64
}

type candidateHeap[T Object] []candidate[T]

func (h candidateHeap[T]) Len() int            { return len(h) }
func (h candidateHeap[T]) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h candidateHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap[T]) Push(x interface{}) { *h = append(*h, x.(candidate[T])) }
func (h *candidateHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Nearest returns the stored object closest to p by Euclidean distance,
// and false if the tree is empty. Grounded on the teacher pack's
// distance-ordered traversal idiom (sort candidates by squared distance
// to the query, consume nearest-first), generalized here into a full
// branch-and-bound best-first search: a node's envelope-to-point
// distance is always a lower bound on the distance to any object it
// contains, so popping the queue in increasing distance order and
// returning the first leaf found is guaranteed optimal.
func (t *Tree[T]) Nearest(p geo.Point) (T, bool) {
	results := t.KNearest(p, 1)
	if len(results) == 0 {
		var zero T
		return zero, false
	}
	return results[0], true
}

// KNearest returns up to k stored objects closest to p, nearest first.
func (t *Tree[T]) KNearest(p geo.Point, k int) []T {
	var found []T
	if t.size == 0 || k <= 0 {
		return found
	}

	h := &candidateHeap[T]{}
	heap.Init(h)
	heap.Push(h, candidate[T]{n: t.root, dist: t.root.envelope().DistanceSquared(p)})

	for h.Len() > 0 && len(found) < k {
		c := heap.Pop(h).(candidate[T])
		if c.n.isLeaf {
			found = append(found, c.n.item)
			continue
		}
		for _, child := range c.n.children {
			heap.Push(h, candidate[T]{n: child, dist: leafLowerBound(child, p)})
		}
	}
	return found
}

// leafLowerBound returns the key a child is pushed onto the priority
// queue with: the object's actual squared distance for a leaf (the only
// place Object.DistanceSquared is used), or the envelope lower bound for
// a parent. Using the exact distance at leaves, rather than the envelope
// distance, is what makes the search correct for objects whose envelope
// doesn't collapse to the object itself.
func leafLowerBound[T Object](n *node[T], p geo.Point) float64 {
	if n.isLeaf {
		return n.item.DistanceSquared(p)
	}
	return n.envelope().DistanceSquared(p)
}
