package rtree

import "github.com/tormol/rstartree/geo"

// split partitions an overfull parent's children into two siblings,
// chosen to minimize overlap with tie-breaks on total area. n retains
// the left group after the call; the freshly constructed right-group
// parent is returned.
func split[T Object](n *node[T], params Parameters) *node[T] {
	dims := n.childDims()
	axis := chooseSplitAxis(n.children, dims, params.MinSize)
	sorted := sortByAxis(n.children, axis)
	k := chooseSplitIndex(sorted, params.MinSize)

	left := sorted[:k]
	right := make([]*node[T], len(sorted)-k)
	copy(right, sorted[k:])

	n.children = left
	n.retighten()
	return newParent(right)
}

// chooseSplitAxis picks the axis whose candidate distributions have the
// smallest total margin sum. For each axis, every valid split index's
// margin(left)+margin(right) is summed (the teacher's statistic); the
// axis with the smallest sum wins, first axis breaking ties.
func chooseSplitAxis[T Object](children []*node[T], dims, minSize int) int {
	bestAxis := 0
	bestSum := -1.0
	for axis := 0; axis < dims; axis++ {
		sorted := sortByAxis(children, axis)
		sum := marginSum(sorted, minSize)
		if bestSum == -1 || sum < bestSum {
			bestSum = sum
			bestAxis = axis
		}
	}
	return bestAxis
}

// marginSum sums margin(left)+margin(right) over every legal split
// index of sorted.
func marginSum[T Object](sorted []*node[T], minSize int) float64 {
	var sum float64
	n := len(sorted)
	for k := minSize; k <= n-minSize; k++ {
		left := envelopeOf(sorted[:k])
		right := envelopeOf(sorted[k:])
		sum += left.Margin() + right.Margin()
	}
	return sum
}

// chooseSplitIndex picks, along the already axis-sorted children, the
// split index minimizing (intersection_area, total area); the smallest
// index wins ties.
func chooseSplitIndex[T Object](sorted []*node[T], minSize int) int {
	n := len(sorted)
	bestK := minSize
	var bestOverlap, bestArea float64
	first := true
	for k := minSize; k <= n-minSize; k++ {
		left := envelopeOf(sorted[:k])
		right := envelopeOf(sorted[k:])
		overlap := left.IntersectionArea(right)
		area := left.Area() + right.Area()
		if first || overlap < bestOverlap || (overlap == bestOverlap && area < bestArea) {
			bestK = k
			bestOverlap = overlap
			bestArea = area
			first = false
		}
	}
	return bestK
}

// sortByAxis returns a new slice of children ordered by the projection
// of their envelope on axis, ties broken by the envelope's far edge on
// the same axis.
func sortByAxis[T Object](children []*node[T], axis int) []*node[T] {
	bounded := make([]geo.Bounded[*node[T]], len(children))
	for i, c := range children {
		bounded[i] = geo.Bounded[*node[T]]{Value: c, Bounds: c.envelope()}
	}
	geo.AlignByAxis(bounded, axis)
	sorted := make([]*node[T], len(children))
	for i, b := range bounded {
		sorted[i] = b.Value
	}
	return sorted
}

// envelopeOf returns the merge of a group of children's envelopes.
func envelopeOf[T Object](group []*node[T]) geo.Envelope {
	e := geo.NewEmptyEnvelope(group[0].envelope().Dims())
	for _, c := range group {
		e.Merge(c.envelope())
	}
	return e
}
