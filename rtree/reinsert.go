package rtree

import "sort"

// reinsertCandidates removes the `count` children of n whose envelope
// centers are farthest from n's own envelope center (ties broken by
// position), retightens n's envelope, and returns the removed children
// ordered nearest-of-the-removed-group first — the order the driver
// re-inserts them in, mirroring the teacher's decreasing-then-reversed
// reinsertion order.
func reinsertCandidates[T Object](n *node[T], count int) []*node[T] {
	center := n.envelope().Center()
	type scored struct {
		idx  int
		dist float64
	}
	all := make([]scored, len(n.children))
	for i, c := range n.children {
		all[i] = scored{i, c.envelope().Center().DistanceSquared(center)}
	}
	// Farthest first, stable so position breaks ties deterministically.
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist > all[j].dist })

	if count > len(all) {
		count = len(all)
	}
	farthest := all[:count]

	remove := make(map[int]bool, count)
	for _, s := range farthest {
		remove[s.idx] = true
	}
	kept := make([]*node[T], 0, len(n.children)-count)
	removed := make([]*node[T], count)
	for i, c := range n.children {
		if remove[i] {
			continue
		}
		kept = append(kept, c)
	}
	// removed, nearest-of-the-farthest-group first (reverse of farthest).
	for i, s := range farthest {
		removed[count-1-i] = n.children[s.idx]
	}

	n.children = kept
	n.retighten()
	return removed
}
