package rtree

// overflowOutcome reports what resolveOverflow decided to do about an
// overfull parent.
type overflowOutcome int

const (
	complete overflowOutcome = iota
	reinsert
	split_
)

// resolveOverflow inspects n after a child was appended to it. If n is
// still within MaxSize it reports complete. Otherwise, if reinsertion is
// both configured (ReinsertionCount > 0) and still allowed at this
// level, it removes the farthest-from-center children via
// reinsertCandidates and reports reinsert; otherwise it splits n and
// reports split_ with the newly created sibling.
func resolveOverflow[T Object](n *node[T], params Parameters, reinsertAllowed bool) (outcome overflowOutcome, sibling *node[T], reinserted []*node[T]) {
	if len(n.children) <= params.MaxSize {
		return complete, nil, nil
	}
	if params.ReinsertionCount > 0 && reinsertAllowed {
		removed := reinsertCandidates(n, params.ReinsertionCount)
		return reinsert, nil, removed
	}
	sib := split(n, params)
	return split_, sib, nil
}
