package rtree

import (
	"fmt"

	"github.com/tormol/rstartree/geo"
)

// Audit walks the whole tree and checks the invariants insertion is
// supposed to maintain: balanced leaf depth, fanout bounds on non-root
// parents, envelope tightness, and a leaf count matching Size. It is
// not run automatically — mutation paths trust their own bookkeeping —
// but is meant to be invoked by tests and diagnostics to catch a
// divergence that would otherwise corrupt every later query.
func (t *Tree[T]) Audit() error {
	if t.size == 0 {
		if t.height != 0 {
			return fmt.Errorf("rtree: empty tree has height %d, want 0", t.height)
		}
		return nil
	}
	if t.size > 1 && len(t.root.children) < 2 {
		return fmt.Errorf("rtree: root has %d children, want at least 2 for size %d", len(t.root.children), t.size)
	}

	leaves := 0
	var walk func(n *node[T], depth int, isRoot bool) error
	walk = func(n *node[T], depth int, isRoot bool) error {
		if n.isLeaf {
			leaves++
			if depth != t.height {
				return fmt.Errorf("rtree: leaf at depth %d, want %d", depth, t.height)
			}
			return nil
		}
		if !isRoot {
			if len(n.children) < t.params.MinSize || len(n.children) > t.params.MaxSize {
				return fmt.Errorf("rtree: parent at depth %d has %d children, want [%d,%d]",
					depth, len(n.children), t.params.MinSize, t.params.MaxSize)
			}
		}
		tight := envelopeOf(n.children)
		if !envelopesEqual(tight, n.bounds) {
			return fmt.Errorf("rtree: parent at depth %d has a stale envelope: cached %v, tight %v", depth, n.bounds, tight)
		}
		for _, c := range n.children {
			if err := walk(c, depth+1, false); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.root, 0, true); err != nil {
		return err
	}
	if leaves != t.size {
		return fmt.Errorf("rtree: found %d leaves, want %d", leaves, t.size)
	}
	return nil
}

func envelopesEqual(a, b geo.Envelope) bool {
	if a.Dims() != b.Dims() {
		return false
	}
	for i := 0; i < a.Dims(); i++ {
		if a.Min()[i] != b.Min()[i] || a.Max()[i] != b.Max()[i] {
			return false
		}
	}
	return true
}
