package rtree

import (
	"encoding/json"

	"github.com/tormol/rstartree/geo"
)

// layoutBounds is the JSON-serializable shape of an envelope: Envelope
// itself keeps its corners unexported, so the dump copies them out
// through Min()/Max() rather than exposing mutable fields on the type.
type layoutBounds struct {
	Min geo.Point `json:"min"`
	Max geo.Point `json:"max"`
}

// layoutNode is the JSON-serializable shape of a DumpLayout tree.
type layoutNode struct {
	Bounds   layoutBounds  `json:"bounds"`
	Leaf     bool          `json:"leaf"`
	Children []*layoutNode `json:"children,omitempty"`
}

// DumpLayout renders the tree's internal structure as JSON: every
// node's envelope, whether it's a leaf, and its children. It has no
// bearing on correctness; it exists so a caller can feed the shape of a
// tree to a visualizer the way the teacher pack renders ship tracklogs
// as GeoJSON, generalized here to the tree's own envelope hierarchy
// rather than a wire format with a fixed feature-collection shape.
func (t *Tree[T]) DumpLayout() ([]byte, error) {
	return json.Marshal(dumpNode(t.root))
}

func dumpNode[T Object](n *node[T]) *layoutNode {
	env := n.envelope()
	ln := &layoutNode{Bounds: layoutBounds{Min: env.Min(), Max: env.Max()}, Leaf: n.isLeaf}
	if !n.isLeaf {
		ln.Children = make([]*layoutNode, len(n.children))
		for i, c := range n.children {
			ln.Children[i] = dumpNode(c)
		}
	}
	return ln
}
