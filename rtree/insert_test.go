package rtree

import (
	"math/rand"
	"testing"

	"github.com/tormol/rstartree/geo"
)

func randSign() float64 {
	if rand.Intn(2) == 0 {
		return -1
	}
	return 1
}

func randPoint() pointObject {
	x := float64(rand.Int31n(180)) * randSign()
	y := float64(rand.Int31n(90)) * randSign()
	return obj(x, y)
}

func createPoints(n int) []pointObject {
	pts := make([]pointObject, n)
	for i := range pts {
		pts[i] = randPoint()
	}
	return pts
}

func TestInsertIntoEmptyTree(t *testing.T) {
	tr := NewTreeDefault[pointObject]()
	tr.Insert(obj(0.02, 0.4))

	if tr.Size() != 1 {
		t.Log("ERROR: want size 1, got", tr.Size())
		t.Fail()
	}
	if tr.Height() != 1 {
		t.Log("ERROR: want height 1, got", tr.Height())
		t.Fail()
	}
	if !tr.Contains(geo.NewPoint(0.02, 0.4)) {
		t.Log("ERROR: tree should contain the inserted point")
		t.Fail()
	}
	if tr.Contains(geo.NewPoint(0.3, 0.2)) {
		t.Log("ERROR: tree should not contain a point that was never inserted")
		t.Fail()
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestInsertRandomPoints(t *testing.T) {
	num := 1000
	tr := NewTreeDefault[pointObject]()
	points := createPoints(num)
	for _, p := range points {
		tr.Insert(p)
	}
	if tr.Size() != num {
		t.Log("ERROR: want size", num, "got", tr.Size())
		t.Fail()
	}
	for _, p := range points {
		if !tr.Contains(p.p) {
			t.Log("ERROR: tree does not contain inserted point", p.p)
			t.Fail()
		}
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestFirstRootSplit(t *testing.T) {
	params := mustParams(3, 6, 2)
	tr := NewTree[pointObject](params)
	for i := 0; i < params.MaxSize; i++ {
		tr.Insert(obj(float64(i), float64(i)))
	}
	if tr.Height() != 1 {
		t.Log("ERROR: root should still be a single leaf parent, height", tr.Height())
		t.Fail()
	}
	tr.Insert(obj(float64(params.MaxSize), float64(params.MaxSize)))
	if tr.Height() != 2 {
		t.Log("ERROR: want height 2 after the first root split, got", tr.Height())
		t.Fail()
	}
	if len(tr.root.children) != 2 {
		t.Log("ERROR: want root with exactly 2 parent children, got", len(tr.root.children))
		t.Fail()
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestUnitGridSplitWithoutReinsertion(t *testing.T) {
	params := mustParams(2, 4, 0)
	tr := NewTree[pointObject](params)
	grid := []pointObject{
		obj(0, 0), obj(1, 0), obj(0, 1), obj(1, 1), obj(0.5, 0.5),
	}
	for _, p := range grid {
		tr.Insert(p)
	}
	if tr.Height() != 2 {
		t.Log("ERROR: want height 2, got", tr.Height())
		t.Fail()
	}
	if len(tr.root.children) != 2 {
		t.Log("ERROR: want root with exactly 2 children, got", len(tr.root.children))
		t.Fail()
	}
	for _, c := range tr.root.children {
		if len(c.children) < 2 || len(c.children) > 3 {
			t.Log("ERROR: want 2 or 3 leaves per root child, got", len(c.children))
			t.Fail()
		}
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestUnitGridWithReinsertion(t *testing.T) {
	params := mustParams(2, 4, 2)
	tr := NewTree[pointObject](params)
	grid := []pointObject{
		obj(0, 0), obj(1, 0), obj(0, 1), obj(1, 1), obj(0.5, 0.5), obj(2, 2),
	}
	for _, p := range grid {
		tr.Insert(p)
	}
	if tr.Size() != len(grid) {
		t.Log("ERROR: want size", len(grid), "got", tr.Size())
		t.Fail()
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestIdenticalPoints(t *testing.T) {
	tr := NewTreeDefault[pointObject]()
	for i := 0; i < 100; i++ {
		tr.Insert(obj(0, 0))
	}
	if tr.Size() != 100 {
		t.Log("ERROR: want size 100, got", tr.Size())
		t.Fail()
	}
	if !tr.Contains(geo.NewPoint(0, 0)) {
		t.Log("ERROR: tree should contain (0,0)")
		t.Fail()
	}
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func TestInsertionDeterminism(t *testing.T) {
	points := createPoints(200)
	a := NewTreeDefault[pointObject]()
	b := NewTreeDefault[pointObject]()
	for _, p := range points {
		a.Insert(p)
	}
	for _, p := range points {
		b.Insert(p)
	}
	da, err := a.DumpLayout()
	if err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
	db, err := b.DumpLayout()
	if err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
	if string(da) != string(db) {
		t.Log("ERROR: two trees built from the same insertion order should be structurally identical")
		t.Fail()
	}
}

func TestMonotoneEnvelopesAlongPath(t *testing.T) {
	tr := NewTreeDefault[pointObject]()
	for _, p := range createPoints(300) {
		tr.Insert(p)
	}
	var walk func(n *node[pointObject]) error
	walk = func(n *node[pointObject]) error {
		if n.isLeaf {
			return nil
		}
		for _, c := range n.children {
			if !n.envelope().Contains(c.envelope()) {
				t.Log("ERROR: parent envelope does not contain child envelope")
				t.Fail()
			}
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	walk(tr.root)
	if err := tr.Audit(); err != nil {
		t.Log("ERROR:", err)
		t.Fail()
	}
}

func BenchmarkInsert(b *testing.B) {
	tr := NewTreeDefault[pointObject]()
	points := createPoints(b.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(points[i])
	}
}
