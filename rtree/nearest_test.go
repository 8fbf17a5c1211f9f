package rtree

import (
	"math"
	"testing"

	"github.com/tormol/rstartree/geo"
)

func bruteForceNearest(points []pointObject, q geo.Point) pointObject {
	best := points[0]
	bestDist := best.p.DistanceSquared(q)
	for _, p := range points[1:] {
		if d := p.p.DistanceSquared(q); d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

func TestNearestMatchesBruteForce(t *testing.T) {
	points := createPoints(100)
	tr := NewTreeDefault[pointObject]()
	for _, p := range points {
		tr.Insert(p)
	}
	q := geo.NewPoint(0, 0)

	got, ok := tr.Nearest(q)
	if !ok {
		t.Log("ERROR: Nearest reported no result for a non-empty tree")
		t.Fail()
		return
	}
	want := bruteForceNearest(points, q)
	gotDist := got.p.DistanceSquared(q)
	wantDist := want.p.DistanceSquared(q)
	if math.Abs(gotDist-wantDist) > 1e-9 {
		t.Log("ERROR: nearest distance want", wantDist, "got", gotDist)
		t.Fail()
	}
}

func TestNearestOnEmptyTree(t *testing.T) {
	tr := NewTreeDefault[pointObject]()
	if _, ok := tr.Nearest(geo.NewPoint(0, 0)); ok {
		t.Log("ERROR: Nearest should report false on an empty tree")
		t.Fail()
	}
}

func TestKNearestOrdering(t *testing.T) {
	tr := NewTreeDefault[pointObject]()
	pts := []pointObject{obj(0, 0), obj(1, 0), obj(5, 0), obj(10, 0)}
	for _, p := range pts {
		tr.Insert(p)
	}
	got := tr.KNearest(geo.NewPoint(0, 0), 3)
	if len(got) != 3 {
		t.Log("ERROR: want 3 results, got", len(got))
		t.Fail()
		return
	}
	prev := -1.0
	for _, g := range got {
		d := g.p.DistanceSquared(geo.NewPoint(0, 0))
		if d < prev {
			t.Log("ERROR: KNearest results are not in non-decreasing distance order")
			t.Fail()
		}
		prev = d
	}
}
