package rtree

import "github.com/tormol/rstartree/geo"

// chooseSubtree picks the index of the child of children that the new
// envelope nEnv should descend into. allLeaves states whether children
// are themselves leaf parents (i.e. whether insertion one level down
// would produce new leaves), which determines whether the overlap term
// of the no-containment phase is computed.
//
// children must be non-empty; the caller guarantees every entry is
// itself a parent, since descending past a leaf level is a programming
// error.
func chooseSubtree[T Object](children []*node[T], nEnv geo.Envelope, allLeaves bool) int {
	// Containment phase: among children whose envelope already covers
	// nEnv, pick the smallest by area; ties go to the first seen.
	best := -1
	var bestArea float64
	for i, c := range children {
		env := c.envelope()
		if env.Contains(nEnv) {
			a := env.Area()
			if best == -1 || a < bestArea {
				best = i
				bestArea = a
			}
		}
	}
	if best != -1 {
		return best
	}

	// No-containment phase: lexicographic (overlap_increase,
	// area_increase, area), smallest wins, first candidate seeds the
	// comparison so the minimum is always well-defined.
	best = 0
	bestOverlap := overlapIncrease(children, 0, nEnv, allLeaves)
	bestAreaIncrease, bestNewArea := areaIncrease(children[0].envelope(), nEnv)
	for i := 1; i < len(children); i++ {
		overlap := overlapIncrease(children, i, nEnv, allLeaves)
		areaInc, newArea := areaIncrease(children[i].envelope(), nEnv)
		if less3(overlap, areaInc, newArea, bestOverlap, bestAreaIncrease, bestNewArea) {
			best = i
			bestOverlap = overlap
			bestAreaIncrease = areaInc
			bestNewArea = newArea
		}
	}
	return best
}

// areaIncrease returns area(env ∪ nEnv) - area(env) and area(env ∪ nEnv).
func areaIncrease(env, nEnv geo.Envelope) (increase, newArea float64) {
	merged := env.Merged(nEnv)
	newArea = merged.Area()
	return newArea - env.Area(), newArea
}

// overlapIncrease computes the overlap_increase term for candidate i, or
// zero when allLeaves is false (the key then degenerates to area growth).
func overlapIncrease[T Object](children []*node[T], i int, nEnv geo.Envelope, allLeaves bool) float64 {
	if !allLeaves {
		return 0
	}
	ei := children[i].envelope()
	eiGrown := ei.Merged(nEnv)
	var before, after float64
	for j, c := range children {
		if j == i {
			continue
		}
		ej := c.envelope()
		before += ei.IntersectionArea(ej)
		after += eiGrown.IntersectionArea(ej)
	}
	return after - before
}

// less3 reports whether (a1,a2,a3) is lexicographically strictly less
// than (b1,b2,b3).
func less3(a1, a2, a3, b1, b2, b3 float64) bool {
	if a1 != b1 {
		return a1 < b1
	}
	if a2 != b2 {
		return a2 < b2
	}
	return a3 < b3
}
