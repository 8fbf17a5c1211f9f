package rtree

import "github.com/tormol/rstartree/geo"

// pointObject is the Object used throughout the test suite: a
// zero-area envelope around a single point, the same trick the teacher
// pack uses to store boats as zero-area rectangles.
type pointObject struct {
	p geo.Point
}

func obj(coords ...float64) pointObject {
	return pointObject{p: geo.NewPoint(coords...)}
}

func (o pointObject) Envelope() geo.Envelope {
	return geo.NewPointEnvelope(o.p)
}

func (o pointObject) DistanceSquared(p geo.Point) float64 {
	return o.p.DistanceSquared(p)
}

// rectObject is an Object with a genuine, non-degenerate envelope, used
// wherever a test needs to tell apart "intersects" from "fully covered
// by" (pointObject's zero-area envelope makes the two indistinguishable).
type rectObject struct {
	e geo.Envelope
}

func rect(minX, minY, maxX, maxY float64) rectObject {
	e, err := geo.NewEnvelope(geo.NewPoint(minX, minY), geo.NewPoint(maxX, maxY))
	if err != nil {
		panic(err)
	}
	return rectObject{e: e}
}

func (o rectObject) Envelope() geo.Envelope { return o.e }

func (o rectObject) DistanceSquared(p geo.Point) float64 {
	return o.e.DistanceSquared(p)
}

func mustParams(minSize, maxSize, reinsertionCount int) Parameters {
	p, err := NewParameters(minSize, maxSize, reinsertionCount)
	if err != nil {
		panic(err)
	}
	return p
}
