// Package rtree implements an in-memory, height-balanced R*-tree spatial
// index over arbitrary-dimensional objects.
//
// The package only knows how to store and retrieve values that satisfy
// Object; everything it needs to know about where an object sits in space
// comes from Envelope() and, for nearest-neighbor queries, DistanceSquared().
package rtree

import "github.com/tormol/rstartree/geo"

// Object is the trait stored objects must satisfy. Envelope is used by
// every insertion and query path; DistanceSquared is only needed by
// Nearest and KNearest.
type Object interface {
	Envelope() geo.Envelope
	DistanceSquared(p geo.Point) float64
}
