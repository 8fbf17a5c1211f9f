// Package geo implements the axis-aligned envelope and point arithmetic
// that the R*-tree insertion engine is built on. It generalizes the
// fixed <lat,long> rectangle math this package used to carry to an
// arbitrary, runtime-determined number of dimensions.
package geo

import (
	"encoding/json"
	"errors"
	"math"
)

// Point is a fixed-arity vector of float64 coordinates.
// The arity is determined by its length and must match across every
// Point and Envelope that interact with each other.
type Point []float64

// NewPoint returns a Point with the given coordinates.
func NewPoint(coords ...float64) Point {
	p := make(Point, len(coords))
	copy(p, coords)
	return p
}

// Dims returns the point's dimensionality.
func (p Point) Dims() int {
	return len(p)
}

// Sub returns a - b, panicking if the dimensionalities don't match.
func (a Point) Sub(b Point) Point {
	a.checkDims(b)
	out := make(Point, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// SquaredLength returns the squared Euclidean norm of the vector.
func (p Point) SquaredLength() float64 {
	var sum float64
	for _, c := range p {
		sum += c * c
	}
	return sum
}

// DistanceSquared returns the squared Euclidean distance between two points.
func (a Point) DistanceSquared(b Point) float64 {
	return a.Sub(b).SquaredLength()
}

func (a Point) checkDims(b Point) {
	if len(a) != len(b) {
		panic("geo: points have mismatched dimensionality")
	}
}

// MarshalJSON encodes the point as a plain array of coordinates.
func (p Point) MarshalJSON() ([]byte, error) {
	coords := []float64(p)
	if coords == nil {
		coords = []float64{}
	}
	return json.Marshal(coords)
}

// UnmarshalJSON decodes a point from a plain array of coordinates.
func (p *Point) UnmarshalJSON(b []byte) error {
	var s []float64
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if len(s) == 0 {
		return errors.New("geo: point must have at least one dimension")
	}
	*p = s
	return nil
}

// legalCoord rejects NaN and infinite coordinates, which would otherwise
// corrupt every downstream area/margin computation.
func legalCoord(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0)
}
