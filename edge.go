package facet

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Edge joins two vertex indices along a face boundary, traversed from A
// to B. Identity queries treat the two traversal directions as the same
// edge.
type Edge struct {
	A, B int
}

// Reverse returns the edge traversed the other way.
func (e Edge) Reverse() Edge { return Edge{e.B, e.A} }

// Equal reports whether both edges join the same two vertices, in either
// direction.
func (e Edge) Equal(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Compare relates the edges directionally: +1 when other runs the same
// way, -1 when it runs reversed, 0 when the edges join different vertices.
func (e Edge) Compare(other Edge) int {
	switch {
	case e.A == other.A && e.B == other.B:
		return 1
	case e.A == other.B && e.B == other.A:
		return -1
	}
	return 0
}

// Vec returns the vector from A to B under the given point store.
func (e Edge) Vec(points []mgl64.Vec3) mgl64.Vec3 {
	return points[e.B].Sub(points[e.A])
}

// Mag returns the edge length under the given point store.
func (e Edge) Mag(points []mgl64.Vec3) float64 {
	return e.Vec(points).Len()
}

// Edges returns the boundary edges in traversal order, one per vertex,
// edge i running from vertex i to its successor.
func (f Face) Edges() []Edge {
	e := make([]Edge, len(f))
	for i, vi := range f {
		e[i] = Edge{vi, f.NextLabel(i)}
	}
	return e
}

// EdgeDirection reports how e lies on the face boundary: +1 when the
// boundary traverses it from A to B, -1 when from B to A, 0 when the face
// does not contain the edge.
func (f Face) EdgeDirection(e Edge) int {
	for i, vi := range f {
		if vi == e.A {
			if f.PrevLabel(i) == e.B {
				return -1
			}
			if f.NextLabel(i) == e.B {
				return 1
			}
			return 0
		}
		if vi == e.B {
			if f.PrevLabel(i) == e.A {
				return 1
			}
			if f.NextLabel(i) == e.A {
				return -1
			}
			return 0
		}
	}
	return 0
}

// LongestEdge returns the boundary position of the longest edge of f, or
// -1 for an empty face. Ties keep the earliest edge.
func LongestEdge(f Face, points []mgl64.Vec3) int {
	best := -1
	bestLen := -1.0
	for i, e := range f.Edges() {
		if l := e.Mag(points); l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}
