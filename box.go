package facet

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is an axis-aligned bounding box around face points, used by mesh
// search code to cull faces before exact geometry tests.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Contains reports whether point lies inside the box, boundary included.
func (b Box) Contains(point mgl64.Vec3) bool {
	return point.X() >= b.Min.X() && point.X() <= b.Max.X() &&
		point.Y() >= b.Min.Y() && point.Y() <= b.Max.Y() &&
		point.Z() >= b.Min.Z() && point.Z() <= b.Max.Z()
}

// Overlaps reports whether the boxes overlap on all three axes.
func (b Box) Overlaps(other Box) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}

// Bounds returns the axis-aligned bounding box of the face's vertices
// under the given point store. An empty face yields an inverted box that
// contains nothing.
func (f Face) Bounds(points []mgl64.Vec3) Box {
	b := Box{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
	for _, vi := range f {
		p := points[vi]
		for c := 0; c < 3; c++ {
			b.Min[c] = math.Min(b.Min[c], p[c])
			b.Max[c] = math.Max(b.Max[c], p[c])
		}
	}
	return b
}
