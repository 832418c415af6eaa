// Package tri provides the triangle primitive the face kernel reduces to:
// the leaf shape for area, inertia and swept-volume computations.
package tri

import (
	"github.com/go-gl/mathgl/mgl64"
)

// degenerateArea is the area magnitude below which a triangle has no
// meaningful normal direction.
const degenerateArea = 1e-300

// Tri is a triangle in 3D space given by its three corner points in
// winding order. The right-hand rule over A, B, C gives its orientation.
type Tri struct {
	A, B, C mgl64.Vec3
}

// Centroid returns the centre of area, the arithmetic mean of the corners.
func (t Tri) Centroid() mgl64.Vec3 {
	return t.A.Add(t.B).Add(t.C).Mul(1.0 / 3.0)
}

// Area returns the vector area: half the cross product of the two edges
// leaving A. Its magnitude is the triangle's area and its direction the
// normal implied by the winding.
func (t Tri) Area() mgl64.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Mul(0.5)
}

// Mag returns the scalar area.
func (t Tri) Mag() float64 {
	return t.Area().Len()
}

// Normal returns the unit normal. A degenerate triangle has no direction
// and yields the zero vector rather than NaNs.
func (t Tri) Normal() mgl64.Vec3 {
	a := t.Area()
	mag := a.Len()
	if mag < degenerateArea {
		return mgl64.Vec3{}
	}
	return a.Mul(1 / mag)
}

// SweptVolume returns the signed volume swept in moving the triangle onto
// to, whose corners must describe the same vertices after the motion. The
// prism-like solid between the two configurations is cut into three
// tetrahedra and their signed volumes summed, so motion along the normal
// sweeps positive volume and an unmoved triangle sweeps exactly zero.
func (t Tri) SweptVolume(to Tri) float64 {
	v := to.A.Sub(t.A).Dot(t.B.Sub(t.A).Cross(t.C.Sub(t.A)))
	v += to.B.Sub(t.B).Dot(t.C.Sub(t.B).Cross(to.A.Sub(t.B)))
	v += to.C.Sub(t.C).Dot(to.A.Sub(t.C).Cross(to.B.Sub(t.C)))
	return v / 6.0
}

// Inertia returns the inertia tensor of the triangle about the point ref,
// treating it as a thin plate of uniform surface density.
func (t Tri) Inertia(ref mgl64.Vec3, density float64) mgl64.Mat3 {
	aRel := t.A.Sub(ref)
	bRel := t.B.Sub(ref)
	cRel := t.C.Sub(ref)

	v := mgl64.Mat3FromRows(aRel, bRel, cRel)

	twoA := bRel.Sub(aRel).Cross(cRel.Sub(aRel)).Len()

	s := aRel.Add(bRel).Add(cRel)
	sumSq := aRel.Dot(aRel) + bRel.Dot(bRel) + cRel.Dot(cRel) + s.Dot(s)

	// Second-moment weights of a linear triangle, symmetric so the
	// storage order of Mat3 does not matter.
	w := mgl64.Mat3{
		2.0 / 24.0, 1.0 / 24.0, 1.0 / 24.0,
		1.0 / 24.0, 2.0 / 24.0, 1.0 / 24.0,
		1.0 / 24.0, 1.0 / 24.0, 2.0 / 24.0,
	}

	j := mgl64.Ident3().Mul(twoA / 24.0 * sumSq)
	j = j.Sub(v.Transpose().Mul3(w).Mul3(v).Mul(twoA))

	return j.Mul(density)
}
