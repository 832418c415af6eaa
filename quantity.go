package facet

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/polykit/facet/tri"
)

// vanishing guards divisions by geometric magnitudes: any edge length or
// area of physically meaningful size dominates it, while true zeros stay
// clear of producing NaN or Inf.
const vanishing = 1e-300

// unit returns v scaled to unit length, or the zero vector when v has no
// usable direction.
func unit(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < vanishing {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// asTri reads the face's first three vertices as a triangle primitive.
// Only meaningful when the face is a triangle.
func (f Face) asTri(points []mgl64.Vec3) tri.Tri {
	return tri.Tri{A: points[f[0]], B: points[f[1]], C: points[f[2]]}
}

// vertexAverage returns the unweighted mean of the face's points: the
// provisional fan apex used by the quantity computations.
func (f Face) vertexAverage(points []mgl64.Vec3) mgl64.Vec3 {
	var avg mgl64.Vec3
	for _, vi := range f {
		avg = avg.Add(points[vi])
	}
	return avg.Mul(1 / float64(len(f)))
}

// Area returns the face's vector area: magnitude the enclosed area,
// direction the normal given by the winding under the right-hand rule.
// Faces beyond triangles are fanned from the vertex average; the sum
// telescopes, so the result does not depend on the apex choice and stays
// meaningful for non-planar faces.
func (f Face) Area(points []mgl64.Vec3) mgl64.Vec3 {
	if len(f) == 3 {
		return f.asTri(points).Area()
	}

	pAvg := f.vertexAverage(points)

	var sumA mgl64.Vec3
	for i, vi := range f {
		p := points[vi]
		pNext := points[f.NextLabel(i)]
		sumA = sumA.Add(pNext.Sub(p).Cross(pAvg.Sub(p)))
	}
	return sumA.Mul(0.5)
}

// Normal returns the unit normal of the face. A face with vanishing area
// has no reliable direction and yields the zero vector.
func (f Face) Normal(points []mgl64.Vec3) mgl64.Vec3 {
	return unit(f.Area(points))
}

// Mag returns the face's scalar area.
func (f Face) Mag(points []mgl64.Vec3) float64 {
	return f.Area(points).Len()
}

// Centroid returns the centre of area of the face. Faces beyond triangles
// fan from the vertex average, each fan triangle's centre weighted by its
// area projected onto the face normal; the signed weights keep the result
// independent of the apex even when the face is non-planar or non-convex.
// Faces whose projected area vanishes fall back to the vertex average.
func (f Face) Centroid(points []mgl64.Vec3) mgl64.Vec3 {
	if len(f) == 3 {
		return f.asTri(points).Centroid()
	}

	pAvg := f.vertexAverage(points)

	var sumA mgl64.Vec3
	for i, vi := range f {
		p := points[vi]
		pNext := points[f.NextLabel(i)]
		sumA = sumA.Add(pNext.Sub(p).Cross(pAvg.Sub(p)))
	}
	sumAHat := unit(sumA)

	sumAn := 0.0
	var sumAnc mgl64.Vec3
	for i, vi := range f {
		p := points[vi]
		pNext := points[f.NextLabel(i)]

		a := pNext.Sub(p).Cross(pAvg.Sub(p))
		c := p.Add(pNext).Add(pAvg)

		an := a.Dot(sumAHat)
		sumAn += an
		sumAnc = sumAnc.Add(c.Mul(an))
	}

	if sumAn > vanishing {
		return sumAnc.Mul(1.0 / 3.0 / sumAn)
	}
	// Degenerate face; the unweighted average is the best estimate left.
	return pAvg
}

// Inertia returns the inertia tensor of the face about the point ref,
// treating the face as a thin shell of uniform surface density. Faces
// beyond triangles are fanned around their centroid and the fan triangles'
// tensors summed.
func (f Face) Inertia(points []mgl64.Vec3, ref mgl64.Vec3, density float64) mgl64.Mat3 {
	if len(f) == 3 {
		return f.asTri(points).Inertia(ref, density)
	}

	ctr := f.Centroid(points)

	var j mgl64.Mat3
	for i, vi := range f {
		t := tri.Tri{A: points[vi], B: points[f.NextLabel(i)], C: ctr}
		j = j.Add(t.Inertia(ref, density))
	}
	return j
}

// SweptVolume returns the signed volume swept by the face moving from the
// old point configuration to the new one. Each configuration is fanned
// around its own centroid, the apex taking the last corner of every fan
// triangle, and the corresponding triangle pairs' swept volumes summed.
// Triangular faces take the same fan path so that shared points move
// consistently across faces of mixed cell shapes.
func (f Face) SweptVolume(oldPoints, newPoints []mgl64.Vec3) float64 {
	ctrOld := f.Centroid(oldPoints)
	ctrNew := f.Centroid(newPoints)

	sv := 0.0
	for i, vi := range f {
		next := f.NextLabel(i)

		from := tri.Tri{A: oldPoints[vi], B: oldPoints[next], C: ctrOld}
		to := tri.Tri{A: newPoints[vi], B: newPoints[next], C: ctrNew}
		sv += from.SweptVolume(to)
	}
	return sv
}
