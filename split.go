package facet

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/polykit/facet/circ"
)

// SplitTarget selects the shapes a decomposition may produce.
type SplitTarget int

const (
	// TrianglesOnly cuts everything down to triangles.
	TrianglesOnly SplitTarget = iota
	// QuadsAllowed emits four-sided pieces as quads instead of cutting
	// them further.
	QuadsAllowed
)

// edgeDirections returns one unit vector per boundary edge, direction i
// running from vertex i to its successor. Degenerate edges produce finite
// near-zero directions rather than NaNs, so downstream angle estimates
// stay bounded even on collapsed geometry.
func (f Face) edgeDirections(points []mgl64.Vec3) []mgl64.Vec3 {
	dirs := make([]mgl64.Vec3, len(f))
	for i, vi := range f {
		v := points[f.NextLabel(i)].Sub(points[vi])
		dirs[i] = v.Mul(1 / (v.Len() + vanishing))
	}
	return dirs
}

// interiorAngle returns the interior angle at vertex i, in (0, 2*pi). The
// dot product of the edge directions entering and leaving the vertex gives
// the turn; the cross product tested against the face's area vector tells
// a reflex corner from a convex one.
func interiorAngle(dirs []mgl64.Vec3, areaVec mgl64.Vec3, i int) float64 {
	entering := dirs[circ.Prev(i, len(dirs))]
	leaving := dirs[i]

	turn := math.Acos(mgl64.Clamp(entering.Dot(leaving), -1, 1))

	if leaving.Cross(entering).Dot(areaVec) > 0 {
		// Reflex corner.
		return math.Pi + turn
	}
	return math.Pi - turn
}

// mostConcaveAngle returns the boundary position with the widest interior
// angle, and that angle. The earliest such position wins ties, so a square
// reports its first corner at pi/2. This seeds the decomposer's choice of
// where to cut.
func (f Face) mostConcaveAngle(points []mgl64.Vec3, dirs []mgl64.Vec3) (int, float64) {
	areaVec := f.Area(points)

	index := 0
	maxAngle := -math.MaxFloat64
	for i := range dirs {
		if angle := interiorAngle(dirs, areaVec, i); angle > maxAngle {
			maxAngle = angle
			index = i
		}
	}
	return index, maxAngle
}

// Split decomposes the face into triangles and, when the target allows,
// quads. With countOnly set, only the counters advance, so a caller can
// size its output storage; otherwise sub-faces are written to tris and
// quads at the counter positions, the counters acting as write cursors.
// Counting and materialising the same face advance the counters
// identically. The return value is the number of sub-shapes this call
// produced.
//
// A face of fewer than three vertices cannot be decomposed and indicates
// corrupted topology at the call site; Split panics on it.
func (f Face) Split(target SplitTarget, countOnly bool, points []mgl64.Vec3, nTri, nQuad *int, tris, quads []Face) int {
	before := *nTri + *nQuad

	switch {
	case len(f) < 3:
		panic(fmt.Sprintf("facet: cannot split a face of %d vertices", len(f)))

	case len(f) == 3:
		if countOnly {
			*nTri++
		} else {
			tris[*nTri] = append(Face(nil), f...)
			*nTri++
		}

	case len(f) == 4:
		f.splitQuad(target, countOnly, points, nTri, nQuad, tris, quads)

	default:
		f.bisect(target, countOnly, points, nTri, nQuad, tris, quads)
	}

	return *nTri + *nQuad - before
}

// splitQuad handles the four-vertex case: emit the quad whole when the
// target allows, otherwise cut the diagonal leaving the widest corner so
// a concave quad is split at its reflex vertex.
func (f Face) splitQuad(target SplitTarget, countOnly bool, points []mgl64.Vec3, nTri, nQuad *int, tris, quads []Face) {
	if target == QuadsAllowed {
		if countOnly {
			*nQuad++
		} else {
			quads[*nQuad] = append(Face(nil), f...)
			*nQuad++
		}
		return
	}

	if countOnly {
		*nTri += 2
		return
	}

	dirs := f.edgeDirections(points)
	start, _ := f.mostConcaveAngle(points, dirs)

	second := f.NextIndex(start)
	third := f.NextIndex(second)
	fourth := f.NextIndex(third)

	tris[*nTri] = Face{f[start], f[second], f[third]}
	*nTri++
	tris[*nTri] = Face{f[third], f[fourth], f[start]}
	*nTri++
}

// bisect handles faces of five or more vertices: choose the chord that
// most nearly bisects the widest interior angle, cut the face in two
// along it and recurse on the halves. Bisecting the worst corner keeps
// the cut from carving new reflex corners into the halves.
func (f Face) bisect(target SplitTarget, countOnly bool, points []mgl64.Vec3, nTri, nQuad *int, tris, quads []Face) {
	dirs := f.edgeDirections(points)
	start, maxAngle := f.mostConcaveAngle(points, dirs)

	// Candidate chord ends run from two vertices past start around to the
	// vertex before it, measured against the edge leaving start.
	bisectAngle := maxAngle / 2
	rightEdge := dirs[start]

	index := f.NextIndex(f.NextIndex(start))
	minIndex := index
	minDiff := math.Pi

	for i := 0; i < len(f)-3; i++ {
		chord := points[f[index]].Sub(points[f[start]])
		chord = chord.Mul(1 / (chord.Len() + vanishing))

		angle := math.Acos(mgl64.Clamp(chord.Dot(rightEdge), -1, 1))
		if diff := math.Abs(angle - bisectAngle); diff < minDiff {
			minDiff = diff
			minIndex = index
		}

		index = f.NextIndex(index)
	}

	// The chord start..minIndex cuts the boundary in two; both halves
	// keep the chord's endpoints, so each has at least three vertices.
	diff := minIndex - start
	if diff < 0 {
		diff += len(f)
	}

	half1 := make(Face, diff+1)
	index = start
	for i := range half1 {
		half1[i] = f[index]
		index = f.NextIndex(index)
	}

	half2 := make(Face, len(f)-diff+1)
	index = minIndex
	for i := range half2 {
		half2[i] = f[index]
		index = f.NextIndex(index)
	}

	half1.Split(target, countOnly, points, nTri, nQuad, tris, quads)
	half2.Split(target, countOnly, points, nTri, nQuad, tris, quads)
}

// Triangles decomposes the face into triangles, written to tris at the
// nTri write cursor, and returns how many were produced. Size the buffer
// with NumTriangles.
func (f Face) Triangles(points []mgl64.Vec3, nTri *int, tris []Face) int {
	quadI := 0
	return f.Split(TrianglesOnly, false, points, nTri, &quadI, tris, nil)
}

// NumTrianglesQuads counts the shapes a quad-allowing decomposition of the
// face would produce, advancing nTri and nQuad without writing anything.
func (f Face) NumTrianglesQuads(points []mgl64.Vec3, nTri, nQuad *int) int {
	return f.Split(QuadsAllowed, true, points, nTri, nQuad, nil, nil)
}

// TrianglesQuads decomposes the face into triangles and quads, written at
// the counter cursors. Size the buffers with NumTrianglesQuads.
func (f Face) TrianglesQuads(points []mgl64.Vec3, nTri, nQuad *int, tris, quads []Face) int {
	return f.Split(QuadsAllowed, false, points, nTri, nQuad, tris, quads)
}
