package facet

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func translated(points []mgl64.Vec3, d mgl64.Vec3) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(points))
	for i, p := range points {
		out[i] = p.Add(d)
	}
	return out
}

func TestAreaTriangle(t *testing.T) {
	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}
	f := Face{0, 1, 2}

	if got, want := f.Area(points), (mgl64.Vec3{0, 0, 0.5}); !vec3Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got := f.Mag(points); !floatEqual(got, 0.5) {
		t.Errorf("Mag() = %v, want 0.5", got)
	}
	if got, want := f.Normal(points), (mgl64.Vec3{0, 0, 1}); !vec3Equal(got, want) {
		t.Errorf("Normal() = %v, want %v", got, want)
	}
	if got, want := f.Centroid(points), (mgl64.Vec3{1.0 / 3.0, 1.0 / 3.0, 0}); !vec3Equal(got, want) {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestAreaSquare(t *testing.T) {
	if got, want := unitSquare.Area(unitSquarePoints), (mgl64.Vec3{0, 0, 1}); !vec3Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got, want := unitSquare.Centroid(unitSquarePoints), (mgl64.Vec3{0.5, 0.5, 0}); !vec3Equal(got, want) {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestAreaLShape(t *testing.T) {
	if got, want := lShape.Area(lShapePoints), (mgl64.Vec3{0, 0, 3}); !vec3Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}

	// Two rectangles of area 2 and 1 with centres (1, 1/2) and (1/2, 3/2).
	want := mgl64.Vec3{5.0 / 6.0, 5.0 / 6.0, 0}
	if got := lShape.Centroid(lShapePoints); !vec3Equal(got, want) {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestCentroidIgnoresWinding(t *testing.T) {
	fwd := lShape.Centroid(lShapePoints)
	rev := lShape.Reverse().Centroid(lShapePoints)

	if !vec3Equal(fwd, rev) {
		t.Errorf("centroid moved under winding reversal: %v vs %v", fwd, rev)
	}
}

// The fan around the vertex average telescopes to half the sum of
// consecutive cross products, so even a non-planar face has a well-defined
// area vector.
func TestAreaNonPlanar(t *testing.T) {
	points := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 1}, // lifted out of plane
		{0, 1, 0},
	}
	f := Face{0, 1, 2, 3}

	var want mgl64.Vec3
	for i, vi := range f {
		want = want.Add(points[vi].Cross(points[f.NextLabel(i)]))
	}
	want = want.Mul(0.5)

	if got := f.Area(points); !vec3Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if got, want := f.Area(points), (mgl64.Vec3{-0.5, -0.5, 1}); !vec3Equal(got, want) {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestDegenerateFaceQuantities(t *testing.T) {
	p := mgl64.Vec3{1, 2, 3}
	points := []mgl64.Vec3{p, p, p, p}
	f := Face{0, 1, 2, 3}

	if got := f.Area(points); !vec3Equal(got, mgl64.Vec3{}) {
		t.Errorf("Area() = %v, want zero vector", got)
	}
	if got := f.Normal(points); !vec3Equal(got, mgl64.Vec3{}) {
		t.Errorf("Normal() = %v, want zero vector", got)
	}
	// With no usable area the centroid falls back to the vertex average.
	if got := f.Centroid(points); !vec3Equal(got, p) {
		t.Errorf("Centroid() = %v, want %v", got, p)
	}
}

func TestInertiaSquareAboutCentroid(t *testing.T) {
	got := unitSquare.Inertia(unitSquarePoints, mgl64.Vec3{0.5, 0.5, 0}, 1)

	// Unit plate: 1/12 about the in-plane axes, their sum about the
	// plate normal.
	want := mgl64.Mat3{
		1.0 / 12.0, 0, 0,
		0, 1.0 / 12.0, 0,
		0, 0, 1.0 / 6.0,
	}

	if !mat3Equal(got, want) {
		t.Errorf("Inertia() =\n%v\nwant\n%v", got, want)
	}
}

func TestInertiaSquareAboutCorner(t *testing.T) {
	got := unitSquare.Inertia(unitSquarePoints, mgl64.Vec3{}, 1)

	want := mgl64.Mat3{
		1.0 / 3.0, -1.0 / 4.0, 0,
		-1.0 / 4.0, 1.0 / 3.0, 0,
		0, 0, 2.0 / 3.0,
	}

	if !mat3Equal(got, want) {
		t.Errorf("Inertia() =\n%v\nwant\n%v", got, want)
	}
}

// Fanning around the centroid and cutting along a diagonal are different
// decompositions of the same region, so their inertia tensors must agree.
func TestInertiaDecompositionIndependent(t *testing.T) {
	ref := mgl64.Vec3{-1, 2, 0.5}

	whole := unitSquare.Inertia(unitSquarePoints, ref, 2)

	half1 := Face{0, 1, 2}.Inertia(unitSquarePoints, ref, 2)
	half2 := Face{2, 3, 0}.Inertia(unitSquarePoints, ref, 2)

	if !mat3Equal(whole, half1.Add(half2)) {
		t.Errorf("fan inertia\n%v\ndisagrees with diagonal split sum\n%v", whole, half1.Add(half2))
	}
}

func TestInertiaDensityScales(t *testing.T) {
	ref := mgl64.Vec3{0.1, 0.2, 0.3}

	once := lShape.Inertia(lShapePoints, ref, 1)
	thrice := lShape.Inertia(lShapePoints, ref, 3)

	if !mat3Equal(thrice, once.Mul(3)) {
		t.Errorf("density 3 inertia is not three times density 1")
	}
}

func TestSweptVolume(t *testing.T) {
	t.Run("static face sweeps exactly zero", func(t *testing.T) {
		if got := lShape.SweptVolume(lShapePoints, lShapePoints); got != 0 {
			t.Errorf("SweptVolume = %v, want exact 0", got)
		}
	})

	t.Run("normal translation sweeps area times distance", func(t *testing.T) {
		moved := translated(unitSquarePoints, mgl64.Vec3{0, 0, 2.5})
		if got := unitSquare.SweptVolume(unitSquarePoints, moved); !floatEqual(got, 2.5) {
			t.Errorf("SweptVolume = %v, want 2.5", got)
		}
	})

	t.Run("in-plane translation sweeps nothing", func(t *testing.T) {
		moved := translated(unitSquarePoints, mgl64.Vec3{4, -7, 0})
		if got := unitSquare.SweptVolume(unitSquarePoints, moved); !floatEqual(got, 0) {
			t.Errorf("SweptVolume = %v, want 0", got)
		}
	})

	t.Run("concave face translation", func(t *testing.T) {
		moved := translated(lShapePoints, mgl64.Vec3{0, 0, 1})
		if got := lShape.SweptVolume(lShapePoints, moved); !floatEqual(got, 3) {
			t.Errorf("SweptVolume = %v, want 3", got)
		}
	})

	t.Run("triangular face", func(t *testing.T) {
		points := []mgl64.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{0, 1, 0},
		}
		moved := translated(points, mgl64.Vec3{0, 0, 1})
		if got := (Face{0, 1, 2}).SweptVolume(points, moved); !floatEqual(got, 0.5) {
			t.Errorf("SweptVolume = %v, want 0.5", got)
		}
	})

	t.Run("reversed motion negates", func(t *testing.T) {
		moved := translated(lShapePoints, mgl64.Vec3{0.3, -1.2, 0.8})
		forward := lShape.SweptVolume(lShapePoints, moved)
		back := lShape.SweptVolume(moved, lShapePoints)
		if !floatEqual(forward, -back) {
			t.Errorf("forward %v and backward %v sweeps do not cancel", forward, back)
		}
	})

	t.Run("oblique translation projects onto the area vector", func(t *testing.T) {
		d := mgl64.Vec3{1.5, -0.5, 2}
		moved := translated(lShapePoints, d)
		got := lShape.SweptVolume(lShapePoints, moved)
		want := d.Dot(lShape.Area(lShapePoints))
		if !floatEqual(got, want) {
			t.Errorf("SweptVolume = %v, want %v", got, want)
		}
	})
}
