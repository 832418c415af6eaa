// Command splitdemo walks a few faces through the kernel: quantities,
// decomposition into triangles and quads, topological comparison and the
// PNG debug renderer.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/polykit/facet"
	"github.com/polykit/facet/dbg"
)

func main() {
	// One shared point store, as a mesh would hold it. The first four
	// points make a unit square, the next six an L-shaped face with a
	// reflex corner, the last four a non-planar quad.
	points := []mgl64.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},

		{3, 0, 0}, {5, 0, 0}, {5, 1, 0}, {4, 1, 0}, {4, 2, 0}, {3, 2, 0},

		{0, 3, 0}, {1, 3, 0}, {1, 4, 0.5}, {0, 4, 0},
	}

	square := facet.Face{0, 1, 2, 3}
	lShape := facet.Face{4, 5, 6, 7, 8, 9}
	twisted := facet.Face{10, 11, 12, 13}

	fmt.Println("=== Quantities ===")
	for _, f := range []struct {
		name string
		face facet.Face
	}{
		{"square", square},
		{"l-shape", lShape},
		{"twisted quad", twisted},
	} {
		fmt.Printf("%-12s area=%6.3f  normal=%v  centroid=%v\n",
			f.name, f.face.Mag(points), f.face.Normal(points), f.face.Centroid(points))
	}

	fmt.Println("\n=== Inertia of the square about its centroid ===")
	inertia := square.Inertia(points, square.Centroid(points), 1)
	for row := 0; row < 3; row++ {
		fmt.Printf("  [%8.5f %8.5f %8.5f]\n", inertia.At(row, 0), inertia.At(row, 1), inertia.At(row, 2))
	}

	// Decompose the L-shape twice: once all the way to triangles, once
	// keeping quads. Both runs count first to size their buffers.
	fmt.Println("\n=== Decomposing the l-shape ===")

	nTri := 0
	tris := make([]facet.Face, lShape.NumTriangles())
	lShape.Triangles(points, &nTri, tris)
	fmt.Printf("triangles only: %v\n", tris)

	nTri = 0
	nQuad := 0
	lShape.NumTrianglesQuads(points, &nTri, &nQuad)
	fmt.Printf("quads allowed: %d triangle(s), %d quad(s)\n", nTri, nQuad)

	mixedTris := make([]facet.Face, nTri)
	quads := make([]facet.Face, nQuad)
	nTri, nQuad = 0, 0
	lShape.TrianglesQuads(points, &nTri, &nQuad, mixedTris, quads)
	fmt.Printf("  triangles: %v\n  quads:     %v\n", mixedTris, quads)

	fmt.Println("\n=== Swept volume, l-shape extruded one unit along z ===")
	lifted := make([]mgl64.Vec3, len(points))
	copy(lifted, points)
	for i := range lifted {
		lifted[i] = lifted[i].Add(mgl64.Vec3{0, 0, 1})
	}
	fmt.Printf("swept volume %.3f, face area %.3f\n",
		lShape.SweptVolume(points, lifted), lShape.Mag(points))

	fmt.Println("\n=== Comparing windings ===")
	rotated := facet.Face{6, 7, 8, 9, 4, 5}
	fmt.Printf("rotated copy:  %d\n", facet.Compare(lShape, rotated))
	fmt.Printf("reversed copy: %d\n", facet.Compare(lShape, lShape.Reverse()))
	fmt.Printf("square vs l:   %d\n", facet.Compare(lShape, square))

	fmt.Println("\n=== Rendering ===")
	report := func(path string, err error) {
		if err != nil {
			fmt.Printf("render %s failed: %v\n", path, err)
			return
		}
		fmt.Printf("wrote %s\n", path)
	}
	report("l_triangles.png", dbg.DrawSplit("l_triangles.png", lShape, points, tris, nil, 80))
	report("l_quads.png", dbg.DrawSplit("l_quads.png", lShape, points, mixedTris, quads, 80))
	report("twisted.png", dbg.DrawFace("twisted.png", twisted, points, 80))
}
