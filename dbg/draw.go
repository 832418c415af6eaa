// Package dbg renders faces and their decompositions to PNG images, for
// eyeballing winding, concavity and chord choices while debugging mesh
// geometry.
package dbg

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/polykit/facet"
)

// padding is the canvas margin around the drawing, in pixels.
const padding = 16

// getTangentBasis returns two unit tangents spanning the plane orthogonal
// to normal, seeded from the world axis least aligned with it.
func getTangentBasis(normal mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	var tangent1 mgl64.Vec3
	if math.Abs(normal.X()) > 0.9 {
		tangent1 = mgl64.Vec3{0, 1, 0}
	} else {
		tangent1 = mgl64.Vec3{1, 0, 0}
	}

	tangent1 = tangent1.Sub(normal.Mul(tangent1.Dot(normal))).Normalize()
	tangent2 := normal.Cross(tangent1).Normalize()

	return tangent1, tangent2
}

// projector flattens face points onto the drawing plane through the face
// centroid.
type projector struct {
	origin mgl64.Vec3
	u, v   mgl64.Vec3
}

func newProjector(f facet.Face, points []mgl64.Vec3) projector {
	normal := f.Normal(points)
	if vec3Zero(normal) {
		// Degenerate face; any plane shows its collapsed outline.
		normal = mgl64.Vec3{0, 0, 1}
	}

	p := projector{origin: f.Centroid(points)}
	p.u, p.v = getTangentBasis(normal)
	return p
}

func (pr projector) uv(p mgl64.Vec3) (float64, float64) {
	d := p.Sub(pr.origin)
	return d.Dot(pr.u), d.Dot(pr.v)
}

func vec3Zero(v mgl64.Vec3) bool {
	return v.X() == 0 && v.Y() == 0 && v.Z() == 0
}

// DrawFace renders the face outline, filled, and saves it as a PNG at
// path. scale converts model units to pixels.
func DrawFace(path string, f facet.Face, points []mgl64.Vec3, scale float64) error {
	return DrawSplit(path, f, points, nil, nil, scale)
}

// DrawSplit renders the face outline with every decomposed sub-shape
// stroked on top of it, triangles and quads in separate colours, so the
// decomposer's chord choices are visible. Either sub-shape slice may be
// nil. scale converts model units to pixels.
func DrawSplit(path string, f facet.Face, points []mgl64.Vec3, tris, quads []facet.Face, scale float64) error {
	if len(f) < 3 {
		return fmt.Errorf("dbg: face of %d vertices has no outline to draw", len(f))
	}
	if scale <= 0 {
		return fmt.Errorf("dbg: scale %v is not positive", scale)
	}

	pr := newProjector(f, points)

	minU, minV := math.Inf(1), math.Inf(1)
	maxU, maxV := math.Inf(-1), math.Inf(-1)
	for _, vi := range f {
		u, v := pr.uv(points[vi])
		minU = math.Min(minU, u)
		minV = math.Min(minV, v)
		maxU = math.Max(maxU, u)
		maxV = math.Max(maxV, v)
	}

	width := int(scale*(maxU-minU)) + padding*2
	height := int(scale*(maxV-minV)) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the v axis grows upward, then map the projected
	// bounds onto the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minU, -minV)

	trace := func(shape facet.Face) {
		u, v := pr.uv(points[shape[0]])
		c.MoveTo(u, v)
		for _, vi := range shape[1:] {
			u, v = pr.uv(points[vi])
			c.LineTo(u, v)
		}
		c.ClosePath()
	}

	c.SetLineWidth(3)
	trace(f)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetLineWidth(1)
	if len(tris) > 0 {
		for _, s := range tris {
			trace(s)
		}
		c.SetRGB(1, 0.6, 0)
		c.Stroke()
	}
	if len(quads) > 0 {
		for _, s := range quads {
			trace(s)
		}
		c.SetRGB(1, 0, 1)
		c.Stroke()
	}

	return c.SavePNG(path)
}
