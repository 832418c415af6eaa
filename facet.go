// Package facet implements the polygonal face primitive of an unstructured
// simulation mesh: an ordered, circular sequence of vertex indices into an
// externally owned point store, together with the geometric quantities and
// shape decompositions a per-face solver loop needs.
//
// Faces may be non-planar and non-convex. All quantities beyond the plain
// triangle are computed over a triangle fan around an internal reference
// point, so independently decomposed copies of the same face agree with
// each other.
//
// The kernel holds no global state and never mutates the point store;
// functions that take points are safe for concurrent use on shared data.
package facet

import (
	"github.com/polykit/facet/circ"
)

// Face is an ordered, circular sequence of vertex indices describing the
// boundary of a polygonal mesh face. Traversal order defines orientation
// through the right-hand rule. The indices resolve against a point store
// owned by the caller, passed to every geometric operation; the kernel
// trusts them to be in range.
type Face []int

// NextIndex returns the position after i along the boundary.
func (f Face) NextIndex(i int) int { return circ.Next(i, len(f)) }

// PrevIndex returns the position before i along the boundary.
func (f Face) PrevIndex(i int) int { return circ.Prev(i, len(f)) }

// NextLabel returns the vertex index stored after position i.
func (f Face) NextLabel(i int) int { return f[f.NextIndex(i)] }

// PrevLabel returns the vertex index stored before position i.
func (f Face) PrevLabel(i int) int { return f[f.PrevIndex(i)] }

// NumTriangles returns the number of triangles any triangle decomposition
// of the face produces.
func (f Face) NumTriangles() int { return len(f) - 2 }

// Which returns the boundary position holding the vertex index global, or
// -1 when the face does not reference it.
func (f Face) Which(global int) int {
	for i, v := range f {
		if v == global {
			return i
		}
	}
	return -1
}

// Collapse squeezes out consecutive duplicate vertex indices in place,
// including a duplicate pair across the wrap-around, and returns the new
// size. Duplicates that are not neighbours on the boundary stay.
func (f *Face) Collapse() int {
	s := *f
	if len(s) > 1 {
		ci := 0
		for i := 1; i < len(s); i++ {
			if s[i] != s[ci] {
				ci++
				s[ci] = s[i]
			}
		}
		if s[ci] != s[0] {
			ci++
		}
		*f = s[:ci]
	}
	return len(*f)
}

// Flip reverses the winding in place. The vertex at position 0 stays
// first, so the face keeps its starting point while the boundary runs the
// other way.
func (f Face) Flip() {
	n := len(f)
	if n <= 2 {
		return
	}
	for i := 1; i < (n+1)/2; i++ {
		f[i], f[n-i] = f[n-i], f[i]
	}
}

// Reverse returns a copy of the face with the winding reversed, keeping
// the same starting vertex. The receiver is left untouched so both
// windings can be compared side by side.
func (f Face) Reverse() Face {
	out := make(Face, len(f))
	if len(f) == 0 {
		return out
	}
	out[0] = f[0]
	for i := 1; i < len(out); i++ {
		out[i] = f[len(f)-i]
	}
	return out
}
