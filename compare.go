package facet

import (
	"github.com/polykit/facet/circ"
)

// Compare relates two faces as circular vertex sequences: +1 when they
// describe the same cycle with the same winding, -1 when the same cycle
// with opposite winding, 0 when they differ. The starting offset never
// matters. Faces of different size, or of size zero, never match.
//
// Alignment anchors on b's first occurrence of a's starting vertex, so
// faces with repeated vertex indices can mis-align and compare 0 even
// when some other rotation would match.
func Compare(a, b Face) int {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	if len(a) == 1 {
		if a[0] == b[0] {
			return 1
		}
		return 0
	}

	aCur := circ.NewCursor(len(a))
	bCur := circ.NewCursor(len(b))

	// Rotate b until it lines up with a's first vertex.
	for {
		if a[aCur.Pos()] == b[bCur.Pos()] {
			bCur.Rebase()
			aCur.Advance()
			bCur.Advance()
			break
		}
		if !bCur.Advance() {
			break
		}
	}

	// b came all the way around without finding a's start.
	if !bCur.OffFulcrum() {
		return 0
	}

	// Walk both forward in lock step.
	for {
		if a[aCur.Pos()] != b[bCur.Pos()] {
			break
		}
		aCur.Advance()
		if !bCur.Advance() {
			break
		}
	}
	if !aCur.OffFulcrum() {
		return 1
	}

	// Mismatch going forward; restart at the alignment and walk b
	// backward instead.
	aCur.Reset()
	bCur.Reset()
	aCur.Advance()
	bCur.Retreat()

	for {
		if a[aCur.Pos()] != b[bCur.Pos()] {
			break
		}
		aCur.Advance()
		if !bCur.Retreat() {
			break
		}
	}
	if !aCur.OffFulcrum() {
		return -1
	}

	return 0
}

// SameVertices reports whether the faces reference the same multiset of
// vertex indices, ignoring order and winding entirely.
func SameVertices(a, b Face) bool {
	if len(a) != len(b) {
		return false
	}

	for _, v := range a {
		aOcc := 0
		for _, w := range a {
			if w == v {
				aOcc++
			}
		}

		bOcc := 0
		for _, w := range b {
			if w == v {
				bOcc++
			}
		}

		if aOcc != bOcc {
			return false
		}
	}
	return true
}
