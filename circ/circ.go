// Package circ provides index arithmetic on circular sequences, plus a
// cursor that walks such a sequence and notices when it has come all the
// way around.
package circ

// Next returns the index after i in a circular sequence of size n.
// n must be at least 1; for n == 1 the only successor of 0 is 0.
func Next(i, n int) int {
	if i == n-1 {
		return 0
	}
	return i + 1
}

// Prev returns the index before i in a circular sequence of size n.
// n must be at least 1; for n == 1 the only predecessor of 0 is 0.
func Prev(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// A Cursor is a position on a circular sequence of n indices together with
// a fulcrum, the anchor used to detect completion of a full cycle. The
// cursor only deals in indices; it never touches the sequence itself.
//
// The zero Cursor is not useful, construct with NewCursor.
type Cursor struct {
	n       int
	pos     int
	fulcrum int
}

// NewCursor returns a cursor over n indices, positioned on its fulcrum
// at index 0. n must be at least 1.
func NewCursor(n int) Cursor {
	return Cursor{n: n}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Size returns the number of indices in the cycle.
func (c *Cursor) Size() int { return c.n }

// Advance moves one step forward and reports whether the cursor is still
// away from its fulcrum, that is, whether the cycle has not yet closed.
func (c *Cursor) Advance() bool {
	c.pos = Next(c.pos, c.n)
	return c.pos != c.fulcrum
}

// Retreat moves one step backward and reports whether the cursor is still
// away from its fulcrum.
func (c *Cursor) Retreat() bool {
	c.pos = Prev(c.pos, c.n)
	return c.pos != c.fulcrum
}

// OffFulcrum reports whether the cursor is away from its fulcrum without
// moving it. After a walk it tells "stopped early" apart from "came all
// the way around".
func (c *Cursor) OffFulcrum() bool { return c.pos != c.fulcrum }

// Rebase anchors cycle detection at the current position. Subsequent walks
// measure their cycle from here.
func (c *Cursor) Rebase() { c.fulcrum = c.pos }

// Reset moves the cursor back onto its fulcrum.
func (c *Cursor) Reset() { c.pos = c.fulcrum }
