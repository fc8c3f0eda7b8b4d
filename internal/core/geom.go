// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a one-dimensional interval [Lo, Hi].
type Span struct {
	Lo, Hi int
}

// SpanAround returns the interval of the given radius centred on c.
func SpanAround(c, radius int) Span {
	return Span{Lo: c - radius, Hi: c + radius}
}

// Overlaps reports whether the spans share interior points.
// Spans that only touch at an endpoint do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Hi > o.Lo && s.Lo < o.Hi
}

// Within reports whether s lies entirely inside o, endpoints included.
func (s Span) Within(o Span) bool {
	return s.Lo >= o.Lo && s.Hi <= o.Hi
}

// Scale maps v from a range of size from onto a range of size to,
// rounding towards negative infinity.
func Scale(v, from, to int) int {
	if from == 0 {
		return 0
	}
	n := v * to
	q := n / from
	if (n%from != 0) && ((n < 0) != (from < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
