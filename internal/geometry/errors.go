package geometry

import "fmt"

// ErrOpenRing indicates a boundary whose first and last vertex differ,
// or one with too few vertices to close.
type ErrOpenRing struct {
	Points int
	First  Point
	Last   Point
}

func (e *ErrOpenRing) Error() string {
	if e.Points < 2 {
		return fmt.Sprintf("boundary has %d points, cannot close", e.Points)
	}
	return fmt.Sprintf("boundary is not closed: first %v,%v != last %v,%v",
		e.First.X, e.First.Y, e.Last.X, e.Last.Y)
}

// ErrDegenerateSide indicates a boundary segment that connects a vertex
// to itself.
type ErrDegenerateSide struct {
	At Point
}

func (e *ErrDegenerateSide) Error() string {
	return fmt.Sprintf("side connects vertex %v,%v to itself", e.At.X, e.At.Y)
}

// ErrNetOrientation indicates a directed side counted more than once in
// the same direction, which means inner and outer boundaries curl the
// same way.
type ErrNetOrientation struct {
	Side Side
	Net  int
}

func (e *ErrNetOrientation) Error() string {
	return fmt.Sprintf("net orientation %d of side %v-%v out of range; inner and outer boundaries may curl in the same direction",
		e.Net, e.Side.A, e.Side.B)
}
