package graph

import "fmt"

// ErrSharedSide indicates a boundary side owned by more than two
// polygons, which no planar map can produce.
type ErrSharedSide struct {
	Owners int
}

func (e *ErrSharedSide) Error() string {
	return fmt.Sprintf("one boundary side maps to %d polygons, expected at most 2", e.Owners)
}

// ErrCannotColor indicates a vertex left with no legal color after all
// repair moves were exhausted.
type ErrCannotColor struct {
	Vertex int
}

func (e *ErrCannotColor) Error() string {
	return fmt.Sprintf("no legal color for vertex %d", e.Vertex)
}
