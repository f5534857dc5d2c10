// Package grid maps points, paths, and regions in the lon/lat plane
// onto the cells of a scalable rectangular mesh covering the earth.
//
// At mesh scale s the 360 degrees of longitude divide into 2^s columns
// and the 180 degrees of latitude into 2^s rows, so each increase of
// the scale by one quarters every cell.
package grid

// Cell is one rectangle of the mesh at a given scale, identified by the
// integer indices of its southwest corner.
type Cell struct {
	X     int
	Y     int
	Scale int
}

// Width returns the east-west extent, in degrees, of a cell at scale.
func Width(scale int) float64 {
	return 360 / float64(int64(1)<<uint(scale))
}

// Height returns the north-south extent, in degrees, of a cell at scale.
func Height(scale int) float64 {
	return 180 / float64(int64(1)<<uint(scale))
}

// point returns the cell corner or interior point at the given offset,
// where offset 0 is the southwest corner, 1 the northeast corner, and
// 0.5 the center.
func (c Cell) point(offset float64) (float64, float64) {
	return (float64(c.X) + offset) * Width(c.Scale),
		(float64(c.Y) + offset) * Height(c.Scale)
}

// Center returns the cell's center point.
func (c Cell) Center() (float64, float64) {
	return c.point(0.5)
}

// SW returns the southwest corner.
func (c Cell) SW() (float64, float64) {
	return c.point(0)
}

// NE returns the northeast corner.
func (c Cell) NE() (float64, float64) {
	return c.point(1)
}

// corners returns the cell corners in NW, NE, SE, SW order. The
// pass-through test depends on this ordering.
func (c Cell) corners() [4][2]float64 {
	x, y := c.SW()
	xx, yy := c.NE()
	return [4][2]float64{{x, yy}, {xx, yy}, {xx, y}, {x, y}}
}

// neighbors returns the 8 cells surrounding c.
func (c Cell) neighbors() []Cell {
	out := make([]Cell, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Cell{X: c.X + dx, Y: c.Y + dy, Scale: c.Scale})
		}
	}
	return out
}

// Set is a set of cells.
type Set map[Cell]struct{}

// NewSet builds a set from the given cells.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c into the set.
func (s Set) Add(c Cell) {
	s[c] = struct{}{}
}

// Union inserts every cell of o into the set.
func (s Set) Union(o Set) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Subtract removes from the set every cell present in remove but absent
// from keep. The index builder uses this to carve hole interiors out of
// a polygon's coverage while keeping the hole's rim.
func (s Set) Subtract(remove, keep Set) {
	for c := range remove {
		if _, kept := keep[c]; !kept {
			delete(s, c)
		}
	}
}

// Clone returns a shallow copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}
