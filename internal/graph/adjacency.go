package graph

import (
	"math"

	"github.com/beetlebugorg/kmlmesh/internal/geometry"
	"github.com/beetlebugorg/kmlmesh/internal/grid"
)

// sideKey is a canonical, direction-free key for a boundary segment.
type sideKey struct {
	AX, AY, BX, BY float64
}

func keyOfSide(s geometry.Side) sideKey {
	a, b := s.A, s.B
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}
	return sideKey{AX: a.X, AY: a.Y, BX: b.X, BY: b.Y}
}

// Seamless returns the adjacency graph on the premise that two polygons
// are adjacent if and only if they share a boundary side exactly. Holds
// for well-built maps with no gaps or overlaps between features.
func Seamless(shapes []*geometry.Polygon) (*Graph, error) {
	g := New(len(shapes))

	// Map each side to the set of polygons that have it on a boundary.
	sideToShapes := map[sideKey]map[int]struct{}{}
	for i, shape := range shapes {
		for _, side := range shape.Sides() {
			key := keyOfSide(side)
			if sideToShapes[key] == nil {
				sideToShapes[key] = map[int]struct{}{}
			}
			sideToShapes[key][i] = struct{}{}
		}
	}

	for _, owners := range sideToShapes {
		switch len(owners) {
		case 1:
			continue
		case 2:
			pair := make([]int, 0, 2)
			for i := range owners {
				pair = append(pair, i)
			}
			g.AddEdge(pair[0], pair[1])
		default:
			return nil, &ErrSharedSide{Owners: len(owners)}
		}
	}
	return g, nil
}

// Fuzzy identifies adjacencies Seamless cannot see. Some maps do not
// fit together seamlessly (mismatched vertices along shared borders),
// so instead of comparing sides exactly, probe points are placed just
// off either flank of every side that survived net-boundary
// cancellation, and point-in-polygon tests decide which polygons face
// each other across it.
func Fuzzy(shapes []*geometry.Polygon, probeFactor float64, scale int) (*Graph, error) {
	// Isolate the non-seamless boundaries. Inner boundaries reverse so
	// their curl cancels against the outers of enclosed neighbors.
	var boundaries [][]geometry.Point
	for _, shape := range shapes {
		for _, outer := range shape.Outers {
			boundaries = append(boundaries, outer.Points)
		}
		for _, inner := range shape.Inners {
			boundaries = append(boundaries, reversed(inner.Points))
		}
	}
	stoked, err := geometry.NetBoundaries(boundaries)
	if err != nil {
		return nil, err
	}
	if len(stoked) == 0 {
		return New(len(shapes)), nil
	}

	// Probe points sit off each side's midpoint at half the shortest
	// surviving side length, divided by the probe factor.
	minDist2 := math.Inf(1)
	for _, boundary := range stoked {
		for i := 1; i < len(boundary); i++ {
			if d := geometry.Dist2(boundary[i-1], boundary[i]); d < minDist2 {
				minDist2 = d
			}
		}
	}
	probeRadius := math.Sqrt(minDist2) / 2 / probeFactor

	// Map mesh cells to the polygons intersecting them so each probe
	// point only tests nearby candidates.
	cellToShapes := map[grid.Cell][]*geometry.Polygon{}
	for _, shape := range shapes {
		cells, err := coverCells(shape, scale)
		if err != nil {
			return nil, err
		}
		for c := range cells {
			cellToShapes[c] = append(cellToShapes[c], shape)
		}
	}

	g := New(len(shapes))
	for _, boundary := range stoked {
		for i := 1; i < len(boundary); i++ {
			side := geometry.Side{A: boundary[i-1], B: boundary[i]}
			p1, p2 := probePoints(side, probeRadius)

			in1 := containing(p1, cellToShapes, scale)
			in2 := containing(p2, cellToShapes, scale)
			for idx := range in1 {
				if _, both := in2[idx]; both {
					delete(in1, idx)
					delete(in2, idx)
				}
			}
			for a := range in1 {
				for b := range in2 {
					g.AddEdge(a, b)
				}
			}
		}
	}
	return g, nil
}

// containing returns the indices of the polygons that contain the
// point, limited to the polygons sharing the point's mesh cell.
func containing(p geometry.Point, cellToShapes map[grid.Cell][]*geometry.Polygon, scale int) map[int]struct{} {
	out := map[int]struct{}{}
	for _, shape := range cellToShapes[grid.CellAt(p, scale)] {
		if shape.Contains(p) {
			out[shape.Index] = struct{}{}
		}
	}
	return out
}

// coverCells computes the mesh cells a polygon occupies: the fill of
// each outer boundary minus the strict interior of each hole.
func coverCells(shape *geometry.Polygon, scale int) (grid.Set, error) {
	cells := grid.Set{}
	for _, outer := range shape.Outers {
		fill, err := grid.CellsFillingRegion(outer.Points, scale, nil)
		if err != nil {
			return nil, err
		}
		cells.Union(fill)
	}
	for _, inner := range shape.Inners {
		rim := grid.CellsAlongPath(inner.Points, scale)
		fill, err := grid.CellsFillingRegion(inner.Points, scale, rim)
		if err != nil {
			return nil, err
		}
		cells.Subtract(fill, rim)
	}
	return cells, nil
}

// probePoints returns two points offset from the side's midpoint,
// perpendicular to it, one on each flank.
func probePoints(side geometry.Side, radius float64) (geometry.Point, geometry.Point) {
	x1, y1 := side.A.X, side.A.Y
	x2, y2 := side.B.X, side.B.Y
	xm, ym := (x1+x2)/2, (y1+y2)/2

	switch {
	case x1 == x2: // side runs north-south
		return geometry.Point{X: xm - radius, Y: ym}, geometry.Point{X: xm + radius, Y: ym}
	case y1 == y2: // side runs east-west
		return geometry.Point{X: xm, Y: ym - radius}, geometry.Point{X: xm, Y: ym + radius}
	default:
		m := (x1 - x2) / (y2 - y1) // slope of the perpendicular
		x := radius / math.Sqrt(1+m*m)
		return geometry.Point{X: xm + x, Y: ym + m*x}, geometry.Point{X: xm - x, Y: ym - m*x}
	}
}

func reversed(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}
