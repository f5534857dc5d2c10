package grid

import (
	"math"

	"github.com/beetlebugorg/kmlmesh/internal/geometry"
)

// CellAt returns the single cell containing the point.
func CellAt(p geometry.Point, scale int) Cell {
	return Cell{
		X:     int(math.Floor(p.X / Width(scale))),
		Y:     int(math.Floor(p.Y / Height(scale))),
		Scale: scale,
	}
}

// CellsAlongPath returns the cells the polyline's segments pass
// through.
func CellsAlongPath(points []geometry.Point, scale int) Set {
	cells := Set{}
	for i := 1; i < len(points); i++ {
		cells.Union(growSegment(points[i-1], points[i], scale))
	}
	return cells
}

// CellsFillingRegion returns the cells intersecting the region enclosed
// by the closed boundary. When boundary cells were already computed
// (indexing a polygon with many holes recomputes hole rims otherwise),
// pass them; otherwise pass nil.
func CellsFillingRegion(points []geometry.Point, scale int, boundary Set) (Set, error) {
	ring, err := geometry.NewRing(points)
	if err != nil {
		return nil, err
	}

	var cells Set
	if len(boundary) > 0 {
		cells = boundary.Clone()
	} else {
		cells = CellsAlongPath(points, scale)
	}

	// Index bounds of the boundary cells.
	minX, maxX := math.MaxInt, math.MinInt
	minY, maxY := math.MaxInt, math.MinInt
	for c := range cells {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	unassigned := Set{}
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			c := Cell{X: x, Y: y, Scale: scale}
			if _, taken := cells[c]; !taken {
				unassigned.Add(c)
			}
		}
	}

	// Grow connected components of unassigned cells. The boundary cells
	// separate inside from outside, so every cell of a component sits on
	// the same side of the ring and the seed's center decides for all of
	// them. Scan in index order so the result does not depend on map
	// iteration.
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			seed := Cell{X: x, Y: y, Scale: scale}
			if _, open := unassigned[seed]; !open {
				continue
			}
			component := floodComponent(seed, unassigned)
			for c := range component {
				delete(unassigned, c)
			}
			cx, cy := seed.Center()
			inside, err := geometry.PointInRingAnyWinding(geometry.Point{X: cx, Y: cy}, ring)
			if err != nil {
				// Center within boundary tolerance of the ring itself;
				// such a cell belongs to the rim, which is already
				// covered, so leave the component out.
				continue
			}
			if inside {
				cells.Union(component)
			}
		}
	}
	return cells, nil
}

// floodComponent grows the 4-connected component of seed within the
// open set.
func floodComponent(seed Cell, open Set) Set {
	core := Set{}
	news := NewSet(seed)
	for len(news) > 0 {
		edge := news
		news = Set{}
		for c := range edge {
			for _, n := range []Cell{
				{X: c.X + 1, Y: c.Y, Scale: c.Scale},
				{X: c.X - 1, Y: c.Y, Scale: c.Scale},
				{X: c.X, Y: c.Y + 1, Scale: c.Scale},
				{X: c.X, Y: c.Y - 1, Scale: c.Scale},
			} {
				news.Add(n)
			}
		}
		core.Union(edge)
		for c := range news {
			if _, seen := core[c]; seen {
				delete(news, c)
				continue
			}
			if _, ok := open[c]; !ok {
				delete(news, c)
			}
		}
	}
	return core
}

// crossSign returns the sign of the z component of the cross product of
// the vector a->b with the vector a->c.
func crossSign(a, b geometry.Point, c [2]float64) int {
	x := (b.X-a.X)*(c[1]-a.Y) - (b.Y-a.Y)*(c[0]-a.X)
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// passesThrough reports whether the segment a-b intersects the cell.
// The segment crosses the cell when its corners sit on both sides of
// the carrying line. With exactly two corners on the line itself the
// segment runs along a cell edge; the cell south or west of that edge
// claims it, which the NW/SE/SW zero pattern identifies.
func passesThrough(cell Cell, a, b geometry.Point) bool {
	corners := cell.corners()
	var signs [4]int
	pos, neg, zeros := false, false, 0
	for i, corner := range corners {
		signs[i] = crossSign(a, b, corner)
		switch signs[i] {
		case 1:
			pos = true
		case -1:
			neg = true
		default:
			zeros++
		}
	}
	if pos && neg {
		return true
	}
	if zeros == 2 {
		nw, _, se, sw := signs[0], signs[1], signs[2], signs[3]
		return sw == 0 && (nw == 0 || se == 0)
	}
	return false
}

// ibox is an interval box used to confine segment growth to the
// segment's own extent.
type ibox struct {
	minX, maxX float64
	minY, maxY float64
}

// dim classifies the box: 2 for an area, 1 for a degenerate line, 0 for
// a point, -1 for an empty intersection.
func (b ibox) dim() int {
	sx := sign(b.maxX - b.minX)
	sy := sign(b.maxY - b.minY)
	if sx < 0 || sy < 0 {
		return -1
	}
	return sx + sy
}

func (b ibox) intersect(o ibox) ibox {
	return ibox{
		minX: math.Max(b.minX, o.minX),
		maxX: math.Min(b.maxX, o.maxX),
		minY: math.Max(b.minY, o.minY),
		maxY: math.Min(b.maxY, o.maxY),
	}
}

func cellBox(c Cell) ibox {
	x, y := c.SW()
	xx, yy := c.NE()
	return ibox{minX: x, maxX: xx, minY: y, maxY: yy}
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// growSegment finds the cells intersecting the segment a-b by linking
// neighbors outward from the cells containing the endpoints. A
// candidate must pass the corner cross-product test and its overlap
// with the segment's bounding box must preserve that box's dimension,
// which keeps growth from escaping past the segment's ends.
func growSegment(a, b geometry.Point, scale int) Set {
	cellA := CellAt(a, scale)
	cellB := CellAt(b, scale)

	box := ibox{
		minX: math.Min(a.X, b.X), maxX: math.Max(a.X, b.X),
		minY: math.Min(a.Y, b.Y), maxY: math.Max(a.Y, b.Y),
	}
	boxDim := box.dim()

	fits := func(c Cell) bool {
		return passesThrough(c, a, b) && boxDim == cellBox(c).intersect(box).dim()
	}

	core := Set{}
	news := NewSet(cellA, cellB)
	for len(news) > 0 {
		edge := news
		news = Set{}
		for c := range edge {
			for _, n := range c.neighbors() {
				news.Add(n)
			}
		}
		core.Union(edge)
		for c := range news {
			if _, seen := core[c]; seen {
				delete(news, c)
				continue
			}
			if !fits(c) {
				delete(news, c)
			}
		}
	}

	// The seed cells entered unconditionally; drop them if the segment
	// does not actually touch them.
	for _, seedCell := range []Cell{cellA, cellB} {
		if !fits(seedCell) {
			delete(core, seedCell)
		}
	}
	return core
}
