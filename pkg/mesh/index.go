package mesh

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/kmlmesh/internal/geometry"
	"github.com/beetlebugorg/kmlmesh/internal/grid"
	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// DefaultScale divides the world into 2^16 columns and rows. County
// and district sized features typically span a handful of cells at
// this scale.
const DefaultScale = 16

// Cell identifies one mesh rectangle by the integer indices of its
// southwest corner.
type Cell struct {
	X, Y int
}

// Index maps mesh cells to the placemarks whose geometry touches them.
// Placemarks are identified by 0-based document order.
type Index struct {
	Scale int
	Cells map[Cell]map[int]struct{}
}

// geometryKinds lists the geometry tags a Placemark is searched for,
// in detection priority order.
var geometryKinds = []string{"MultiGeometry", "Polygon", "LineString", "Point"}

// BuildIndex indexes every Placemark of doc on the mesh at the given
// scale. A Placemark's cells are those its geometry touches: the
// single cell under a Point, the cells along a LineString, and the
// cells filling a Polygon. Hole interiors are excluded but the cells
// along a hole's rim still belong to the enclosing polygon. A
// MultiGeometry covers the union of its members.
//
// A Placemark with none of the four geometry kinds fails the build
// with ErrNoGeometry.
func BuildIndex(doc *etree.Document, scale int) (*Index, error) {
	index := &Index{Scale: scale, Cells: map[Cell]map[int]struct{}{}}
	for i, pm := range kml.Placemarks(doc) {
		cells, err := placemarkCells(pm, i, scale)
		if err != nil {
			return nil, err
		}
		for c := range cells {
			cell := Cell{X: c.X, Y: c.Y}
			pool := index.Cells[cell]
			if pool == nil {
				pool = map[int]struct{}{}
				index.Cells[cell] = pool
			}
			pool[i] = struct{}{}
		}
	}
	return index, nil
}

// Placemarks returns, in ascending document order, the placemarks
// indexed under the cell.
func (x *Index) Placemarks(c Cell) []int {
	out := make([]int, 0, len(x.Cells[c]))
	for i := range x.Cells[c] {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// CellList returns the indexed cells in ascending (X, Y) order.
func (x *Index) CellList() []Cell {
	out := make([]Cell, 0, len(x.Cells))
	for c := range x.Cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

// placemarkCells finds pm's first geometry element by detection
// priority and computes its cell coverage.
func placemarkCells(pm *etree.Element, placemark, scale int) (grid.Set, error) {
	for _, kind := range geometryKinds {
		if geom := findDescendant(pm, kind); geom != nil {
			return geometryCells(geom, placemark, scale)
		}
	}
	return nil, &ErrNoGeometry{Placemark: placemark}
}

func geometryCells(geom *etree.Element, placemark, scale int) (grid.Set, error) {
	switch geom.Tag {
	case "MultiGeometry":
		cells := grid.Set{}
		for _, kind := range []string{"Polygon", "LineString", "Point"} {
			for _, member := range findDescendants(geom, kind) {
				sub, err := geometryCells(member, placemark, scale)
				if err != nil {
					return nil, err
				}
				cells.Union(sub)
			}
		}
		return cells, nil

	case "Polygon":
		return polygonCells(geom, placemark, scale)

	case "LineString":
		points, err := boundaryPoints(geom.SelectElement("coordinates"))
		if err != nil {
			return nil, err
		}
		return grid.CellsAlongPath(points, scale), nil

	default: // Point
		points, err := boundaryPoints(geom.SelectElement("coordinates"))
		if err != nil {
			return nil, err
		}
		if len(points) == 0 {
			return nil, &ErrNoGeometry{Placemark: placemark}
		}
		return grid.NewSet(grid.CellAt(points[0], scale)), nil
	}
}

// polygonCells fills the outer boundary, then carves out each hole's
// strict interior. The hole rim cells stay: the polygon still covers
// part of them.
func polygonCells(pg *etree.Element, placemark, scale int) (grid.Set, error) {
	outer := pg.FindElement("outerBoundaryIs/LinearRing/coordinates")
	if outer == nil {
		return nil, &ErrNoBoundary{Placemark: placemark, Boundary: "outerBoundaryIs"}
	}
	points, err := boundaryPoints(outer)
	if err != nil {
		return nil, err
	}
	cells, err := grid.CellsFillingRegion(points, scale, nil)
	if err != nil {
		return nil, err
	}

	for _, hole := range pg.SelectElements("innerBoundaryIs") {
		coords := hole.FindElement("LinearRing/coordinates")
		if coords == nil {
			return nil, &ErrNoBoundary{Placemark: placemark, Boundary: "innerBoundaryIs"}
		}
		inner, err := boundaryPoints(coords)
		if err != nil {
			return nil, err
		}
		rim := grid.CellsAlongPath(inner, scale)
		fill, err := grid.CellsFillingRegion(inner, scale, rim)
		if err != nil {
			return nil, err
		}
		cells.Subtract(fill, rim)
	}
	return cells, nil
}

// boundaryPoints parses a coordinates element into lon/lat points.
func boundaryPoints(el *etree.Element) ([]geometry.Point, error) {
	if el == nil {
		return nil, nil
	}
	coords, err := kml.Coordinates(el, 2)
	if err != nil {
		return nil, err
	}
	points := make([]geometry.Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("coordinate tuple has %d values, need longitude and latitude", len(c))
		}
		points = append(points, geometry.Point{X: c[0], Y: c[1]})
	}
	return points, nil
}

// findDescendant returns the first descendant of el with the tag, in
// document order, or nil.
func findDescendant(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
		if found := findDescendant(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findDescendants returns every descendant of el with the tag, in
// document order.
func findDescendants(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == tag {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(el)
	return out
}
