package geometry

// Ring is a closed boundary of a polygon, inner or outer, with its
// bounding box precomputed.
type Ring struct {
	Points []Point
	BBox   BBox
}

// NewRing builds a ring from a closed point sequence.
// The first and last point must be equal.
func NewRing(points []Point) (Ring, error) {
	if len(points) < 2 {
		return Ring{}, &ErrOpenRing{Points: len(points)}
	}
	if points[0] != points[len(points)-1] {
		return Ring{}, &ErrOpenRing{
			Points: len(points),
			First:  points[0],
			Last:   points[len(points)-1],
		}
	}
	bbox := emptyBBox()
	for _, p := range points {
		bbox.extend(p)
	}
	return Ring{Points: points, BBox: bbox}, nil
}

// Polygon is a polygon with one or more outer boundaries and zero or
// more inner boundaries (holes), tagged with an opaque index so that
// adjacency graphs can refer back to the source feature.
type Polygon struct {
	Outers []Ring
	Inners []Ring

	// Index identifies the source placemark (0-based document order).
	Index int

	// EdgeOK controls the verdict for points too close to a boundary
	// to classify: true counts them as inside.
	EdgeOK bool
}

// NewPolygon builds a polygon from closed outer and inner boundaries.
// When clockwise is true the boundaries are reversed on the way in, so
// the winding test always sees counter-clockwise outers (shapefile
// sources wind the opposite way from KML).
func NewPolygon(outers, inners [][]Point, clockwise bool, index int) (*Polygon, error) {
	if len(outers) == 0 {
		return nil, &ErrOpenRing{Points: 0}
	}
	pg := &Polygon{Index: index}
	for _, boundary := range outers {
		ring, err := NewRing(orient(boundary, clockwise))
		if err != nil {
			return nil, err
		}
		pg.Outers = append(pg.Outers, ring)
	}
	for _, boundary := range inners {
		ring, err := NewRing(orient(boundary, clockwise))
		if err != nil {
			return nil, err
		}
		pg.Inners = append(pg.Inners, ring)
	}
	return pg, nil
}

func orient(points []Point, reverse bool) []Point {
	if !reverse {
		return points
	}
	out := make([]Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

// Rings returns all boundaries, outer first.
func (pg *Polygon) Rings() []Ring {
	rings := make([]Ring, 0, len(pg.Outers)+len(pg.Inners))
	rings = append(rings, pg.Outers...)
	rings = append(rings, pg.Inners...)
	return rings
}

// BBox returns the box covering every boundary of the polygon.
func (pg *Polygon) BBox() BBox {
	bbox := emptyBBox()
	for _, ring := range pg.Rings() {
		bbox = bbox.Union(ring.BBox)
	}
	return bbox
}

// Side is a directed boundary segment.
type Side struct {
	A, B Point
}

// Sides returns every segment of every boundary, in ring order.
// The closing vertex duplicates the opening one, so each ring of n
// distinct vertices yields n sides.
func (pg *Polygon) Sides() []Side {
	var sides []Side
	for _, ring := range pg.Rings() {
		for i := 1; i < len(ring.Points); i++ {
			sides = append(sides, Side{A: ring.Points[i-1], B: ring.Points[i]})
		}
	}
	return sides
}

// Contains reports whether p is inside the polygon. Points within
// ErrRadiusDeg of a boundary resolve to the polygon's EdgeOK setting.
func (pg *Polygon) Contains(p Point) bool {
	inside, err := pointInPolygon(p, pg)
	if err != nil {
		return pg.EdgeOK
	}
	return inside
}
