package geometry

import "errors"

// ErrRadiusDeg is the distance, in degrees, below which a test point is
// considered to sit on a boundary. Along the equator it is about one
// meter.
const ErrRadiusDeg = 8.98315e-06

// errBoundary aborts a winding computation when the test point is too
// close to the boundary for the turn direction to be trusted. The caller
// resolves the verdict from the polygon's EdgeOK setting instead.
var errBoundary = errors.New("point on boundary")

// orientation maps the direction from the test point to a vertex onto
// four quadrant codes. Codes increase clockwise: NE=0, SE=1, SW=2, NW=3.
func orientation(point, v Point) (int, error) {
	dx := v.X - point.X
	dy := v.Y - point.Y

	if dx*dy == 0 { // along an axis
		if ErrRadiusDeg*ErrRadiusDeg > dx*dx+dy*dy {
			return 0, errBoundary
		}
		if dx == 0 {
			if dy > 0 {
				return 0, nil
			}
			return 2, nil
		}
		if dx > 0 {
			return 1, nil
		}
		return 3, nil
	}
	if dx < 0 {
		if dy < 0 {
			return 2, nil
		}
		return 3, nil
	}
	if dy < 0 {
		return 1, nil
	}
	return 0, nil
}

// turningSign returns the sign of the turn from v1 to v2 as seen from
// point. A zero cross product means the segment v1-v2 points straight
// at or away from the test point, which is a boundary case.
func turningSign(point, v1, v2 Point) (int, error) {
	r1x, r1y := v1.X-point.X, v1.Y-point.Y
	r2x, r2y := v2.X-point.X, v2.Y-point.Y
	x := r2x*r1y - r2y*r1x
	switch {
	case x > 0:
		return 1, nil
	case x < 0:
		return -1, nil
	default:
		return 0, errBoundary
	}
}

// turning returns the signed quarter-turns from v1 to v2 around point,
// normalized to [-2, 2]. Half-turns take their sign from the cross
// product, which also decides which way the boundary curls around the
// point.
func turning(point, v1, v2 Point) (int, error) {
	o1, err := orientation(point, v1)
	if err != nil {
		return 0, err
	}
	o2, err := orientation(point, v2)
	if err != nil {
		return 0, err
	}
	sign, err := turningSign(point, v1, v2)
	if err != nil {
		return 0, err
	}

	angle := o2 - o1
	switch {
	case angle < -2:
		angle += 4
	case angle > 2:
		angle -= 4
	case angle == 2 || angle == -2:
		angle = 2 * sign
	}
	return angle, nil
}

// winding sums quarter-turns around point over the whole ring. A point
// enclosed by a counter-clockwise ring accumulates -4; a point outside
// accumulates 0.
func winding(point Point, ring Ring) (int, error) {
	total := 0
	for i := 1; i < len(ring.Points); i++ {
		t, err := turning(point, ring.Points[i-1], ring.Points[i])
		if err != nil {
			return 0, err
		}
		total += t
	}
	return total, nil
}

// pointInRing reports whether point is enclosed by the
// counter-clockwise ring. The bounding box rejects most outside points
// before any winding arithmetic runs.
func pointInRing(point Point, ring Ring) (bool, error) {
	if !ring.BBox.Contains(point) {
		return false, nil
	}
	w, err := winding(point, ring)
	if err != nil {
		return false, err
	}
	return w == -4, nil
}

// PointInRingAnyWinding is pointInRing without the counter-clockwise
// assumption: rings wound either way enclose their interior. The mesh
// region fill uses this because inner boundaries in real KML files are
// frequently mis-wound.
func PointInRingAnyWinding(point Point, ring Ring) (bool, error) {
	if !ring.BBox.Contains(point) {
		return false, nil
	}
	w, err := winding(point, ring)
	if err != nil {
		return false, err
	}
	return w == -4 || w == 4, nil
}

// pointInPolygon applies the ring test to every boundary: inside some
// outer and inside no inner.
func pointInPolygon(point Point, pg *Polygon) (bool, error) {
	inOuter := false
	for _, outer := range pg.Outers {
		in, err := pointInRing(point, outer)
		if err != nil {
			return false, err
		}
		if in {
			inOuter = true
			break
		}
	}
	if !inOuter {
		return false, nil
	}
	for _, inner := range pg.Inners {
		in, err := pointInRing(point, inner)
		if err != nil {
			return false, err
		}
		if in {
			return false, nil
		}
	}
	return true, nil
}
