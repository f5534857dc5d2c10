// Package geometry implements the planar primitives behind polygon
// containment tests and boundary analysis: bounding boxes, closed rings,
// polygons with holes, and net-boundary extraction.
//
// Coordinates follow the KML convention: X is longitude, Y is latitude,
// and outer boundaries wind counter-clockwise (OGC KML 2.2 §10.8).
package geometry

// Point is a position in the lon/lat plane.
type Point struct {
	X float64 // longitude, degrees
	Y float64 // latitude, degrees
}

// Dist2 returns the squared euclidean distance between two points.
// Callers that only compare distances can skip the square root.
func Dist2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// BBox is an axis-aligned bounding box.
type BBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// emptyBBox returns a box that unions correctly with any real box.
func emptyBBox() BBox {
	const huge = 1e9
	return BBox{MinX: huge, MaxX: -huge, MinY: huge, MaxY: -huge}
}

// Contains reports whether p lies inside or on the edge of the box.
// Edge equality counts as inside so that a point on the box edge still
// reaches the winding test, which decides the boundary case itself.
func (b BBox) Contains(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX && b.MinY <= p.Y && p.Y <= b.MaxY
}

// Union returns the smallest box covering both operands.
func (b BBox) Union(o BBox) BBox {
	if o.MinX < b.MinX {
		b.MinX = o.MinX
	}
	if o.MaxX > b.MaxX {
		b.MaxX = o.MaxX
	}
	if o.MinY < b.MinY {
		b.MinY = o.MinY
	}
	if o.MaxY > b.MaxY {
		b.MaxY = o.MaxY
	}
	return b
}

// extend grows the box to include p.
func (b *BBox) extend(p Point) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}
