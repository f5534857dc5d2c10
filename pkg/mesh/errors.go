package mesh

import "fmt"

// ErrNoGeometry indicates a Placemark without a MultiGeometry,
// Polygon, LineString, or Point to index.
type ErrNoGeometry struct {
	Placemark int
}

func (e *ErrNoGeometry) Error() string {
	return fmt.Sprintf("placemark %d has no MultiGeometry, Polygon, LineString, or Point", e.Placemark)
}

// ErrNoPolygon indicates a Placemark without polygon geometry in a
// document being colored as a polygon map.
type ErrNoPolygon struct {
	Placemark int
}

func (e *ErrNoPolygon) Error() string {
	return fmt.Sprintf("placemark %d has no polygon with an outer boundary", e.Placemark)
}

// ErrNoBoundary indicates a Polygon element missing the coordinates of
// one of its boundaries.
type ErrNoBoundary struct {
	Placemark int
	Boundary  string
}

func (e *ErrNoBoundary) Error() string {
	return fmt.Sprintf("placemark %d: polygon has no %s coordinates", e.Placemark, e.Boundary)
}

// ErrNoDocument indicates a document with no element to attach
// styles or overlays to.
type ErrNoDocument struct{}

func (e *ErrNoDocument) Error() string {
	return "document has no root element"
}

// ErrMissingColor indicates a coloring that does not cover every
// placemark of the document it is applied to.
type ErrMissingColor struct {
	Placemark int
}

func (e *ErrMissingColor) Error() string {
	return fmt.Sprintf("coloring assigns no color to placemark %d", e.Placemark)
}

// ErrPaletteEntry indicates a palette without a fill color or icon for
// an assigned color.
type ErrPaletteEntry struct {
	Color int
}

func (e *ErrPaletteEntry) Error() string {
	return fmt.Sprintf("palette has no entry for color %d", e.Color)
}
