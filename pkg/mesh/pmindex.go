package mesh

import (
	"sort"

	"github.com/beevik/etree"
	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// PlacemarkIndex answers viewport queries over a document's
// placemarks with an R-tree over their bounding boxes. Complements
// Index: the mesh drives the geometric algorithms, the R-tree serves
// interactive rectangle lookups without choosing a scale.
type PlacemarkIndex struct {
	rtree *rtreego.Rtree
}

// indexedPlacemark wraps a placemark for R-tree storage.
type indexedPlacemark struct {
	placemark                int
	minX, minY, spanX, spanY float64
}

// Bounds implements the rtreego.Spatial interface.
func (p *indexedPlacemark) Bounds() rtreego.Rect {
	// R-tree rects need non-zero extents; point features get a small
	// epsilon (about 11 meters at the equator).
	const epsilon = 0.0001
	spanX, spanY := p.spanX, p.spanY
	if spanX < epsilon {
		spanX = epsilon
	}
	if spanY < epsilon {
		spanY = epsilon
	}
	rect, _ := rtreego.NewRect(rtreego.Point{p.minX, p.minY}, []float64{spanX, spanY})
	return rect
}

// NewPlacemarkIndex builds an R-tree over the bounding boxes of doc's
// placemarks. Every coordinates element under a placemark contributes
// to its box.
func NewPlacemarkIndex(doc *etree.Document) (*PlacemarkIndex, error) {
	rtree := rtreego.NewTree(2, 25, 50)
	for i, pm := range kml.Placemarks(doc) {
		var minX, minY, maxX, maxY float64
		seen := false
		for _, coords := range findDescendants(pm, "coordinates") {
			points, err := boundaryPoints(coords)
			if err != nil {
				return nil, err
			}
			for _, p := range points {
				if !seen {
					minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
					seen = true
					continue
				}
				minX, maxX = min(minX, p.X), max(maxX, p.X)
				minY, maxY = min(minY, p.Y), max(maxY, p.Y)
			}
		}
		if !seen {
			continue
		}
		rtree.Insert(&indexedPlacemark{
			placemark: i,
			minX:      minX,
			minY:      minY,
			spanX:     maxX - minX,
			spanY:     maxY - minY,
		})
	}
	return &PlacemarkIndex{rtree: rtree}, nil
}

// InBounds returns, in ascending document order, the placemarks whose
// bounding boxes intersect the given lon/lat viewport.
func (x *PlacemarkIndex) InBounds(minLon, minLat, maxLon, maxLat float64) []int {
	rect, err := rtreego.NewRect(
		rtreego.Point{minLon, minLat},
		[]float64{maxLon - minLon, maxLat - minLat},
	)
	if err != nil {
		return nil
	}
	spatials := x.rtree.SearchIntersect(rect)
	out := make([]int, 0, len(spatials))
	for _, spatial := range spatials {
		out = append(out, spatial.(*indexedPlacemark).placemark)
	}
	sort.Ints(out)
	return out
}
