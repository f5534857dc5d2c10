package mesh

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/kmlmesh/internal/grid"
	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// AppendCellOutlines appends one Placemark per indexed cell outlining
// its bounds, for eyeballing an index over its source map. Each
// outline carries the cell's placemark count as a Data field. The
// outlines go under the Document element, or under the root for
// documents without one.
func AppendCellOutlines(doc *etree.Document, index *Index) error {
	document, err := documentOrRoot(doc)
	if err != nil {
		return err
	}
	for _, c := range index.CellList() {
		gc := grid.Cell{X: c.X, Y: c.Y, Scale: index.Scale}
		west, south := gc.SW()
		east, north := gc.NE()

		pm := kml.Add(document, "Placemark")
		kml.Add(pm, "name").SetText(fmt.Sprintf("cell %d,%d", c.X, c.Y))
		value := kml.Add(pm, "ExtendedData", "Data", "value")
		value.Parent().CreateAttr("name", "placemarks")
		value.SetText(fmt.Sprintf("%d", len(index.Cells[c])))

		coords := kml.Add(pm, "Polygon", "outerBoundaryIs", "LinearRing", "coordinates")
		coords.SetText(fmt.Sprintf("%g,%g %g,%g %g,%g %g,%g %g,%g",
			west, south, east, south, east, north, west, north, west, south))
	}
	return nil
}
