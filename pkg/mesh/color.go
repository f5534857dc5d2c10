package mesh

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"github.com/beetlebugorg/kmlmesh/pkg/kml"
)

// ColorOptions configures the coloring pipeline.
type ColorOptions struct {
	// Fuzzy also probes for adjacencies across borders whose vertices
	// do not match exactly. Without it only exactly shared sides count.
	Fuzzy bool

	// Scale of the mesh used to localize the fuzzy probes.
	Scale int

	// ProbeFactor divides half the shortest unshared side to get the
	// probe offset distance.
	ProbeFactor float64

	// Palette supplies the fills and icons written into the document.
	Palette Palette

	// Finder and Colorer replace the adjacency and coloring stages
	// when non-nil.
	Finder  AdjacencyFinder
	Colorer Colorer
}

// DefaultColorOptions enables fuzzy adjacency at the default mesh
// scale with the default palette.
func DefaultColorOptions() ColorOptions {
	return ColorOptions{
		Fuzzy:       true,
		Scale:       DefaultScale,
		ProbeFactor: 1000,
		Palette:     DefaultPalette(),
	}
}

// Color assigns each polygon placemark of doc one of four colors such
// that no two adjacent polygons share one, writes the resulting styles
// into the document, and returns the coloring keyed by placemark
// ordinal.
//
// Adjacency is read off exactly shared boundary sides, plus, with
// opts.Fuzzy, off probe points dropped on both flanks of every side
// that no two polygons share exactly.
func Color(doc *etree.Document, opts ColorOptions) (map[int]int, error) {
	if opts.ProbeFactor == 0 {
		opts.ProbeFactor = 1000
	}
	if opts.Palette.Colors == nil {
		opts.Palette = DefaultPalette()
	}
	finder := opts.Finder
	if finder == nil {
		finder = &defaultFinder{
			fuzzy:       opts.Fuzzy,
			scale:       opts.Scale,
			probeFactor: opts.ProbeFactor,
		}
	}
	colorer := opts.Colorer
	if colorer == nil {
		colorer = defaultColorer{}
	}

	shapes, err := documentPolygons(doc)
	if err != nil {
		return nil, err
	}
	edges, err := finder.Adjacency(shapes)
	if err != nil {
		return nil, err
	}
	coloring, err := colorer.Color(len(shapes), edges)
	if err != nil {
		return nil, err
	}
	if err := ApplyColor(doc, coloring, opts.Palette); err != nil {
		return nil, err
	}
	return coloring, nil
}

// ApplyColor writes a coloring into doc. Every placemark gets a
// styleUrl of the form #colorN, existing Style and StyleMap elements
// whose ids collide with the applied styles are removed, and one Style
// per used color is inserted at the front of the Document element.
// Documents without a Document element get the styles at the front of
// the root instead.
func ApplyColor(doc *etree.Document, coloring map[int]int, palette Palette) error {
	document, err := documentOrRoot(doc)
	if err != nil {
		return err
	}
	pms := kml.Placemarks(doc)

	ids := map[string]int{}
	for i, pm := range pms {
		c, ok := coloring[i]
		if !ok {
			return &ErrMissingColor{Placemark: i}
		}
		if _, ok := palette.Colors[c]; !ok {
			return &ErrPaletteEntry{Color: c}
		}
		if _, ok := palette.Icons[c]; !ok {
			return &ErrPaletteEntry{Color: c}
		}
		id := fmt.Sprintf("color%d", c)
		styleURL := pm.SelectElement("styleUrl")
		if styleURL == nil {
			styleURL = kml.Add(pm, "styleUrl")
		}
		styleURL.SetText("#" + id)
		ids[id] = c
	}

	// Clear the way for the styles about to be written.
	var stale []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == "Style" || child.Tag == "StyleMap" {
				if _, used := ids[child.SelectAttrValue("id", "")]; used {
					stale = append(stale, child)
					continue
				}
			}
			walk(child)
		}
	}
	walk(&doc.Element)
	for _, el := range stale {
		if parent := el.Parent(); parent != nil {
			parent.RemoveChild(el)
		}
	}

	names := make([]string, 0, len(ids))
	for id := range ids {
		names = append(names, id)
	}
	sort.Strings(names)
	for _, id := range names {
		style := etree.NewElement("Style")
		document.InsertChildAt(0, style)
		style.CreateAttr("id", id)
		c := ids[id]
		kml.Add(style, "PolyStyle", "color").SetText(palette.Colors[c])
		kml.Add(style, "LineStyle", "color").SetText(lineColor)
		kml.Add(style, "IconStyle", "Icon", "href").SetText(palette.Icons[c])
	}
	return nil
}

// documentOrRoot returns the Document element of doc, the root when
// there is none (placemarks can sit under a Folder or the kml element
// directly), or ErrNoDocument for a rootless tree.
func documentOrRoot(doc *etree.Document) (*etree.Element, error) {
	if document := kml.DocumentElement(doc); document != nil {
		return document, nil
	}
	if root := doc.Root(); root != nil {
		return root, nil
	}
	return nil, &ErrNoDocument{}
}

// documentPolygons converts each Placemark into polygon form for the
// adjacency tests, tagged with its document ordinal. All of a
// placemark's Polygon elements contribute boundaries, so MultiGeometry
// features become multi-boundary polygons.
func documentPolygons(doc *etree.Document) ([]Polygon, error) {
	pms := kml.Placemarks(doc)
	shapes := make([]Polygon, 0, len(pms))
	for i, pm := range pms {
		shape := Polygon{Index: i}
		for _, pg := range findDescendants(pm, "Polygon") {
			coords := pg.FindElement("outerBoundaryIs/LinearRing/coordinates")
			if coords == nil {
				return nil, &ErrNoBoundary{Placemark: i, Boundary: "outerBoundaryIs"}
			}
			outer, err := boundaryVertices(coords)
			if err != nil {
				return nil, err
			}
			shape.Outers = append(shape.Outers, outer)

			for _, hole := range pg.SelectElements("innerBoundaryIs") {
				coords := hole.FindElement("LinearRing/coordinates")
				if coords == nil {
					return nil, &ErrNoBoundary{Placemark: i, Boundary: "innerBoundaryIs"}
				}
				inner, err := boundaryVertices(coords)
				if err != nil {
					return nil, err
				}
				shape.Inners = append(shape.Inners, inner)
			}
		}
		if len(shape.Outers) == 0 {
			return nil, &ErrNoPolygon{Placemark: i}
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

// boundaryVertices parses a coordinates element into lon/lat pairs.
func boundaryVertices(el *etree.Element) ([]Vertex, error) {
	points, err := boundaryPoints(el)
	if err != nil {
		return nil, err
	}
	out := make([]Vertex, 0, len(points))
	for _, p := range points {
		out = append(out, Vertex{p.X, p.Y})
	}
	return out, nil
}
