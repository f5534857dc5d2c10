package mesh

import (
	"github.com/beetlebugorg/kmlmesh/internal/geometry"
	"github.com/beetlebugorg/kmlmesh/internal/graph"
)

// Vertex is a lon/lat pair.
type Vertex [2]float64

// Polygon is the geometric view of a placemark handed to adjacency
// finders: its boundaries plus the placemark's document ordinal. Rings
// are closed (first vertex repeated last) and wind counter-clockwise
// for outers, per the KML standard.
type Polygon struct {
	Index  int
	Outers [][]Vertex
	Inners [][]Vertex
}

// Edge is an unordered adjacency between two placemarks.
type Edge struct {
	A, B int
}

// AdjacencyFinder reports which polygons of a map border which.
type AdjacencyFinder interface {
	Adjacency(shapes []Polygon) ([]Edge, error)
}

// Colorer assigns each of the vertices 0..n-1 a color in 1..4 such
// that no edge joins two vertices of the same color.
type Colorer interface {
	Color(n int, edges []Edge) (map[int]int, error)
}

// defaultFinder reads adjacency off exactly shared sides, plus probe
// points when fuzzy is set.
type defaultFinder struct {
	fuzzy       bool
	scale       int
	probeFactor float64
}

func (f *defaultFinder) Adjacency(shapes []Polygon) ([]Edge, error) {
	internal, err := toInternal(shapes)
	if err != nil {
		return nil, err
	}

	g, err := graph.Seamless(internal)
	if err != nil {
		return nil, err
	}
	if f.fuzzy {
		fuzzy, err := graph.Fuzzy(internal, f.probeFactor, f.scale)
		if err != nil {
			return nil, err
		}
		g.Union(fuzzy)
	}

	edges := make([]Edge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, Edge{A: e.A, B: e.B})
	}
	return edges, nil
}

func toInternal(shapes []Polygon) ([]*geometry.Polygon, error) {
	out := make([]*geometry.Polygon, 0, len(shapes))
	for _, shape := range shapes {
		pg, err := geometry.NewPolygon(
			toPoints(shape.Outers), toPoints(shape.Inners), false, shape.Index)
		if err != nil {
			return nil, err
		}
		out = append(out, pg)
	}
	return out, nil
}

func toPoints(rings [][]Vertex) [][]geometry.Point {
	out := make([][]geometry.Point, 0, len(rings))
	for _, ring := range rings {
		points := make([]geometry.Point, 0, len(ring))
		for _, v := range ring {
			points = append(points, geometry.Point{X: v[0], Y: v[1]})
		}
		out = append(out, points)
	}
	return out
}

// defaultColorer wraps the four-color graph colorer.
type defaultColorer struct{}

func (defaultColorer) Color(n int, edges []Edge) (map[int]int, error) {
	g := graph.New(n)
	for _, e := range edges {
		g.AddEdge(e.A, e.B)
	}
	return graph.Color(g)
}
