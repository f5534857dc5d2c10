package graph

import (
	"testing"

	"github.com/beetlebugorg/kmlmesh/internal/geometry"
)

func mustPolygon(t *testing.T, index int, outer []geometry.Point, inners ...[]geometry.Point) *geometry.Polygon {
	t.Helper()
	pg, err := geometry.NewPolygon([][]geometry.Point{outer}, inners, false, index)
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}
	return pg
}

func square(x0, y0, x1, y1 float64) []geometry.Point {
	return []geometry.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}}
}

func TestSeamless(t *testing.T) {
	shapes := []*geometry.Polygon{
		mustPolygon(t, 0, square(0, 0, 10, 10)),
		mustPolygon(t, 1, square(10, 0, 20, 10)),
		mustPolygon(t, 2, square(50, 50, 60, 60)),
	}

	g, err := Seamless(shapes)
	if err != nil {
		t.Fatalf("Seamless: %v", err)
	}
	if !g.HasEdge(0, 1) {
		t.Error("shared side not detected")
	}
	if g.HasEdge(0, 2) || g.HasEdge(1, 2) {
		t.Error("distant polygons marked adjacent")
	}
}

func TestSeamlessMismatchedVertices(t *testing.T) {
	// The second square splits the shared border with an extra vertex,
	// so no side matches exactly.
	mismatched := []geometry.Point{
		{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10},
		{X: 10, Y: 10}, {X: 10, Y: 5}, {X: 10, Y: 0},
	}
	shapes := []*geometry.Polygon{
		mustPolygon(t, 0, square(0, 0, 10, 10)),
		mustPolygon(t, 1, mismatched),
	}

	g, err := Seamless(shapes)
	if err != nil {
		t.Fatalf("Seamless: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestSeamlessOverSharedSide(t *testing.T) {
	shapes := []*geometry.Polygon{
		mustPolygon(t, 0, square(0, 0, 10, 10)),
		mustPolygon(t, 1, square(0, 0, 10, 10)),
		mustPolygon(t, 2, square(0, 0, 10, 10)),
	}

	_, err := Seamless(shapes)
	if _, ok := err.(*ErrSharedSide); !ok {
		t.Fatalf("got %v, want *ErrSharedSide", err)
	}
}

func TestFuzzy(t *testing.T) {
	mismatched := []geometry.Point{
		{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 20, Y: 10},
		{X: 10, Y: 10}, {X: 10, Y: 5}, {X: 10, Y: 0},
	}
	shapes := []*geometry.Polygon{
		mustPolygon(t, 0, square(0, 0, 10, 10)),
		mustPolygon(t, 1, mismatched),
	}

	g, err := Fuzzy(shapes, 1000, 4)
	if err != nil {
		t.Fatalf("Fuzzy: %v", err)
	}
	if !g.HasEdge(0, 1) {
		t.Error("probed adjacency not detected")
	}
}

func TestFuzzyIslands(t *testing.T) {
	shapes := []*geometry.Polygon{
		mustPolygon(t, 0, square(0, 0, 10, 10)),
		mustPolygon(t, 1, square(50, 50, 60, 60)),
	}

	g, err := Fuzzy(shapes, 1000, 4)
	if err != nil {
		t.Fatalf("Fuzzy: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount = %d, want 0", g.EdgeCount())
	}
}

func TestProbePoints(t *testing.T) {
	tests := []struct {
		name   string
		side   geometry.Side
		radius float64
		p1, p2 geometry.Point
	}{
		{
			"north-south",
			geometry.Side{A: geometry.Point{X: 10, Y: 0}, B: geometry.Point{X: 10, Y: 10}},
			0.5,
			geometry.Point{X: 9.5, Y: 5}, geometry.Point{X: 10.5, Y: 5},
		},
		{
			"east-west",
			geometry.Side{A: geometry.Point{X: 0, Y: 10}, B: geometry.Point{X: 10, Y: 10}},
			0.5,
			geometry.Point{X: 5, Y: 9.5}, geometry.Point{X: 5, Y: 10.5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p1, p2 := probePoints(tt.side, tt.radius)
			if p1 != tt.p1 || p2 != tt.p2 {
				t.Errorf("probePoints = %v, %v, want %v, %v", p1, p2, tt.p1, tt.p2)
			}
		})
	}
}
