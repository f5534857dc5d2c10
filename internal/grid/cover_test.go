package grid

import (
	"testing"

	"github.com/beetlebugorg/kmlmesh/internal/geometry"
)

func TestCellAt(t *testing.T) {
	tests := []struct {
		name  string
		point geometry.Point
		scale int
		want  Cell
	}{
		{"origin quadrant", geometry.Point{X: 1, Y: 1}, 1, Cell{X: 0, Y: 0, Scale: 1}},
		{"negative quadrant", geometry.Point{X: -1, Y: -1}, 1, Cell{X: -1, Y: -1, Scale: 1}},
		{"east of the first column", geometry.Point{X: 185, Y: 0.1}, 1, Cell{X: 1, Y: 0, Scale: 1}},
		{"finer scale", geometry.Point{X: 23, Y: 12}, 4, Cell{X: 1, Y: 1, Scale: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellAt(tt.point, tt.scale); got != tt.want {
				t.Errorf("CellAt = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCellsAlongPathHorizontal(t *testing.T) {
	cells := CellsAlongPath([]geometry.Point{{X: 1, Y: 1}, {X: 40, Y: 1}}, 4)

	want := NewSet(Cell{X: 0, Y: 0, Scale: 4}, Cell{X: 1, Y: 0, Scale: 4})
	if len(cells) != len(want) {
		t.Fatalf("got %d cells, want %d: %v", len(cells), len(want), cells)
	}
	for c := range want {
		if _, ok := cells[c]; !ok {
			t.Errorf("missing cell %+v", c)
		}
	}
}

func TestCellsAlongPathEveryCellTouches(t *testing.T) {
	a := geometry.Point{X: 1, Y: 1}
	b := geometry.Point{X: 40, Y: 35}
	cells := CellsAlongPath([]geometry.Point{a, b}, 4)

	if _, ok := cells[CellAt(a, 4)]; !ok {
		t.Error("missing the cell under the start point")
	}
	if _, ok := cells[CellAt(b, 4)]; !ok {
		t.Error("missing the cell under the end point")
	}
	for c := range cells {
		if !passesThrough(c, a, b) {
			t.Errorf("cell %+v does not intersect the segment", c)
		}
	}
}

func TestCellsAlongPathEdgeRunner(t *testing.T) {
	// A segment running along a cell edge belongs to the cell whose
	// southern edge it is, and the endpoint landing exactly on a cell
	// corner does not drag that cell in.
	cells := CellsAlongPath([]geometry.Point{{X: 0, Y: 0}, {X: 22.5, Y: 0}}, 4)

	if len(cells) != 1 {
		t.Fatalf("got %d cells, want 1: %v", len(cells), cells)
	}
	if _, ok := cells[Cell{X: 0, Y: 0, Scale: 4}]; !ok {
		t.Errorf("edge segment not claimed by the northern cell: %v", cells)
	}
}

// centerRect is a closed CCW rectangle with corners at the centers of
// cells (x0,y0) and (x1,y1).
func centerRect(scale, x0, y0, x1, y1 int) []geometry.Point {
	cx := func(x int) float64 { return (float64(x) + 0.5) * Width(scale) }
	cy := func(y int) float64 { return (float64(y) + 0.5) * Height(scale) }
	return []geometry.Point{
		{X: cx(x0), Y: cy(y0)},
		{X: cx(x1), Y: cy(y0)},
		{X: cx(x1), Y: cy(y1)},
		{X: cx(x0), Y: cy(y1)},
		{X: cx(x0), Y: cy(y0)},
	}
}

func TestCellsFillingRegion(t *testing.T) {
	const scale = 4
	cells, err := CellsFillingRegion(centerRect(scale, 0, 0, 2, 2), scale, nil)
	if err != nil {
		t.Fatalf("CellsFillingRegion: %v", err)
	}

	// 3x3 block: 8 boundary cells plus the interior one.
	if len(cells) != 9 {
		t.Fatalf("got %d cells, want 9: %v", len(cells), cells)
	}
	if _, ok := cells[Cell{X: 1, Y: 1, Scale: scale}]; !ok {
		t.Error("interior cell missing from the fill")
	}
}

func TestCellsFillingRegionPrecomputedBoundary(t *testing.T) {
	const scale = 4
	boundary := centerRect(scale, 0, 0, 2, 2)

	rim := CellsAlongPath(boundary, scale)
	withRim, err := CellsFillingRegion(boundary, scale, rim)
	if err != nil {
		t.Fatalf("CellsFillingRegion: %v", err)
	}
	fresh, err := CellsFillingRegion(boundary, scale, nil)
	if err != nil {
		t.Fatalf("CellsFillingRegion: %v", err)
	}

	if len(withRim) != len(fresh) {
		t.Fatalf("precomputed boundary changed the fill: %d vs %d", len(withRim), len(fresh))
	}
	for c := range fresh {
		if _, ok := withRim[c]; !ok {
			t.Errorf("missing cell %+v", c)
		}
	}
}

func TestCellsFillingRegionOpenRing(t *testing.T) {
	_, err := CellsFillingRegion([]geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, 4, nil)
	if err == nil {
		t.Fatal("expected an error for an unclosed boundary")
	}
}

func TestSetSubtractKeepsRim(t *testing.T) {
	s := NewSet(
		Cell{X: 0, Y: 0, Scale: 1},
		Cell{X: 1, Y: 0, Scale: 1},
		Cell{X: 2, Y: 0, Scale: 1},
	)
	remove := NewSet(Cell{X: 1, Y: 0, Scale: 1}, Cell{X: 2, Y: 0, Scale: 1})
	keep := NewSet(Cell{X: 2, Y: 0, Scale: 1})

	s.Subtract(remove, keep)

	if len(s) != 2 {
		t.Fatalf("got %d cells, want 2: %v", len(s), s)
	}
	if _, ok := s[Cell{X: 1, Y: 0, Scale: 1}]; ok {
		t.Error("cell marked for removal survived")
	}
	if _, ok := s[Cell{X: 2, Y: 0, Scale: 1}]; !ok {
		t.Error("kept cell was removed")
	}
}
