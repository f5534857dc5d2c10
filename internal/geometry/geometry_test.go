package geometry

import "testing"

func TestBBoxContains(t *testing.T) {
	ring := mustRing(t, square(0, 0, 4, 4)...)

	tests := []struct {
		name  string
		point Point
		want  bool
	}{
		{"inside", Point{2, 2}, true},
		// Edge points count as inside; the winding test decides them.
		{"on edge", Point{4, 2}, true},
		{"on corner", Point{0, 0}, true},
		{"outside", Point{4.1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ring.BBox.Contains(tt.point); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestBBoxUnion(t *testing.T) {
	a := mustRing(t, square(0, 0, 1, 1)...).BBox
	b := mustRing(t, square(5, -2, 6, 3)...).BBox

	u := a.Union(b)
	if u.MinX != 0 || u.MaxX != 6 || u.MinY != -2 || u.MaxY != 3 {
		t.Errorf("Union = %+v", u)
	}
}

func TestDist2(t *testing.T) {
	if d := Dist2(Point{0, 0}, Point{3, 4}); d != 25 {
		t.Errorf("Dist2 = %g, want 25", d)
	}
}
