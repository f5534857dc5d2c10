package graph

import (
	"reflect"
	"testing"
)

// assertLegal fails unless every vertex has a color in 1..4 and no
// edge joins two vertices of the same color.
func assertLegal(t *testing.T, g *Graph, coloring map[int]int) {
	t.Helper()
	for _, v := range g.Vertices() {
		c := coloring[v]
		if c < 1 || c > numColors {
			t.Errorf("vertex %d has color %d", v, c)
		}
	}
	for _, e := range g.Edges() {
		if coloring[e.A] == coloring[e.B] {
			t.Errorf("edge %d-%d has both ends colored %d", e.A, e.B, coloring[e.A])
		}
	}
}

func pathGraph(n int) *Graph {
	g := New(n)
	for i := 1; i < n; i++ {
		g.AddEdge(i-1, i)
	}
	return g
}

func completeGraph(n int) *Graph {
	g := New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

func wheelGraph(rim int) *Graph {
	g := New(rim + 1)
	hub := rim
	for i := 0; i < rim; i++ {
		g.AddEdge(i, (i+1)%rim)
		g.AddEdge(i, hub)
	}
	return g
}

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		g    *Graph
	}{
		{"empty", New(0)},
		{"isolated vertices", New(5)},
		{"path", pathGraph(6)},
		{"triangle", completeGraph(3)},
		{"complete four", completeGraph(4)},
		// An odd wheel needs all four colors.
		{"odd wheel", wheelGraph(5)},
		{"even wheel", wheelGraph(6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coloring, err := Color(tt.g)
			if err != nil {
				t.Fatalf("Color: %v", err)
			}
			assertLegal(t, tt.g, coloring)
		})
	}
}

func TestColorCompleteFourUsesAllColors(t *testing.T) {
	coloring, err := Color(completeGraph(4))
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	seen := map[int]bool{}
	for _, c := range coloring {
		seen[c] = true
	}
	if len(seen) != 4 {
		t.Errorf("K4 colored with %d colors, want 4", len(seen))
	}
}

func TestColorDeterministic(t *testing.T) {
	build := func() *Graph {
		g := New(8)
		for _, e := range [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
		} {
			g.AddEdge(e[0], e[1])
		}
		return g
	}

	first, err := Color(build())
	if err != nil {
		t.Fatalf("Color: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Color(build())
		if err != nil {
			t.Fatalf("Color: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %v vs %v", i, first, again)
		}
	}
}

func TestTwoColorComponent(t *testing.T) {
	g := New(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)
	neighbors := g.Neighbors()
	coloring := map[int]int{0: 1, 1: 2, 2: 1, 3: 3, 4: 1}

	members := twoColorComponent(0, 1, 2, neighbors, coloring)
	if want := []int{0, 1, 2}; !reflect.DeepEqual(members, want) {
		t.Errorf("component = %v, want %v", members, want)
	}
}
