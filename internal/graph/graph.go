// Package graph builds adjacency graphs over indexed polygons and
// colors them so that no two adjacent polygons share a color.
//
// Vertices are placemark indices (0-based document order). Edges are
// unordered, irreflexive pairs.
package graph

import "sort"

// Edge is an unordered pair of vertices, stored with A < B.
type Edge struct {
	A, B int
}

// NewEdge normalizes the pair into canonical order.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Graph is a set of vertices plus a set of undirected edges.
type Graph struct {
	vertices map[int]struct{}
	edges    map[Edge]struct{}
}

// New creates a graph with vertices 0..n-1 and no edges.
func New(n int) *Graph {
	g := &Graph{
		vertices: make(map[int]struct{}, n),
		edges:    map[Edge]struct{}{},
	}
	for i := 0; i < n; i++ {
		g.vertices[i] = struct{}{}
	}
	return g
}

// AddEdge records an undirected edge. Self-loops are ignored.
func (g *Graph) AddEdge(a, b int) {
	if a == b {
		return
	}
	g.vertices[a] = struct{}{}
	g.vertices[b] = struct{}{}
	g.edges[NewEdge(a, b)] = struct{}{}
}

// HasEdge reports whether the pair is connected.
func (g *Graph) HasEdge(a, b int) bool {
	_, ok := g.edges[NewEdge(a, b)]
	return ok
}

// Union merges the vertices and edges of o into g.
func (g *Graph) Union(o *Graph) {
	for v := range o.vertices {
		g.vertices[v] = struct{}{}
	}
	for e := range o.edges {
		g.edges[e] = struct{}{}
	}
}

// Vertices returns the vertex set in ascending order.
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Edges returns the edge set in ascending (A, B) order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Neighbors returns the vertex-to-neighbor-set mapping. Only vertices
// that appear in at least one edge have an entry.
func (g *Graph) Neighbors() map[int]map[int]struct{} {
	neighbors := map[int]map[int]struct{}{}
	link := func(a, b int) {
		if neighbors[a] == nil {
			neighbors[a] = map[int]struct{}{}
		}
		neighbors[a][b] = struct{}{}
	}
	for e := range g.edges {
		link(e.A, e.B)
		link(e.B, e.A)
	}
	return neighbors
}
