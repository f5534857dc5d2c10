package graph

import "sort"

// numColors is the size of the palette. Four suffices for planar maps
// (four color theorem), though the greedy strategy below may need its
// repair moves to get there.
const numColors = 4

// Color assigns each vertex of g a color in 1..4 such that no edge
// joins two vertices of the same color.
//
// Strategy: repeatedly color the most constrained uncolored vertex with
// its lowest legal color. When a vertex has no legal color, try to make
// room by recoloring nearby vertices (a single neighbor first, then a
// two-color connected subgraph swap). A final pass rebalances the color
// counts without breaking legality. Deterministic for a given graph:
// every choice falls back to ascending vertex or color order.
func Color(g *Graph) (map[int]int, error) {
	neighbors := g.Neighbors()
	vertices := g.Vertices()
	coloring := make(map[int]int, len(vertices))

	for {
		var uncolored []int
		for _, v := range vertices {
			if coloring[v] == 0 {
				uncolored = append(uncolored, v)
			}
		}
		if len(uncolored) == 0 {
			break
		}

		// Fewest legal colors first; ties break on vertex order.
		vertex := uncolored[0]
		best := len(legalColors(uncolored[0], neighbors, coloring))
		for _, v := range uncolored[1:] {
			if n := len(legalColors(v, neighbors, coloring)); n < best {
				vertex, best = v, n
			}
		}

		legal := legalColors(vertex, neighbors, coloring)
		if len(legal) == 0 {
			recolored, err := sidetrack(vertex, neighbors, coloring)
			if err != nil {
				return nil, err
			}
			coloring = recolored
			continue
		}
		coloring[vertex] = legal[0]
	}

	// Rebalance: nudge each vertex toward the least used of its legal
	// colors. Keeps legality by construction.
	rebalance := make([]int, 0, len(neighbors))
	for v := range neighbors {
		rebalance = append(rebalance, v)
	}
	sort.Ints(rebalance)
	for _, v := range rebalance {
		counts := map[int]int{}
		for _, c := range coloring {
			counts[c]++
		}
		legal := legalColors(v, neighbors, coloring)
		pick, pickCount := 0, -1
		for _, c := range legal {
			if pick == 0 || counts[c] < pickCount {
				pick, pickCount = c, counts[c]
			}
		}
		if pick != 0 {
			coloring[v] = pick
		}
	}
	return coloring, nil
}

// legalColors returns, in ascending order, the colors not taken by any
// neighbor of vertex.
func legalColors(vertex int, neighbors map[int]map[int]struct{}, coloring map[int]int) []int {
	taken := [numColors + 1]bool{}
	for n := range neighbors[vertex] {
		if c := coloring[n]; c != 0 {
			taken[c] = true
		}
	}
	var legal []int
	for c := 1; c <= numColors; c++ {
		if !taken[c] {
			legal = append(legal, c)
		}
	}
	return legal
}

// sidetrack tries to open up a legal color for a blocked vertex by
// tweaking the established coloring nearby. Named in contrast to
// backtracking, which takes eons on graphs with thousands of vertices.
func sidetrack(vertex int, neighbors map[int]map[int]struct{}, coloring map[int]int) (map[int]int, error) {
	if recolored, err := localShift(vertex, neighbors, coloring); err == nil {
		return recolored, nil
	}
	if recolored, err := chainShift(vertex, neighbors, coloring); err == nil {
		return recolored, nil
	}
	return nil, &ErrCannotColor{Vertex: vertex}
}

// coloredNeighbors returns the already-colored neighbors of vertex in
// ascending order.
func coloredNeighbors(vertex int, neighbors map[int]map[int]struct{}, coloring map[int]int) []int {
	var out []int
	for n := range neighbors[vertex] {
		if coloring[n] != 0 {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// localShift looks for a single neighbor that can move to another of
// its legal colors and thereby free a color for vertex.
func localShift(vertex int, neighbors map[int]map[int]struct{}, coloring map[int]int) (map[int]int, error) {
	for _, neighbor := range coloredNeighbors(vertex, neighbors, coloring) {
		options := legalColors(neighbor, neighbors, coloring)
		if len(options) < 2 {
			continue
		}
		for _, option := range options {
			if option == coloring[neighbor] {
				continue
			}
			hypothetical := cloneColoring(coloring)
			hypothetical[neighbor] = option
			if len(legalColors(vertex, neighbors, hypothetical)) > 0 {
				return hypothetical, nil
			}
		}
	}
	return nil, &ErrCannotColor{Vertex: vertex}
}

// chainShift looks for a two-color connected subgraph touching exactly
// one neighbor of vertex; swapping the subgraph's two colors then moves
// that neighbor off the color vertex needs. Smaller subgraphs are tried
// first.
func chainShift(vertex int, neighbors map[int]map[int]struct{}, coloring map[int]int) (map[int]int, error) {
	type swap struct {
		members        []int
		color1, color2 int
	}
	var options []swap
	seen := map[string]bool{}

	for _, neighbor := range coloredNeighbors(vertex, neighbors, coloring) {
		color := coloring[neighbor]
		for other := 1; other <= numColors; other++ {
			if other == color {
				continue
			}
			members := twoColorComponent(neighbor, color, other, neighbors, coloring)
			touching := 0
			for _, m := range members {
				if _, ok := neighbors[vertex][m]; ok {
					touching++
				}
			}
			if touching != 1 {
				continue
			}
			key := componentKey(members, color, other)
			if seen[key] {
				continue
			}
			seen[key] = true
			options = append(options, swap{members: members, color1: color, color2: other})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return len(options[i].members) < len(options[j].members)
	})

	for _, opt := range options {
		hypothetical := cloneColoring(coloring)
		for _, m := range opt.members {
			if coloring[m] == opt.color2 {
				hypothetical[m] = opt.color1
			} else {
				hypothetical[m] = opt.color2
			}
		}
		if len(legalColors(vertex, neighbors, hypothetical)) > 0 {
			return hypothetical, nil
		}
	}
	return nil, &ErrCannotColor{Vertex: vertex}
}

// twoColorComponent grows the connected subgraph around seed containing
// only vertices colored color1 or color2, returned in ascending order.
func twoColorComponent(seed, color1, color2 int, neighbors map[int]map[int]struct{}, coloring map[int]int) []int {
	core := map[int]struct{}{}
	news := map[int]struct{}{seed: {}}
	for len(news) > 0 {
		edge := news
		news = map[int]struct{}{}
		for v := range edge {
			for n := range neighbors[v] {
				if _, done := core[n]; done {
					continue
				}
				if _, queued := edge[n]; queued {
					continue
				}
				if c := coloring[n]; c == color1 || c == color2 {
					news[n] = struct{}{}
				}
			}
			core[v] = struct{}{}
		}
	}
	members := make([]int, 0, len(core))
	for v := range core {
		members = append(members, v)
	}
	sort.Ints(members)
	return members
}

func componentKey(members []int, c1, c2 int) string {
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	key := []byte{byte('0' + c1), byte('0' + c2)}
	for _, m := range members {
		key = append(key, ':')
		if m == 0 {
			key = append(key, '0')
		}
		for m > 0 {
			key = append(key, byte('0'+m%10))
			m /= 10
		}
	}
	return string(key)
}

func cloneColoring(coloring map[int]int) map[int]int {
	out := make(map[int]int, len(coloring))
	for k, v := range coloring {
		out[k] = v
	}
	return out
}
