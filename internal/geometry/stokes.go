package geometry

import "sort"

// Net-boundary extraction. Summing the directed sides of a collection
// of abutting boundaries cancels every side shared by two boundaries
// traversed in opposite directions, leaving only the net (usually
// exterior) boundary. The curl scheme of the inputs is inherited by the
// output.

// lessPoint orders points lexicographically, X before Y.
func lessPoint(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// sideOrientation returns +1 when the side runs from the lesser vertex
// to the greater one, -1 for the reverse.
func sideOrientation(s Side) (int, error) {
	if s.A == s.B {
		return 0, &ErrDegenerateSide{At: s.A}
	}
	if lessPoint(s.A, s.B) {
		return 1, nil
	}
	return -1, nil
}

// undirectedSide is a canonical key for a side regardless of direction.
type undirectedSide struct {
	Lo, Hi Point
}

func keyOf(s Side) undirectedSide {
	if lessPoint(s.A, s.B) {
		return undirectedSide{Lo: s.A, Hi: s.B}
	}
	return undirectedSide{Lo: s.B, Hi: s.A}
}

// sideMinder accumulates the net orientation of directed sides,
// dropping sides whose net reaches zero to save space.
type sideMinder map[undirectedSide]int

func (m sideMinder) add(s Side) error {
	o, err := sideOrientation(s)
	if err != nil {
		return err
	}
	key := keyOf(s)
	net := m[key] + o
	switch {
	case net == 0:
		delete(m, key)
	case net == 1 || net == -1:
		m[key] = net
	default:
		return &ErrNetOrientation{Side: s, Net: net}
	}
	return nil
}

// netSides converts the surviving entries back into directed sides.
func (m sideMinder) netSides() []Side {
	sides := make([]Side, 0, len(m))
	for key, net := range m {
		if net == 1 {
			sides = append(sides, Side{A: key.Lo, B: key.Hi})
		} else {
			sides = append(sides, Side{A: key.Hi, B: key.Lo})
		}
	}
	// Deterministic assembly regardless of map iteration order.
	sort.Slice(sides, func(i, j int) bool {
		if sides[i].A != sides[j].A {
			return lessPoint(sides[i].A, sides[j].A)
		}
		return lessPoint(sides[i].B, sides[j].B)
	})
	return sides
}

// sideCross returns the cross product of the vectors defined by two
// directed sides.
func sideCross(s1, s2 Side) float64 {
	v1x, v1y := s1.B.X-s1.A.X, s1.B.Y-s1.A.Y
	v2x, v2y := s2.B.X-s2.A.X, s2.B.Y-s2.A.Y
	return v1x*v2y - v1y*v2x
}

// NetBoundaries returns the closed boundaries that are the sum of the
// directed boundaries supplied. Abutting boundaries traversed in
// opposite directions cancel, so only the sides not shared between two
// inputs survive.
func NetBoundaries(boundaries [][]Point) ([][]Point, error) {
	minder := sideMinder{}
	for _, boundary := range boundaries {
		for i := 1; i < len(boundary); i++ {
			if err := minder.add(Side{A: boundary[i-1], B: boundary[i]}); err != nil {
				return nil, err
			}
		}
	}

	sides := minder.netSides()
	remaining := make(map[Side]bool, len(sides))
	for _, s := range sides {
		remaining[s] = true
	}

	// Link each vertex to the net sides departing from it.
	nextAt := make(map[Point][]Side)
	for _, s := range sides {
		nextAt[s.A] = append(nextAt[s.A], s)
	}

	var nets [][]Point
	for _, seed := range sides {
		if !remaining[seed] {
			continue
		}
		boundary := []Point{seed.A, seed.B}
		next, err := nextSide(seed, nextAt, remaining)
		if err != nil {
			return nil, err
		}
		for next != seed {
			boundary = append(boundary, next.B)
			next, err = nextSide(next, nextAt, remaining)
			if err != nil {
				return nil, err
			}
		}
		nets = append(nets, boundary)
	}
	return nets, nil
}

// nextSide picks the side continuing from the end of side. When bad
// data leaves more than one candidate, the sharpest clockwise turn
// wins.
func nextSide(side Side, nextAt map[Point][]Side, remaining map[Side]bool) (Side, error) {
	var candidates []Side
	for _, s := range nextAt[side.B] {
		if remaining[s] {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return Side{}, &ErrDegenerateSide{At: side.B}
	}
	if len(candidates) > 1 {
		sort.Slice(candidates, func(i, j int) bool {
			return sideCross(side, candidates[i]) < sideCross(side, candidates[j])
		})
	}
	next := candidates[0]
	delete(remaining, next)
	return next, nil
}
