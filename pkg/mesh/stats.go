package mesh

import (
	"math"
	"sort"
)

// Stats summarizes how many placemarks the cells of an index hold.
type Stats struct {
	Cells  int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
	Range  int

	// Median holds one value for an odd number of cells, or the two
	// middle values for an even number, collapsed to one when they are
	// equal.
	Median []int

	// Counts holds every cell's placemark count in ascending order.
	Counts []int
}

// Stats computes occupancy statistics over the index's cells. Useful
// for judging whether a scale spreads the features thinly enough for
// fast point queries. The zero Stats is returned for an empty index.
func (x *Index) Stats() Stats {
	if len(x.Cells) == 0 {
		return Stats{}
	}

	counts := make([]int, 0, len(x.Cells))
	for _, pool := range x.Cells {
		counts = append(counts, len(pool))
	}
	sort.Ints(counts)

	sum := 0
	for _, n := range counts {
		sum += n
	}
	mean := float64(sum) / float64(len(counts))

	varSum := 0.0
	for _, n := range counts {
		d := float64(n) - mean
		varSum += d * d
	}

	var median []int
	if n := len(counts); n%2 == 1 {
		median = []int{counts[n/2]}
	} else {
		lo, hi := counts[n/2-1], counts[n/2]
		if lo == hi {
			median = []int{lo}
		} else {
			median = []int{lo, hi}
		}
	}

	return Stats{
		Cells:  len(counts),
		Mean:   mean,
		StdDev: math.Sqrt(varSum / float64(len(counts))),
		Min:    counts[0],
		Max:    counts[len(counts)-1],
		Range:  counts[len(counts)-1] - counts[0],
		Median: median,
		Counts: counts,
	}
}
