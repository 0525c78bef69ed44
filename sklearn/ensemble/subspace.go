package ensemble

import (
	"math/rand/v2"
	"sort"
)

// GenerateSubset draws size distinct feature indices from [0, total) by
// rejection sampling and returns them sorted ascending. size must not exceed
// total.
func GenerateSubset(rng *rand.Rand, size, total int) []int {
	if size > total {
		panic("ensemble.GenerateSubset: size exceeds total")
	}

	chosen := make([]bool, total)
	subset := make([]int, 0, size)
	for len(subset) < size {
		idx := rng.IntN(total)
		if chosen[idx] {
			continue
		}
		chosen[idx] = true
		subset = append(subset, idx)
	}
	sort.Ints(subset)
	return subset
}
