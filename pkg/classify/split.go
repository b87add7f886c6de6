package classify

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// stratifiedSplit partitions sample indices into train/test sets preserving
// per-class proportions. It validates feasibility up front so a doomed train
// run fails before any embedding work: every class needs at least 2 samples,
// and the test share must leave at least one sample per class on each side.
func stratifiedSplit(labels []int, testSize float64, seed int64) (train, test []int, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("%w: test size %v must be in (0,1)", ErrBadTrainingConfig, testSize)
	}

	byClass := make(map[int][]int)
	for i, l := range labels {
		byClass[l] = append(byClass[l], i)
	}

	for label, idx := range byClass {
		if len(idx) < 2 {
			return nil, nil, fmt.Errorf("%w: class %d has %d sample(s), need at least 2 for a stratified split", ErrBadTrainingConfig, label, len(idx))
		}
	}

	rng := rand.New(rand.NewSource(seed))
	// Deterministic class order regardless of map iteration.
	order := make([]int, 0, len(byClass))
	for label := range byClass {
		order = append(order, label)
	}
	sort.Ints(order)

	for _, label := range order {
		idx := byClass[label]
		shuffled := make([]int, len(idx))
		copy(shuffled, idx)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		n := int(math.Round(float64(len(shuffled)) * testSize))
		if n < 1 {
			n = 1
		}
		if n >= len(shuffled) {
			n = len(shuffled) - 1
		}
		test = append(test, shuffled[:n]...)
		train = append(train, shuffled[n:]...)
	}
	return train, test, nil
}
