package training

import (
	"math/rand"

	"github.com/aleeshaaz/lostfound/internal/model"
)

// Split partitions examples into disjoint train/test sets. The shuffle is
// driven by the given seed, so the same dataset and seed always produce
// the same partition and evaluation runs stay comparable.
func Split(examples []model.LabeledExample, testFraction float64, seed int64) (train, test []model.LabeledExample, err error) {
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, model.Dataf("test fraction %v outside (0,1)", testFraction)
	}

	n := len(examples)
	shuffled := make([]model.LabeledExample, n)
	copy(shuffled, examples)

	r := rand.New(rand.NewSource(seed))
	r.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	nTest := int(float64(n) * testFraction)
	if nTest == 0 || nTest == n {
		return nil, nil, model.Dataf("dataset of %d rows too small to split at fraction %v", n, testFraction)
	}

	return shuffled[nTest:], shuffled[:nTest], nil
}
