// Package model_selection provides data splitters used to compare training
// methods on held-out folds.
package model_selection

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
)

// KFoldSplitter defines interface for cross-validation splitters
type KFoldSplitter interface {
	Split(nSamples int) ([]CVFold, error)
	GetNSplits() int
}

// CVFold represents a single fold in cross-validation
type CVFold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold implements k-fold cross-validation splitter.
//
// Without shuffling, fold i holds out the i-th contiguous block of rows.
// The first nSamples%NSplits blocks are one row larger. Train indices keep
// the original row order.
type KFold struct {
	NSplits    int
	Shuffle    bool
	RandomSeed uint64
}

// NewKFold creates a new k-fold splitter
func NewKFold(nSplits int, shuffle bool, randomSeed uint64) *KFold {
	return &KFold{
		NSplits:    nSplits,
		Shuffle:    shuffle,
		RandomSeed: randomSeed,
	}
}

// GetNSplits returns the number of splits
func (kf *KFold) GetNSplits() int {
	return kf.NSplits
}

// Validate checks the split count against a sample count.
func (kf *KFold) Validate(nSamples int) error {
	if kf.NSplits < 2 {
		return errors.NewConfigurationError("folds", "must be at least 2", kf.NSplits)
	}
	if kf.NSplits > nSamples {
		return errors.NewConfigurationError("folds", "cannot exceed the number of samples", kf.NSplits)
	}
	return nil
}

// Split generates train/test indices for each fold
func (kf *KFold) Split(nSamples int) ([]CVFold, error) {
	if err := kf.Validate(nSamples); err != nil {
		return nil, err
	}

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}

	if kf.Shuffle {
		r := rand.New(rand.NewPCG(kf.RandomSeed, kf.RandomSeed))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]CVFold, kf.NSplits)
	foldSize := nSamples / kf.NSplits
	remainder := nSamples % kf.NSplits

	currentIdx := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[currentIdx:currentIdx+testSize])

		trainIndices := make([]int, 0, nSamples-testSize)
		trainIndices = append(trainIndices, indices[:currentIdx]...)
		trainIndices = append(trainIndices, indices[currentIdx+testSize:]...)

		folds[i] = CVFold{
			TrainIndices: trainIndices,
			TestIndices:  testIndices,
		}

		currentIdx += testSize
	}

	return folds, nil
}

var _ KFoldSplitter = (*KFold)(nil)
