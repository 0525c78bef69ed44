package model_selection

import (
	"sort"
	"testing"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKFold(t *testing.T) {
	t.Run("Contiguous split", func(t *testing.T) {
		kf := NewKFold(3, false, 0)
		assert.Equal(t, 3, kf.GetNSplits())

		folds, err := kf.Split(7)
		require.NoError(t, err)

		// The first n%k folds take one extra row
		want := []CVFold{
			{TestIndices: []int{0, 1, 2}, TrainIndices: []int{3, 4, 5, 6}},
			{TestIndices: []int{3, 4}, TrainIndices: []int{0, 1, 2, 5, 6}},
			{TestIndices: []int{5, 6}, TrainIndices: []int{0, 1, 2, 3, 4}},
		}
		assert.Equal(t, want, folds)
	})

	t.Run("KFold with shuffle", func(t *testing.T) {
		folds, err := NewKFold(4, true, 42).Split(10)
		require.NoError(t, err)
		require.Len(t, folds, 4)

		var seen []int
		for i, fold := range folds {
			assert.Equal(t, 10, len(fold.TrainIndices)+len(fold.TestIndices), "Fold %d size", i)

			testSet := make(map[int]bool)
			for _, idx := range fold.TestIndices {
				testSet[idx] = true
			}
			for _, idx := range fold.TrainIndices {
				assert.False(t, testSet[idx], "Train index %d in test set", idx)
			}
			seen = append(seen, fold.TestIndices...)
		}

		// Each index should appear exactly once as test
		sort.Ints(seen)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)

		again, err := NewKFold(4, true, 42).Split(10)
		require.NoError(t, err)
		assert.Equal(t, folds, again, "same seed should produce the same folds")
	})

	t.Run("Invalid number of folds", func(t *testing.T) {
		tests := []struct {
			name    string
			splits  int
			samples int
		}{
			{"one fold", 1, 10},
			{"zero folds", 0, 10},
			{"more folds than rows", 5, 3},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewKFold(tt.splits, false, 0).Split(tt.samples)
				require.Error(t, err)

				var ce *errors.ConfigurationError
				require.True(t, errors.As(err, &ce), "expected ConfigurationError, got %T", err)
				assert.Equal(t, "folds", ce.ParamName)
			})
		}
	})
}
