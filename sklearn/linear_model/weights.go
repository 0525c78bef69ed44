package linear_model

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
)

// InitWeights は長さnの初期重みベクトルを生成する
//
// cfg.RandomizeWeights が true の場合は各要素を rng から [-0.5, 0.5) の一様乱数で、
// false の場合は cfg.WeightFillValue で埋める。バイアスは含まない。
func InitWeights(n int, cfg Config, rng *rand.Rand) []float64 {
	w := make([]float64, n)
	if cfg.RandomizeWeights {
		for i := range w {
			w[i] = rng.Float64() - 0.5
		}
		return w
	}
	for i := range w {
		w[i] = cfg.WeightFillValue
	}
	return w
}

// FullSubset は [0, n) の全特徴量を昇順で返す
func FullSubset(n int) []int {
	subset := make([]int, n)
	for i := range subset {
		subset[i] = i
	}
	return subset
}

// ValidateSubset は特徴量の部分集合が昇順・重複なし・[0, nFeatures) の範囲内かを検証する
func ValidateSubset(subset []int, nFeatures int) error {
	if len(subset) == 0 {
		return errors.NewConfigurationError("feature_subset", "must not be empty", subset)
	}
	if len(subset) > nFeatures {
		return errors.NewConfigurationError("feature_subset", "larger than the number of features", len(subset))
	}
	for i, idx := range subset {
		if idx < 0 || idx >= nFeatures {
			return errors.NewConfigurationError("feature_subset", "index out of range", idx)
		}
		if i > 0 && idx <= subset[i-1] {
			return errors.NewConfigurationError("feature_subset", "indices must be strictly increasing", subset)
		}
	}
	return nil
}

func newSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newUnseededRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
