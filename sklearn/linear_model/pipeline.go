package linear_model

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/perceptron/dataset"
	"github.com/YuminosukeSato/perceptron/preprocessing"
)

// FitModel はdsで学習パイプライン全体を実行し、学習済みモデルと交差検証の結果
// （無効ならnil）を返す
//
// 処理順: 設定の検証、属性の検証、dsのコピーの標準化、初期重みの生成、
// 更新方式の選択、学習。subset が nil なら全特徴量を使い、nil でなければ
// ValidateSubset を満たす必要がある。呼び出し側のデータセットは変更しない。
// rng が nil ならシードなしの乱数生成器を使う。
func FitModel(ds *dataset.Dataset, cfg Config, subset []int, rng *rand.Rand) (*Model, *CrossValidationResult, error) {
	if rng == nil {
		rng = newUnseededRand()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if cfg.CheckAttributes {
		if err := ds.ValidateNumeric(); err != nil {
			return nil, nil, err
		}
	}

	if subset == nil {
		subset = FullSubset(ds.NumFeatures())
	} else if err := ValidateSubset(subset, ds.NumFeatures()); err != nil {
		return nil, nil, err
	}

	train := ds
	var params *preprocessing.StandardizationParams
	if cfg.Standardize {
		s := preprocessing.NewStandardizer(cfg.ZeroStd)
		if err := s.FitDataset(ds); err != nil {
			return nil, nil, err
		}
		train = ds.Clone()
		if err := s.TransformDatasetInPlace(train); err != nil {
			return nil, nil, err
		}
		params = s.Params
	}

	initial := InitWeights(len(subset), cfg, rng)

	method := cfg.UpdateMethod
	var cv *CrossValidationResult
	if cfg.UseCrossValidation {
		var err error
		if cv, err = SelectUpdateMethod(train, subset, cfg, rng); err != nil {
			return nil, nil, err
		}
		method = cv.Selected
	}

	m := Train(train, subset, initial, cfg, method)
	m.params = params
	return m, cv, nil
}
