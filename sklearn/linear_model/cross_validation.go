package linear_model

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/perceptron/dataset"
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/model_selection"
	"github.com/YuminosukeSato/perceptron/pkg/log"
)

// FoldResult は1つの分割における両方式の誤分類率（百分率）
type FoldResult struct {
	Fold         int
	TrainSize    int
	TestSize     int
	OnlineError  float64
	OfflineError float64
}

// CrossValidationResult は更新方式選択の結果
type CrossValidationResult struct {
	// OnlineError と OfflineError は分割ごとの誤分類率の平均（百分率）
	OnlineError  float64
	OfflineError float64
	Folds        []FoldResult
	// Selected は Offline の平均誤差が厳密に小さい場合のみ Offline、それ以外は Online
	Selected UpdateMethod
}

// SelectUpdateMethod は連続したk分割交差検証でオンライン更新とオフライン更新を比較し、
// 最終学習で使う更新方式を返す
//
// 初期重みは分割ごとに rng から1回だけ生成し、両方式で共有する。
// Offline の平均誤差が厳密に小さい場合のみ Offline を選び、同点なら Online。
// subset が nil なら全特徴量、rng が nil ならシードなしの乱数生成器を使う。
func SelectUpdateMethod(ds *dataset.Dataset, subset []int, cfg Config, rng *rand.Rand) (*CrossValidationResult, error) {
	if rng == nil {
		rng = newUnseededRand()
	}
	if subset == nil {
		subset = FullSubset(ds.NumFeatures())
	}

	folds, err := model_selection.NewKFold(cfg.Folds, false, 0).Split(ds.NumSamples())
	if err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("linear_model").With(log.OperationKey, log.OperationCrossValidate)
	result := &CrossValidationResult{Folds: make([]FoldResult, 0, len(folds))}

	for i, fold := range folds {
		train, err := ds.Subset(fold.TrainIndices)
		if err != nil {
			return nil, err
		}
		test, err := ds.Subset(fold.TestIndices)
		if err != nil {
			return nil, err
		}

		initial := InitWeights(len(subset), cfg, rng)
		online := Train(train, subset, initial, cfg, Online)
		offline := Train(train, subset, initial, cfg, Offline)

		onErr, err := heldOutError(online, test)
		if err != nil {
			return nil, err
		}
		offErr, err := heldOutError(offline, test)
		if err != nil {
			return nil, err
		}

		result.Folds = append(result.Folds, FoldResult{
			Fold:         i,
			TrainSize:    train.NumSamples(),
			TestSize:     test.NumSamples(),
			OnlineError:  onErr,
			OfflineError: offErr,
		})
		result.OnlineError += onErr
		result.OfflineError += offErr

		logger.Debug("Fold evaluated",
			log.FoldKey, i,
			"online_error", onErr,
			"offline_error", offErr,
		)
	}

	k := float64(len(folds))
	result.OnlineError /= k
	result.OfflineError /= k

	result.Selected = Online
	if result.OfflineError < result.OnlineError {
		result.Selected = Offline
	}

	logger.Debug("Update method selected",
		log.UpdateMethodKey, result.Selected.String(),
		"online_error", result.OnlineError,
		"offline_error", result.OfflineError,
	)
	return result, nil
}

// heldOutError は誤分類率を百分率で返す。整数への切り捨ては行わない
func heldOutError(m *Model, test *dataset.Dataset) (float64, error) {
	preds := make([]int, test.NumSamples())
	for i := range preds {
		preds[i] = labelOf(m.activation(test.RowView(i)))
	}
	return metrics.MisclassificationPercent(test.Labels(), preds)
}
