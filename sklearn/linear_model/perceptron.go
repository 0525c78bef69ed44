package linear_model

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/YuminosukeSato/perceptron/core/model"
	"github.com/YuminosukeSato/perceptron/dataset"
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"github.com/YuminosukeSato/perceptron/preprocessing"
	"gonum.org/v1/gonum/mat"
)

// Perceptron は二値分類のパーセプトロン
//
// NewPerceptron はサンプルごとに重みを更新する単純パーセプトロン、
// NewEnhancedPerceptron は標準化と交差検証による更新方式の自動選択を行う。
// どちらも同じ型で、違いは Config の既定値だけである。
type Perceptron struct {
	model.BaseEstimator

	name   string
	cfg    Config
	subset []int
	rng    *rand.Rand

	// 学習結果
	trained *Model
	cv      *CrossValidationResult

	mu sync.RWMutex
}

// Option は設定オプション
type Option func(*Perceptron)

// NewPerceptron は単純パーセプトロンを作成
//
// 既定値: 初期重みは乱数、学習率1、最大10エポック、バイアス0、オンライン更新
func NewPerceptron(opts ...Option) *Perceptron {
	return newPerceptron("Perceptron", DefaultConfig(), opts)
}

// NewEnhancedPerceptron は標準化と交差検証を有効にしたパーセプトロンを作成
//
// 既定値: NewPerceptron に加えて標準化あり、4分割の交差検証で更新方式を選択
func NewEnhancedPerceptron(opts ...Option) *Perceptron {
	return newPerceptron("EnhancedPerceptron", EnhancedConfig(), opts)
}

func newPerceptron(name string, cfg Config, opts []Option) *Perceptron {
	p := &Perceptron{name: name, cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithConfig は設定全体を置き換える
func WithConfig(cfg Config) Option {
	return func(p *Perceptron) {
		p.cfg = cfg
	}
}

// WithLearningRate は学習率を設定
func WithLearningRate(lr float64) Option {
	return func(p *Perceptron) {
		p.cfg.LearningRate = lr
	}
}

// WithDepth は最大エポック数を設定
func WithDepth(depth int) Option {
	return func(p *Perceptron) {
		p.cfg.Depth = depth
	}
}

// WithRandomizeWeights は初期重みを乱数で生成するかを設定
func WithRandomizeWeights(randomize bool) Option {
	return func(p *Perceptron) {
		p.cfg.RandomizeWeights = randomize
	}
}

// WithWeightFillValue は固定初期重みの値を設定
func WithWeightFillValue(v float64) Option {
	return func(p *Perceptron) {
		p.cfg.WeightFillValue = v
	}
}

// WithBias はバイアスを設定
func WithBias(bias float64) Option {
	return func(p *Perceptron) {
		p.cfg.Bias = bias
	}
}

// WithCheckAttributes は属性の型検証の有無を設定
func WithCheckAttributes(check bool) Option {
	return func(p *Perceptron) {
		p.cfg.CheckAttributes = check
	}
}

// WithStandardize は標準化の有無を設定
func WithStandardize(standardize bool) Option {
	return func(p *Perceptron) {
		p.cfg.Standardize = standardize
	}
}

// WithUpdateMethod は交差検証を使わない時の更新方式を設定
func WithUpdateMethod(method UpdateMethod) Option {
	return func(p *Perceptron) {
		p.cfg.UpdateMethod = method
	}
}

// WithCrossValidation は交差検証による更新方式選択の有無を設定
func WithCrossValidation(enabled bool) Option {
	return func(p *Perceptron) {
		p.cfg.UseCrossValidation = enabled
	}
}

// WithFolds は交差検証の分割数を設定
func WithFolds(folds int) Option {
	return func(p *Perceptron) {
		p.cfg.Folds = folds
	}
}

// WithTolerance は収束判定の許容誤差を設定。0で完全一致
func WithTolerance(tol float64) Option {
	return func(p *Perceptron) {
		p.cfg.Tolerance = tol
	}
}

// WithZeroStdPolicy は標準偏差0の列の扱いを設定
func WithZeroStdPolicy(policy preprocessing.ZeroStdPolicy) Option {
	return func(p *Perceptron) {
		p.cfg.ZeroStd = policy
	}
}

// WithRand は乱数生成器を設定
func WithRand(rng *rand.Rand) Option {
	return func(p *Perceptron) {
		p.rng = rng
	}
}

// WithRandomState は乱数シードを設定
func WithRandomState(seed uint64) Option {
	return func(p *Perceptron) {
		p.rng = newSeededRand(seed)
	}
}

// WithFeatureSubset は学習に使う特徴量の列を固定する
func WithFeatureSubset(subset []int) Option {
	return func(p *Perceptron) {
		p.subset = append([]int(nil), subset...)
	}
}

// Fit はモデルを訓練データで学習
// y は 0/1 ラベルの n×1 行列
func (p *Perceptron) Fit(X, y mat.Matrix) error {
	ds, err := dataset.FromMatrix(X, y)
	if err != nil {
		return err
	}
	return p.FitDataset(ds)
}

// FitDataset は属性メタデータ付きのデータセットで学習
func (p *Perceptron) FitDataset(ds *dataset.Dataset) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rng == nil {
		p.rng = newUnseededRand()
	}

	logger := log.GetLoggerWithName("linear_model").With(log.ModelNameKey, p.name)
	start := time.Now()
	logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.NumSamples(),
		log.FeaturesKey, ds.NumFeatures(),
		log.LearningRateKey, p.cfg.LearningRate,
		log.DepthKey, p.cfg.Depth,
	)

	m, cv, err := FitModel(ds, p.cfg, p.subset, p.rng)
	if err != nil {
		logger.Error("Training failed", err, log.OperationKey, log.OperationFit)
		return err
	}

	if cv != nil {
		logger.Info("Update method selected",
			log.OperationKey, log.OperationCrossValidate,
			log.UpdateMethodKey, cv.Selected.String(),
			"online_error", cv.OnlineError,
			"offline_error", cv.OfflineError,
		)
	}
	if m.State() == DepthExhausted {
		errors.Warn(errors.NewConvergenceWarning(p.name, m.Epochs(), "weights were still changing when depth was reached"))
	}
	if err := errors.CheckNumericalStability(p.name+".Fit", m.weights, m.epochs); err != nil {
		errors.Warn(err)
	}

	p.trained = m
	p.cv = cv
	p.SetFitted()

	logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.EpochKey, m.Epochs(),
		log.ConvergedKey, m.Converged(),
		log.UpdateMethodKey, m.Method().String(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は入力データの各行のラベルを n×1 行列で返す
func (p *Perceptron) Predict(X mat.Matrix) (mat.Matrix, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.IsFitted() {
		return nil, errors.NewNotFittedError(p.name, "Predict")
	}

	rows, cols := X.Dims()
	if cols != p.trained.NumFeatures() {
		return nil, errors.NewDimensionError(p.name+".Predict", p.trained.NumFeatures(), cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		label, err := p.trained.PredictSample(row)
		if err != nil {
			return nil, err
		}
		predictions.Set(i, 0, float64(label))
	}
	return predictions, nil
}

// PredictSample は1サンプルのラベルを返す
func (p *Perceptron) PredictSample(sample []float64) (int, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.IsFitted() {
		return 0, errors.NewNotFittedError(p.name, "PredictSample")
	}
	return p.trained.PredictSample(sample)
}

// Score は正解率を返す
func (p *Perceptron) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := p.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, predictions)
}

// Model は学習済みモデルを返す。未学習ならnil
func (p *Perceptron) Model() *Model {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trained
}

// CrossValidation は直近の学習での交差検証結果を返す。無効ならnil
func (p *Perceptron) CrossValidation() *CrossValidationResult {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cv
}

// Config は現在の設定を返す
func (p *Perceptron) Config() Config {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cfg
}

// GetParams はハイパーパラメータを返す
func (p *Perceptron) GetParams() map[string]interface{} {
	p.mu.RLock()
	defer p.mu.RUnlock()

	params := p.cfg.params()
	params["feature_subset"] = append([]int(nil), p.subset...)
	params["fitted"] = p.IsFitted()
	return params
}

// String は文字列表現を返す
func (p *Perceptron) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.IsFitted() {
		return fmt.Sprintf("%s(learning_rate=%g, depth=%d, standardize=%t, cross_validation=%t)",
			p.name, p.cfg.LearningRate, p.cfg.Depth, p.cfg.Standardize, p.cfg.UseCrossValidation)
	}
	return fmt.Sprintf("%s(method=%s, epochs=%d, state=%s, n_features=%d)",
		p.name, p.trained.Method(), p.trained.Epochs(), p.trained.State(), p.trained.NumFeatures())
}

var (
	_ model.Classifier      = (*Perceptron)(nil)
	_ model.DatasetFitter   = (*Perceptron)(nil)
	_ model.ParameterGetter = (*Perceptron)(nil)
)
