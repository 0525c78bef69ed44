package preprocessing

import (
	"fmt"

	"github.com/YuminosukeSato/perceptron/core/model"
	"github.com/YuminosukeSato/perceptron/dataset"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ZeroStdPolicy は標準偏差が0の列の扱いを決める
type ZeroStdPolicy int

const (
	// ZeroStdPreserve は0で割り、±InfやNaNをそのまま残す（既定）
	ZeroStdPreserve ZeroStdPolicy = iota
	// ZeroStdGuard は標準偏差を1として扱い、列を v-mean (=0) にする
	ZeroStdGuard
)

// String はポリシー名を返す
func (p ZeroStdPolicy) String() string {
	if p == ZeroStdGuard {
		return "guard"
	}
	return "preserve"
}

// StandardizationParams は学習データから計算した列ごとの平均と母標準偏差
// 一度計算したら変更せず、推論時のサンプルにも同じ値を使う
type StandardizationParams struct {
	Mean   []float64
	StdDev []float64
}

// Clone はディープコピーを返す
func (p *StandardizationParams) Clone() *StandardizationParams {
	if p == nil {
		return nil
	}
	c := &StandardizationParams{
		Mean:   make([]float64, len(p.Mean)),
		StdDev: make([]float64, len(p.StdDev)),
	}
	copy(c.Mean, p.Mean)
	copy(c.StdDev, p.StdDev)
	return c
}

// Apply は1つの値を列jのパラメータで標準化する
func (p *StandardizationParams) Apply(j int, v float64) float64 {
	return (v - p.Mean[j]) / p.StdDev[j]
}

// TransformRow はサンプルを標準化した新しいスライスを返す
func (p *StandardizationParams) TransformRow(row []float64) ([]float64, error) {
	if len(row) != len(p.Mean) {
		return nil, errors.NewDimensionError("StandardizationParams.TransformRow", len(p.Mean), len(row), 1)
	}
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = p.Apply(j, v)
	}
	return out, nil
}

// Standardizer はデータを平均0・分散1に変換する
// 分散は母分散（Nで割る）を使う
type Standardizer struct {
	model.BaseEstimator

	// Params は学習済みの平均と標準偏差
	Params *StandardizationParams

	// NFeatures は特徴量の数
	NFeatures int

	// ZeroStd は標準偏差0の列の扱い
	ZeroStd ZeroStdPolicy

	// ZeroStdColumns は学習データで定数だった列
	ZeroStdColumns []int
}

// NewStandardizer は新しいStandardizerを作成する
//
// 使用例:
//
//	s := preprocessing.NewStandardizer(preprocessing.ZeroStdPreserve)
//	err := s.FitDataset(ds)
//	err = s.TransformDatasetInPlace(ds)
func NewStandardizer(policy ZeroStdPolicy) *Standardizer {
	return &Standardizer{ZeroStd: policy}
}

// Fit は訓練データから列ごとの平均と母標準偏差を計算する
func (s *Standardizer) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("Standardizer.Fit", "empty data", errors.ErrEmptyData)
	}

	params := &StandardizationParams{
		Mean:   make([]float64, c),
		StdDev: make([]float64, c),
	}
	var zero []int

	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, X)
		params.Mean[j], params.StdDev[j] = stat.PopMeanStdDev(col, nil)

		if params.StdDev[j] == 0 {
			zero = append(zero, j)
			if s.ZeroStd == ZeroStdGuard {
				params.StdDev[j] = 1.0
			}
		}
	}

	s.Params = params
	s.NFeatures = c
	s.ZeroStdColumns = zero

	if len(zero) > 0 {
		log.GetLoggerWithName("preprocessing").Debug("Constant columns found",
			log.ModelNameKey, "Standardizer",
			"columns", zero,
			"policy", s.ZeroStd.String(),
		)
		if s.ZeroStd == ZeroStdPreserve {
			errors.Warn(errors.NewNumericHazardWarning("Standardizer.Fit", zero))
		}
	}

	s.SetFitted()
	return nil
}

// FitDataset はデータセットの特徴量行列で学習する
func (s *Standardizer) FitDataset(ds *dataset.Dataset) error {
	return s.Fit(ds.Matrix())
}

// Transform は学習済みの統計情報を使ってデータを標準化する
func (s *Standardizer) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("Standardizer", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("Standardizer.Transform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return s.Params.Apply(j, v)
	}, X)
	return result, nil
}

// TransformDatasetInPlace はデータセットの値を直接書き換える
func (s *Standardizer) TransformDatasetInPlace(ds *dataset.Dataset) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError("Standardizer", "TransformDatasetInPlace")
	}
	if ds.NumFeatures() != s.NFeatures {
		return errors.NewDimensionError("Standardizer.TransformDatasetInPlace", s.NFeatures, ds.NumFeatures(), 1)
	}
	ds.TransformInPlace(func(_, j int, v float64) float64 {
		return s.Params.Apply(j, v)
	})
	return nil
}

// TransformRow は1サンプルを標準化する
func (s *Standardizer) TransformRow(row []float64) ([]float64, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("Standardizer", "TransformRow")
	}
	return s.Params.TransformRow(row)
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (s *Standardizer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化されたデータを元のスケールに戻す
func (s *Standardizer) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("Standardizer", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("Standardizer.InverseTransform", s.NFeatures, c, 1)
	}

	result := mat.NewDense(r, c, nil)
	result.Apply(func(_, j int, v float64) float64 {
		return v*s.Params.StdDev[j] + s.Params.Mean[j]
	}, X)
	return result, nil
}

// HasHazard は標準化後の値が有限でない列が残るかを返す
func (s *Standardizer) HasHazard() bool {
	return s.ZeroStd == ZeroStdPreserve && len(s.ZeroStdColumns) > 0
}

// GetParams はパラメータを取得する
func (s *Standardizer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"zero_std": s.ZeroStd.String(),
	}
}

// String は文字列表現を返す
func (s *Standardizer) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("Standardizer(zero_std=%s)", s.ZeroStd)
	}
	return fmt.Sprintf("Standardizer(zero_std=%s, n_features=%d)", s.ZeroStd, s.NFeatures)
}

var _ model.Transformer = (*Standardizer)(nil)
var _ model.RowTransformer = (*Standardizer)(nil)
