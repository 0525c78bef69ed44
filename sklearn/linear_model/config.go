package linear_model

import (
	"math"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/preprocessing"
)

// UpdateMethod は重みの更新方式
type UpdateMethod int

const (
	// Online はサンプルごとに即座に重みを更新する
	Online UpdateMethod = iota
	// Offline はエポック開始時の重みで差分を累積し、エポック終了時にまとめて適用する
	Offline
)

// String は更新方式の名前を返す
func (m UpdateMethod) String() string {
	if m == Offline {
		return "offline"
	}
	return "online"
}

// DefaultTolerance は連続する2エポックの重みを同一とみなす絶対・相対許容誤差
const DefaultTolerance = 1e-12

// Config はパーセプトロンのハイパーパラメータ
type Config struct {
	// RandomizeWeights が true なら初期重みを [-0.5, 0.5) の一様乱数で生成する
	RandomizeWeights bool
	// WeightFillValue は RandomizeWeights が false の時の初期重み
	WeightFillValue float64
	// LearningRate は更新幅の係数
	LearningRate float64
	// Depth は最大エポック数
	Depth int
	// Bias は活性化に加える定数項。学習では更新されない
	Bias float64
	// CheckAttributes が true なら学習前に全特徴量が数値か検証する
	CheckAttributes bool
	// Standardize が true なら学習前に特徴量を標準化する
	Standardize bool
	// UpdateMethod は交差検証を使わない時の更新方式
	UpdateMethod UpdateMethod
	// UseCrossValidation が true なら交差検証で更新方式を選ぶ
	UseCrossValidation bool
	// Folds は交差検証の分割数
	Folds int
	// Tolerance は収束判定の許容誤差。0なら完全一致
	Tolerance float64
	// ZeroStd は標準偏差0の列の扱い
	ZeroStd preprocessing.ZeroStdPolicy
}

// DefaultConfig は単純パーセプトロンの既定値を返す
func DefaultConfig() Config {
	return Config{
		RandomizeWeights: true,
		WeightFillValue:  1.0,
		LearningRate:     1.0,
		Depth:            10,
		Bias:             0.0,
		CheckAttributes:  true,
		UpdateMethod:     Online,
		Folds:            4,
		Tolerance:        DefaultTolerance,
		ZeroStd:          preprocessing.ZeroStdPreserve,
	}
}

// EnhancedConfig は標準化と交差検証を有効にした既定値を返す
func EnhancedConfig() Config {
	cfg := DefaultConfig()
	cfg.Standardize = true
	cfg.UpdateMethod = Offline
	cfg.UseCrossValidation = true
	return cfg
}

// Validate はハイパーパラメータを検証する。値を補正することはない
func (c Config) Validate() error {
	if c.Depth < 1 {
		return errors.NewConfigurationError("depth", "must be at least 1", c.Depth)
	}
	if !(c.LearningRate > 0) || math.IsInf(c.LearningRate, 0) {
		return errors.NewConfigurationError("learning_rate", "must be a positive finite number", c.LearningRate)
	}
	if c.UseCrossValidation && c.Folds < 2 {
		return errors.NewConfigurationError("folds", "must be at least 2", c.Folds)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) {
		return errors.NewConfigurationError("tolerance", "must be non-negative", c.Tolerance)
	}
	if c.UpdateMethod != Online && c.UpdateMethod != Offline {
		return errors.NewConfigurationError("update_method", "must be online or offline", int(c.UpdateMethod))
	}
	if c.ZeroStd != preprocessing.ZeroStdPreserve && c.ZeroStd != preprocessing.ZeroStdGuard {
		return errors.NewConfigurationError("zero_std", "unknown policy", int(c.ZeroStd))
	}
	return nil
}

// params はログと GetParams 用のマップを返す
func (c Config) params() map[string]interface{} {
	return map[string]interface{}{
		"randomize_weights":    c.RandomizeWeights,
		"weight_fill_value":    c.WeightFillValue,
		"learning_rate":        c.LearningRate,
		"depth":                c.Depth,
		"bias":                 c.Bias,
		"check_attributes":     c.CheckAttributes,
		"standardize":          c.Standardize,
		"update_method":        c.UpdateMethod.String(),
		"use_cross_validation": c.UseCrossValidation,
		"folds":                c.Folds,
		"tolerance":            c.Tolerance,
		"zero_std":             c.ZeroStd.String(),
	}
}
