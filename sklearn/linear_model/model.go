package linear_model

import (
	"fmt"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/preprocessing"
	"gonum.org/v1/gonum/floats"
)

// TrainingState は学習ループの状態
type TrainingState int

const (
	// Initialized は初期重みが設定され、まだエポックを実行していない状態
	Initialized TrainingState = iota
	// Training はエポックを実行中の状態
	Training
	// Converged は前エポックから重みが変化せずに停止した状態
	Converged
	// DepthExhausted は最大エポック数に達して停止した状態
	DepthExhausted
)

// String は状態名を返す
func (s TrainingState) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Training:
		return "training"
	case Converged:
		return "converged"
	case DepthExhausted:
		return "depth_exhausted"
	default:
		return "unknown"
	}
}

// Model は学習済みのパーセプトロン。Train が返した後は変更されず、
// アクセサはコピーを返す
type Model struct {
	weights   []float64
	bias      float64
	subset    []int
	nFeatures int
	params    *preprocessing.StandardizationParams
	method    UpdateMethod
	epochs    int
	state     TrainingState
	history   []int
}

// Weights は重みベクトルのコピーを返す。要素はサブセットの列に対応する
func (m *Model) Weights() []float64 {
	w := make([]float64, len(m.weights))
	copy(w, m.weights)
	return w
}

// Bias は活性化に加える定数項を返す
func (m *Model) Bias() float64 { return m.bias }

// Subset はモデルが読む特徴量の列番号のコピーを返す
func (m *Model) Subset() []int {
	s := make([]int, len(m.subset))
	copy(s, m.subset)
	return s
}

// NumFeatures は受け付けるサンプルの特徴量数
func (m *Model) NumFeatures() int { return m.nFeatures }

// Standardization は保存された標準化パラメータのコピーを返す。なければnil
func (m *Model) Standardization() *preprocessing.StandardizationParams {
	return m.params.Clone()
}

// Method は最終学習で使った更新方式
func (m *Model) Method() UpdateMethod { return m.method }

// Epochs は実行したエポック数
func (m *Model) Epochs() int { return m.epochs }

// State は Converged か DepthExhausted
func (m *Model) State() TrainingState { return m.state }

// Converged は重みが安定して停止したかを返す
func (m *Model) Converged() bool { return m.state == Converged }

// History は各エポック後の訓練データの誤分類数を返す
func (m *Model) History() []int {
	h := make([]int, len(m.history))
	copy(h, m.history)
	return h
}

// Activation は生のサンプルに対する bias + Σ w[i]·x[subset[i]] を返す
// 標準化パラメータがあれば先に適用する
func (m *Model) Activation(sample []float64) (float64, error) {
	if len(sample) != m.nFeatures {
		return 0, errors.NewDimensionError("Model.Activation", m.nFeatures, len(sample), 1)
	}
	if m.params != nil {
		var err error
		if sample, err = m.params.TransformRow(sample); err != nil {
			return 0, err
		}
	}
	return m.activation(sample), nil
}

// PredictSample は活性化が正なら1、それ以外は0を返す
func (m *Model) PredictSample(sample []float64) (int, error) {
	a, err := m.Activation(sample)
	if err != nil {
		return 0, err
	}
	return labelOf(a), nil
}

// activation はサブセット上の重み付き和。幅が足りない行では panic する
func (m *Model) activation(x []float64) float64 {
	xs := make([]float64, len(m.subset))
	for k, j := range m.subset {
		xs[k] = x[j]
	}
	return m.bias + floats.Dot(m.weights, xs)
}

// String は文字列表現を返す
func (m *Model) String() string {
	return fmt.Sprintf("Model(method=%s, epochs=%d, state=%s, bias=%g, weights=%v, subset=%v)",
		m.method, m.epochs, m.state, m.bias, m.weights, m.subset)
}

func labelOf(activation float64) int {
	if activation > 0 {
		return 1
	}
	return 0
}

func signOf(activation float64) float64 {
	if activation > 0 {
		return 1
	}
	return -1
}

// targetSign はラベル1を+1、それ以外を-1に対応付ける
func targetSign(label int) float64 {
	if label == 1 {
		return 1
	}
	return -1
}

func sameWeights(a, b []float64, tol float64) bool {
	if tol == 0 {
		return floats.Equal(a, b)
	}
	return floats.EqualApprox(a, b, tol)
}
