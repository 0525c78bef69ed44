package model

import (
	"github.com/YuminosukeSato/perceptron/dataset"
	"gonum.org/v1/gonum/mat"
)

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit は特徴量行列Xと0/1ラベルの列ベクトルyで学習する
	Fit(X, y mat.Matrix) error
}

// DatasetFitter は属性メタデータ付きのデータセットで学習するモデル
type DatasetFitter interface {
	// FitDataset は属性検証を含めてデータセット全体で学習する
	FitDataset(ds *dataset.Dataset) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は各行のラベル(0/1)を n×1 行列で返す
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer はスコアを計算できるモデルのインターフェース
type Scorer interface {
	// Score は正解率を返す
	Score(X, y mat.Matrix) (float64, error)
}

// Classifier は二値分類器のインターフェース
type Classifier interface {
	Fitter
	DatasetFitter
	Predictor
	Scorer

	// PredictSample は1サンプルのラベルを返す
	PredictSample(sample []float64) (int, error)
}

// VotingClassifier は投票で予測するアンサンブル分類器
type VotingClassifier interface {
	Classifier

	// Votes はラベル0とラベル1への投票数を返す
	Votes(sample []float64) ([2]int, error)
}

// ParameterGetter はハイパーパラメータを公開するモデル
type ParameterGetter interface {
	// GetParams はハイパーパラメータを返す
	GetParams() map[string]interface{}
}
