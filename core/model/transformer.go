package model

import "gonum.org/v1/gonum/mat"

// Transformer はデータ変換のインターフェース
type Transformer interface {
	// Fit は変換に必要なパラメータを学習する
	Fit(X mat.Matrix) error

	// Transform は学習済みパラメータでデータを変換する
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform はFitとTransformを同時に実行する
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// RowTransformer は1サンプル単位で変換できる変換器
type RowTransformer interface {
	// TransformRow は新しいスライスに変換結果を返す
	TransformRow(row []float64) ([]float64, error)
}
