package metrics

import (
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は正解率を計算する
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	wrong, n, err := countMismatches("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return 1.0 - float64(wrong)/float64(n), nil
}

// ClassificationError は誤分類率（0〜1）を計算する
func ClassificationError(yTrue, yPred *mat.VecDense) (float64, error) {
	wrong, n, err := countMismatches("ClassificationError", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return float64(wrong) / float64(n), nil
}

// AccuracyMatrix は n×1 行列形式の入力に対して正解率を計算する
func AccuracyMatrix(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 || cTrue == 0 {
		return 0, errors.NewValueError("AccuracyMatrix", "empty matrix")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyMatrix", rTrue, rPred, 0)
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("AccuracyMatrix", "must be a column vector (n×1 matrix)")
	}

	yTrueVec := mat.NewVecDense(rTrue, nil)
	yPredVec := mat.NewVecDense(rPred, nil)
	for i := 0; i < rTrue; i++ {
		yTrueVec.SetVec(i, yTrue.At(i, 0))
		yPredVec.SetVec(i, yPred.At(i, 0))
	}

	return Accuracy(yTrueVec, yPredVec)
}

// MisclassificationPercent は誤分類されたサンプルの割合を百分率（0〜100）で返す
func MisclassificationPercent(yTrue, yPred []int) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MisclassificationPercent", "empty labels")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("MisclassificationPercent", n, len(yPred), 0)
	}

	wrong := 0
	for i := range yTrue {
		if yTrue[i] != yPred[i] {
			wrong++
		}
	}
	return 100.0 * float64(wrong) / float64(n), nil
}

// ConfusionMatrix は二値ラベルの混同行列を返す
// 添字は [正解ラベル][予測ラベル]
func ConfusionMatrix(yTrue, yPred []int) ([2][2]int, error) {
	var cm [2][2]int
	if len(yTrue) != len(yPred) {
		return cm, errors.NewDimensionError("ConfusionMatrix", len(yTrue), len(yPred), 0)
	}
	for i := range yTrue {
		t, p := yTrue[i], yPred[i]
		if (t != 0 && t != 1) || (p != 0 && p != 1) {
			return cm, errors.NewValueError("ConfusionMatrix", "labels must be 0 or 1")
		}
		cm[t][p]++
	}
	return cm, nil
}

func countMismatches(op string, yTrue, yPred *mat.VecDense) (int, int, error) {
	if yTrue == nil || yPred == nil || yTrue.Len() == 0 {
		return 0, 0, errors.NewValueError(op, "empty vector")
	}
	n := yTrue.Len()
	if yPred.Len() != n {
		return 0, 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}

	wrong := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) != yPred.AtVec(i) {
			wrong++
		}
	}
	return wrong, n, nil
}
