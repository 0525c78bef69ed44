package linear_model

import (
	"fmt"

	"github.com/YuminosukeSato/perceptron/dataset"
	"gonum.org/v1/gonum/floats"
)

// Train は initial のコピーから始めて、重みが変化しなくなるか cfg.Depth
// エポックに達するまでdsでエポックを繰り返す
//
// subset の列だけを読む。initial の長さが subset と異なる場合や、行の幅が
// subset の最大列番号に満たない場合はプログラミングエラーとして panic する。
// 公開の推定器は Train を呼ぶ前に次元を検証する。
func Train(ds *dataset.Dataset, subset []int, initial []float64, cfg Config, method UpdateMethod) *Model {
	if len(initial) != len(subset) {
		panic(fmt.Sprintf("linear_model.Train: %d initial weights for %d subset features", len(initial), len(subset)))
	}

	m := &Model{
		weights:   append([]float64(nil), initial...),
		bias:      cfg.Bias,
		subset:    append([]int(nil), subset...),
		nFeatures: ds.NumFeatures(),
		method:    method,
		state:     Initialized,
	}

	t := &trainer{
		ds:     ds,
		subset: m.subset,
		bias:   cfg.Bias,
		step:   0.5 * cfg.LearningRate,
		xs:     make([]float64, len(subset)),
		delta:  make([]float64, len(subset)),
	}

	prev := make([]float64, len(m.weights))
	m.state = Training
	for {
		copy(prev, m.weights)
		if method == Offline {
			t.offlineEpoch(m.weights)
		} else {
			t.onlineEpoch(m.weights)
		}
		m.epochs++
		m.history = append(m.history, t.misclassified(m.weights))

		if sameWeights(prev, m.weights, cfg.Tolerance) {
			m.state = Converged
			break
		}
		if m.epochs >= cfg.Depth {
			m.state = DepthExhausted
			break
		}
	}
	return m
}

type trainer struct {
	ds     *dataset.Dataset
	subset []int
	bias   float64
	step   float64
	xs     []float64
	delta  []float64
}

// gather はサブセットの列を作業バッファにコピーする
func (t *trainer) gather(i int) []float64 {
	row := t.ds.RowView(i)
	for k, j := range t.subset {
		t.xs[k] = row[j]
	}
	return t.xs
}

func (t *trainer) activation(w, xs []float64) float64 {
	return t.bias + floats.Dot(w, xs)
}

// onlineEpoch は各サンプルの直後に w[i] += 0.5·lr·c·x[i] を適用する
func (t *trainer) onlineEpoch(w []float64) {
	for i := 0; i < t.ds.NumSamples(); i++ {
		xs := t.gather(i)
		c := targetSign(t.ds.Label(i)) - signOf(t.activation(w, xs))
		floats.AddScaled(w, t.step*c, xs)
	}
}

// offlineEpoch はエポック開始時の重みで差分を累積し、最後にまとめて適用する
func (t *trainer) offlineEpoch(w []float64) {
	for k := range t.delta {
		t.delta[k] = 0
	}
	for i := 0; i < t.ds.NumSamples(); i++ {
		xs := t.gather(i)
		c := targetSign(t.ds.Label(i)) - signOf(t.activation(w, xs))
		floats.AddScaled(t.delta, t.step*c, xs)
	}
	floats.Add(w, t.delta)
}

func (t *trainer) misclassified(w []float64) int {
	wrong := 0
	for i := 0; i < t.ds.NumSamples(); i++ {
		if labelOf(t.activation(w, t.gather(i))) != t.ds.Label(i) {
			wrong++
		}
	}
	return wrong
}
