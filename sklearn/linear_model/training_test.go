package linear_model

import (
	"testing"

	"github.com/YuminosukeSato/perceptron/dataset"
	"gonum.org/v1/gonum/floats"
)

func mustDataset(t *testing.T, rows [][]float64, labels []int) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(rows, labels)
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return ds
}

// separableDataset は2つのよく分離したクラスタ（正例は(2,2)付近、負例は(-2,-2)付近）
func separableDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	offsets := [][2]float64{
		{-0.5, 0.3}, {0.2, -0.4}, {0.4, 0.4}, {-0.3, -0.2},
		{0.1, 0.5}, {-0.4, 0.1}, {0.5, -0.1}, {0.0, 0.0},
	}
	var rows [][]float64
	var labels []int
	for _, o := range offsets {
		rows = append(rows, []float64{2 + o[0], 2 + o[1]})
		labels = append(labels, 1)
		rows = append(rows, []float64{-2 - o[1], -2 + o[0]})
		labels = append(labels, 0)
	}
	return mustDataset(t, rows, labels)
}

func fixedConfig(fill float64, depth int) Config {
	cfg := DefaultConfig()
	cfg.RandomizeWeights = false
	cfg.WeightFillValue = fill
	cfg.Depth = depth
	return cfg
}

func TestTrainSingleEpoch(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {1, 0}}, []int{1, 0})
	cfg := fixedConfig(0, 1)
	initial := []float64{0, 0}

	tests := []struct {
		name   string
		method UpdateMethod
		want   []float64
	}{
		// 2番目のサンプルは更新直後の重み [1,1] で評価される
		{"online", Online, []float64{0, 1}},
		// 2番目のサンプルもエポック開始時の重み [0,0] で評価される
		{"offline", Offline, []float64{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Train(ds, []int{0, 1}, initial, cfg, tt.method)
			if !floats.Equal(m.Weights(), tt.want) {
				t.Errorf("weights = %v, want %v", m.Weights(), tt.want)
			}
			if m.Epochs() != 1 {
				t.Errorf("epochs = %d, want 1", m.Epochs())
			}
			if m.State() != DepthExhausted {
				t.Errorf("state = %s, want depth_exhausted", m.State())
			}
			if m.Method() != tt.method {
				t.Errorf("method = %s, want %s", m.Method(), tt.method)
			}
		})
	}

	if initial[0] != 0 || initial[1] != 0 {
		t.Errorf("Train modified the initial weights: %v", initial)
	}
}

func TestTrainConverges(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 0}, {0, 1}}, []int{1, 0})
	m := Train(ds, []int{0, 1}, []float64{0, 0}, fixedConfig(0, 10), Online)

	if m.State() != Converged {
		t.Fatalf("state = %s, want converged", m.State())
	}
	if m.Epochs() != 2 {
		t.Errorf("epochs = %d, want 2", m.Epochs())
	}
	if !floats.Equal(m.Weights(), []float64{1, 0}) {
		t.Errorf("weights = %v, want [1 0]", m.Weights())
	}
	if h := m.History(); len(h) != 2 || h[0] != 0 || h[1] != 0 {
		t.Errorf("history = %v, want [0 0]", h)
	}
}

func TestTrainDeterministic(t *testing.T) {
	ds := separableDataset(t)
	cfg := fixedConfig(1, 50)

	for _, method := range []UpdateMethod{Online, Offline} {
		t.Run(method.String(), func(t *testing.T) {
			a := Train(ds, []int{0, 1}, InitWeights(2, cfg, nil), cfg, method)
			b := Train(ds, []int{0, 1}, InitWeights(2, cfg, nil), cfg, method)
			if !floats.Equal(a.Weights(), b.Weights()) {
				t.Errorf("runs differ: %v vs %v", a.Weights(), b.Weights())
			}
			if a.Epochs() != b.Epochs() {
				t.Errorf("epochs differ: %d vs %d", a.Epochs(), b.Epochs())
			}
		})
	}
}

func TestTrainSeparableReachesZeroError(t *testing.T) {
	ds := separableDataset(t)

	for _, fill := range []float64{0, 1, -1, -3} {
		for _, method := range []UpdateMethod{Online, Offline} {
			m := Train(ds, []int{0, 1}, InitWeights(2, fixedConfig(fill, 50), nil), fixedConfig(fill, 50), method)
			wrong := 0
			for i := 0; i < ds.NumSamples(); i++ {
				label, err := m.PredictSample(ds.Row(i))
				if err != nil {
					t.Fatalf("PredictSample failed: %v", err)
				}
				if label != ds.Label(i) {
					wrong++
				}
			}
			if wrong != 0 {
				t.Errorf("fill=%v %s: %d training errors, want 0 (weights %v)", fill, method, wrong, m.Weights())
			}
			h := m.History()
			if h[len(h)-1] != 0 {
				t.Errorf("fill=%v %s: last history entry = %d, want 0", fill, method, h[len(h)-1])
			}
		}
	}
}

func TestTrainBiasIsNotUpdated(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {1, 0}}, []int{1, 0})
	cfg := fixedConfig(0, 5)
	cfg.Bias = -0.25

	m := Train(ds, []int{0, 1}, []float64{0, 0}, cfg, Online)
	if m.Bias() != -0.25 {
		t.Errorf("bias = %v, want -0.25", m.Bias())
	}
}

func TestTrainSubsetReadsOnlySelectedColumns(t *testing.T) {
	ds := mustDataset(t, [][]float64{{100, 1}, {-100, -1}}, []int{1, 0})
	m := Train(ds, []int{1}, []float64{0}, fixedConfig(0, 10), Online)

	if len(m.Weights()) != 1 {
		t.Fatalf("weights = %v, want one entry", m.Weights())
	}
	if !floats.Equal(m.Weights(), []float64{1}) {
		t.Errorf("weights = %v, want [1]", m.Weights())
	}
}

func TestTrainToleranceZeroIsExact(t *testing.T) {
	ds := separableDataset(t)
	cfg := fixedConfig(0, 50)
	cfg.Tolerance = 0

	m := Train(ds, []int{0, 1}, []float64{0, 0}, cfg, Online)
	if m.State() != Converged {
		t.Errorf("state = %s, want converged", m.State())
	}
}

func TestTrainPanicsOnWeightLengthMismatch(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}}, []int{1})
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Train(ds, []int{0, 1}, []float64{0}, fixedConfig(0, 1), Online)
}
