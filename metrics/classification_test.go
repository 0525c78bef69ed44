package metrics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestClassificationError(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "Perfect classification",
			yTrue: []float64{0, 1, 1, 0},
			yPred: []float64{0, 1, 1, 0},
			want:  0.0,
		},
		{
			name:  "One error",
			yTrue: []float64{0, 1, 0, 1, 0},
			yPred: []float64{0, 1, 1, 1, 0},
			want:  0.2,
		},
		{
			name:  "All wrong",
			yTrue: []float64{0, 0, 0},
			yPred: []float64{1, 1, 1},
			want:  1.0,
		},
		{
			name:    "Empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
		{
			name:    "Dimension mismatch",
			yTrue:   []float64{0, 1},
			yPred:   []float64{0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var yTrue, yPred *mat.VecDense
			if len(tt.yTrue) > 0 {
				yTrue = mat.NewVecDense(len(tt.yTrue), tt.yTrue)
			}
			if len(tt.yPred) > 0 {
				yPred = mat.NewVecDense(len(tt.yPred), tt.yPred)
			}

			got, err := ClassificationError(yTrue, yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("ClassificationError() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ClassificationError() = %v, want %v", got, tt.want)
			}

			if tt.wantErr {
				return
			}
			acc, err := Accuracy(yTrue, yPred)
			if err != nil {
				t.Fatalf("Accuracy() error = %v", err)
			}
			if math.Abs(acc-(1-tt.want)) > 1e-9 {
				t.Errorf("Accuracy() = %v, want %v", acc, 1-tt.want)
			}
		})
	}
}

func TestAccuracyMatrix(t *testing.T) {
	yTrue := mat.NewDense(4, 1, []float64{0, 1, 1, 0})
	yPred := mat.NewDense(4, 1, []float64{0, 1, 0, 0})

	got, err := AccuracyMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("AccuracyMatrix() error = %v", err)
	}
	if math.Abs(got-0.75) > 1e-9 {
		t.Errorf("AccuracyMatrix() = %v, want 0.75", got)
	}

	if _, err := AccuracyMatrix(yTrue, mat.NewDense(4, 2, nil)); err == nil {
		t.Error("expected error for non-column prediction matrix")
	}
}

func TestMisclassificationPercent(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []int
		yPred   []int
		want    float64
		wantErr bool
	}{
		{"none wrong", []int{0, 1, 1}, []int{0, 1, 1}, 0, false},
		{"one of three", []int{0, 1, 1}, []int{1, 1, 1}, 100.0 / 3.0, false},
		{"half", []int{0, 1, 0, 1}, []int{1, 0, 0, 1}, 50, false},
		{"empty", nil, nil, 0, true},
		{"length mismatch", []int{0, 1}, []int{0}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MisclassificationPercent(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MisclassificationPercent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("MisclassificationPercent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfusionMatrix(t *testing.T) {
	cm, err := ConfusionMatrix([]int{0, 0, 1, 1, 1}, []int{0, 1, 1, 1, 0})
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}
	want := [2][2]int{{1, 1}, {1, 2}}
	if cm != want {
		t.Errorf("ConfusionMatrix() = %v, want %v", cm, want)
	}

	if _, err := ConfusionMatrix([]int{2}, []int{0}); err == nil {
		t.Error("expected error for non-binary label")
	}
}
