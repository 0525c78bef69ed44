package linear_model

import (
	"math/rand/v2"
	"testing"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
)

func TestDefaultConfigs(t *testing.T) {
	simple := DefaultConfig()
	if !simple.RandomizeWeights || simple.WeightFillValue != 1 || simple.LearningRate != 1 ||
		simple.Depth != 10 || simple.Bias != 0 || !simple.CheckAttributes {
		t.Errorf("unexpected simple defaults: %+v", simple)
	}
	if simple.Standardize || simple.UseCrossValidation || simple.UpdateMethod != Online {
		t.Errorf("simple perceptron should not standardize or cross-validate: %+v", simple)
	}

	enhanced := EnhancedConfig()
	if !enhanced.Standardize || !enhanced.UseCrossValidation || enhanced.Folds != 4 || enhanced.UpdateMethod != Offline {
		t.Errorf("unexpected enhanced defaults: %+v", enhanced)
	}

	for _, cfg := range []Config{simple, enhanced} {
		if err := cfg.Validate(); err != nil {
			t.Errorf("default config invalid: %v", err)
		}
	}
}

func TestConfigValidateNeverClamps(t *testing.T) {
	cfg := EnhancedConfig()
	cfg.Folds = 1

	err := cfg.Validate()
	var ce *errors.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if ce.Value != 1 {
		t.Errorf("error value = %v, want 1", ce.Value)
	}
	if cfg.Folds != 1 {
		t.Errorf("Validate changed folds to %d", cfg.Folds)
	}

	// 交差検証が無効なら分割数は検証しない
	cfg.UseCrossValidation = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("folds should be ignored without cross-validation: %v", err)
	}
}

func TestInitWeights(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(1, 2))

	w := InitWeights(100, cfg, rng)
	for i, v := range w {
		if v < -0.5 || v >= 0.5 {
			t.Fatalf("w[%d] = %v, want value in [-0.5, 0.5)", i, v)
		}
	}

	again := InitWeights(100, cfg, rand.New(rand.NewPCG(1, 2)))
	for i := range w {
		if w[i] != again[i] {
			t.Fatalf("seeded draws differ at %d: %v vs %v", i, w[i], again[i])
		}
	}

	cfg.RandomizeWeights = false
	cfg.WeightFillValue = 0.25
	for i, v := range InitWeights(3, cfg, nil) {
		if v != 0.25 {
			t.Errorf("w[%d] = %v, want 0.25", i, v)
		}
	}
}

func TestValidateSubset(t *testing.T) {
	tests := []struct {
		name    string
		subset  []int
		wantErr bool
	}{
		{"full", []int{0, 1, 2}, false},
		{"partial", []int{0, 2}, false},
		{"empty", []int{}, true},
		{"duplicate", []int{1, 1}, true},
		{"descending", []int{2, 0}, true},
		{"negative", []int{-1, 0}, true},
		{"too large", []int{0, 3}, true},
		{"too many", []int{0, 1, 2, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubset(tt.subset, 3)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSubset(%v) error = %v, wantErr %v", tt.subset, err, tt.wantErr)
			}
		})
	}
}
