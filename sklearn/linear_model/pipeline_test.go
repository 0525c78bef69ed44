package linear_model

import "testing"

func TestFitModelNilRand(t *testing.T) {
	ds := separableDataset(t)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"default", DefaultConfig()},
		{"enhanced", EnhancedConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cv, err := FitModel(ds, tt.cfg, nil, nil)
			if err != nil {
				t.Fatalf("FitModel failed: %v", err)
			}
			if len(m.Weights()) != ds.NumFeatures() {
				t.Errorf("len(Weights()) = %d, want %d", len(m.Weights()), ds.NumFeatures())
			}
			if tt.cfg.UseCrossValidation != (cv != nil) {
				t.Errorf("cross-validation result = %v, UseCrossValidation = %v", cv, tt.cfg.UseCrossValidation)
			}
		})
	}
}

func TestSelectUpdateMethodNilRand(t *testing.T) {
	cfg := EnhancedConfig()
	result, err := SelectUpdateMethod(separableDataset(t), nil, cfg, nil)
	if err != nil {
		t.Fatalf("SelectUpdateMethod failed: %v", err)
	}
	if len(result.Folds) != cfg.Folds {
		t.Errorf("len(Folds) = %d, want %d", len(result.Folds), cfg.Folds)
	}
}

func TestFitModelDoesNotModifyInput(t *testing.T) {
	ds := separableDataset(t)
	before := ds.Row(0)

	if _, _, err := FitModel(ds, EnhancedConfig(), nil, newSeededRand(3)); err != nil {
		t.Fatalf("FitModel failed: %v", err)
	}
	after := ds.RowView(0)
	for j := range before {
		if before[j] != after[j] {
			t.Fatalf("row 0 changed from %v to %v", before, after)
		}
	}
}
