package errors

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		kind    string
		err     error
		wantMsg string
	}{
		{
			name:    "with original error",
			op:      "Fit",
			kind:    "empty data",
			err:     fmt.Errorf("no rows"),
			wantMsg: "perceptron: Fit: empty data: no rows",
		},
		{
			name:    "without original error",
			op:      "Predict",
			kind:    "not fitted",
			err:     nil,
			wantMsg: "perceptron: Predict: not fitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		column  int
		attr    string
		kind    string
		wantMsg string
	}{
		{
			name:    "named column",
			column:  2,
			attr:    "colour",
			kind:    "nominal",
			wantMsg: "perceptron: validation failed: attribute 2 (colour) must be numeric, got nominal",
		},
		{
			name:    "anonymous column",
			column:  0,
			kind:    "string",
			wantMsg: "perceptron: validation failed: attribute 0 must be numeric, got string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.column, tt.attr, tt.kind)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var valErr *ValidationError
			if !As(err, &valErr) {
				t.Fatal("Error should be castable to *ValidationError")
			}
			if valErr.Column != tt.column {
				t.Errorf("Column = %d, want %d", valErr.Column, tt.column)
			}
		})
	}
}

func TestNewConfigurationError(t *testing.T) {
	err := NewConfigurationError("folds", "must be >= 2", 1)

	want := "perceptron: invalid configuration for parameter 'folds': must be >= 2 (got: 1)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var cfgErr *ConfigurationError
	if !As(err, &cfgErr) {
		t.Fatal("Error should be castable to *ConfigurationError")
	}
	if cfgErr.ParamName != "folds" {
		t.Errorf("ParamName = %q, want folds", cfgErr.ParamName)
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Predict", 3, 2, 1)

	want := "perceptron: Predict: dimension mismatch on axis 1 (features). Expected 3, got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var dimErr *DimensionError
	if !As(err, &dimErr) {
		t.Error("Error should be castable to *DimensionError")
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("Perceptron", "Predict")

	want := "perceptron: Perceptron: this model is not fitted yet. Call Fit() before using Predict()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFittedErr *NotFittedError
	if !As(err, &notFittedErr) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestWarnings(t *testing.T) {
	conv := NewConvergenceWarning("Perceptron", 10, "weights still changing")
	if conv.Error() != "Perceptron failed to converge after 10 iterations: weights still changing" {
		t.Errorf("unexpected ConvergenceWarning message: %s", conv.Error())
	}

	hazard := NewNumericHazardWarning("Standardizer.Fit", []int{1, 3})
	if !strings.Contains(hazard.Error(), "[1 3]") {
		t.Errorf("NumericHazardWarning should list columns, got %s", hazard.Error())
	}
}

func TestWarnRouting(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) { captured = append(captured, w) })
	defer SetWarningHandler(nil)

	Warn(NewConvergenceWarning("Perceptron", 5, ""))
	if len(captured) != 1 {
		t.Fatalf("expected 1 warning captured, got %d", len(captured))
	}

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	SetZerologWarnFunc(func(w error) {
		if m, ok := w.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(m).Msg(w.Error())
			return
		}
		logger.Warn().Msg(w.Error())
	})
	defer SetZerologWarnFunc(nil)

	Warn(NewNumericHazardWarning("Standardizer.Fit", []int{0}))
	if len(captured) != 1 {
		t.Errorf("zerolog hook should take precedence, handler saw %d warnings", len(captured))
	}
	if !strings.Contains(buf.String(), `"type":"NumericHazardWarning"`) {
		t.Errorf("expected structured warning in zerolog output, got %s", buf.String())
	}
}

func TestWrapAndIs(t *testing.T) {
	wrapped := Wrapf(ErrEmptyData, "in %s: expected %d rows", "Fit", 10)

	if !Is(wrapped, ErrEmptyData) {
		t.Error("Expected Is(wrapped, ErrEmptyData) to be true")
	}
	if !strings.Contains(wrapped.Error(), "in Fit: expected 10 rows") {
		t.Errorf("unexpected wrapped message: %s", wrapped.Error())
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("weights", []float64{1, -2, 0.5}, 3); err != nil {
		t.Errorf("finite values should pass, got %v", err)
	}

	nan := math.NaN()
	err := CheckNumericalStability("weights", []float64{1, nan}, 3)
	if err == nil {
		t.Fatal("expected instability error for NaN")
	}
	var instErr *NumericalInstabilityError
	if !As(err, &instErr) {
		t.Fatalf("expected *NumericalInstabilityError, got %T", err)
	}
	if instErr.Iteration != 3 {
		t.Errorf("Iteration = %d, want 3", instErr.Iteration)
	}

	idx := NonFiniteIndices([]float64{1, nan, 2, nan})
	if len(idx) != 2 || idx[0] != 1 || idx[1] != 3 {
		t.Errorf("NonFiniteIndices = %v, want [1 3]", idx)
	}
}
