// Package perceptron provides perceptron-family binary classifiers for Go.
//
// Three classifiers are available: a simple perceptron, an enhanced
// perceptron that standardizes features and chooses between online and
// offline updates by k-fold cross-validation, and a random subspace
// ensemble that trains many perceptrons on random feature subsets and
// predicts by majority vote.
//
// # Installation
//
//	go get github.com/YuminosukeSato/perceptron
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/perceptron/sklearn/linear_model"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 2, []float64{
//	        2, 1,
//	        1, 2,
//	        -1, -2,
//	        -2, -1,
//	    })
//	    y := mat.NewDense(4, 1, []float64{1, 1, 0, 0})
//
//	    p := linear_model.NewEnhancedPerceptron(linear_model.WithRandomState(42))
//	    if err := p.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    label, err := p.PredictSample([]float64{3, 3})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("label:", label)
//	}
//
// # Packages
//
//   - sklearn/linear_model: Perceptron, EnhancedPerceptron, training and update method selection
//   - sklearn/ensemble: RandomSubspace voting ensemble
//   - dataset: labelled samples with attribute metadata
//   - preprocessing: Standardizer (population mean and standard deviation)
//   - model_selection: contiguous k-fold splitting
//   - metrics: accuracy, misclassification rate, convergence plots
//   - core/model: estimator interfaces and BaseEstimator
//   - core/parallel: chunked worker helpers
//   - pkg/errors, pkg/log: structured errors, warnings and logging
//
// Labels are 0 or 1. Internally they map to -1 and +1, and an activation
// greater than zero predicts 1.
package perceptron
