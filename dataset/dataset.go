// Package dataset holds the in-memory training data consumed by the
// perceptron models: a dense feature matrix, one 0/1 label per row and the
// type of every feature column.
package dataset

import (
	"fmt"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset is an ordered collection of samples with a fixed feature count.
// Models treat it as read-only, except for standardization which rescales
// the feature matrix in place through TransformInPlace.
type Dataset struct {
	attributes []Attribute
	x          *mat.Dense
	labels     []int
}

// New builds a dataset from row-major samples. When attrs is empty every
// column is numeric and named x0, x1, ...
func New(rows [][]float64, labels []int, attrs ...Attribute) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewModelError("dataset.New", "empty data", errors.ErrEmptyData)
	}
	if len(labels) != len(rows) {
		return nil, errors.NewDimensionError("dataset.New", len(rows), len(labels), 0)
	}

	d := len(rows[0])
	data := make([]float64, 0, len(rows)*d)
	for _, row := range rows {
		if len(row) != d {
			return nil, errors.NewDimensionError("dataset.New", d, len(row), 1)
		}
		data = append(data, row...)
	}

	return build("dataset.New", mat.NewDense(len(rows), d, data), labels, attrs)
}

// FromMatrix builds a dataset from a feature matrix and an n×1 label matrix.
func FromMatrix(X, y mat.Matrix, attrs ...Attribute) (*Dataset, error) {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewModelError("dataset.FromMatrix", "empty data", errors.ErrEmptyData)
	}
	ry, cy := y.Dims()
	if ry != r {
		return nil, errors.NewDimensionError("dataset.FromMatrix", r, ry, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError("dataset.FromMatrix", "y must be a column vector")
	}

	labels := make([]int, r)
	for i := 0; i < r; i++ {
		v := y.At(i, 0)
		if v != 0 && v != 1 {
			return nil, errors.NewValueError("dataset.FromMatrix", fmt.Sprintf("label at row %d must be 0 or 1, got %v", i, v))
		}
		labels[i] = int(v)
	}

	return build("dataset.FromMatrix", mat.DenseCopyOf(X), labels, attrs)
}

func build(op string, x *mat.Dense, labels []int, attrs []Attribute) (*Dataset, error) {
	_, d := x.Dims()
	for i, l := range labels {
		if l != 0 && l != 1 {
			return nil, errors.NewValueError(op, fmt.Sprintf("label at row %d must be 0 or 1, got %d", i, l))
		}
	}

	if len(attrs) == 0 {
		attrs = defaultAttributes(d)
	} else if len(attrs) != d {
		return nil, errors.NewDimensionError(op, d, len(attrs), 1)
	}

	ds := &Dataset{
		attributes: make([]Attribute, d),
		x:          x,
		labels:     make([]int, len(labels)),
	}
	copy(ds.attributes, attrs)
	copy(ds.labels, labels)
	return ds, nil
}

// NumSamples returns the number of rows.
func (ds *Dataset) NumSamples() int {
	r, _ := ds.x.Dims()
	return r
}

// NumFeatures returns the number of feature columns.
func (ds *Dataset) NumFeatures() int {
	_, c := ds.x.Dims()
	return c
}

// Attributes returns a copy of the column metadata.
func (ds *Dataset) Attributes() []Attribute {
	attrs := make([]Attribute, len(ds.attributes))
	copy(attrs, ds.attributes)
	return attrs
}

// Row returns a copy of the i-th sample's features.
func (ds *Dataset) Row(i int) []float64 {
	return mat.Row(nil, i, ds.x)
}

// RowView returns the i-th sample's features without copying. Callers must
// not modify the slice.
func (ds *Dataset) RowView(i int) []float64 {
	return ds.x.RawRowView(i)
}

// Column returns a copy of the j-th feature column.
func (ds *Dataset) Column(j int) []float64 {
	return mat.Col(nil, j, ds.x)
}

// Label returns the 0/1 label of the i-th sample.
func (ds *Dataset) Label(i int) int {
	return ds.labels[i]
}

// Labels returns a copy of all labels.
func (ds *Dataset) Labels() []int {
	labels := make([]int, len(ds.labels))
	copy(labels, ds.labels)
	return labels
}

// Matrix exposes the feature matrix read-only.
func (ds *Dataset) Matrix() mat.Matrix {
	return ds.x
}

// Subset returns a new dataset holding the given rows in the given order.
func (ds *Dataset) Subset(indices []int) (*Dataset, error) {
	if len(indices) == 0 {
		return nil, errors.NewModelError("Dataset.Subset", "empty data", errors.ErrEmptyData)
	}
	n, d := ds.x.Dims()
	x := mat.NewDense(len(indices), d, nil)
	labels := make([]int, len(indices))
	for k, i := range indices {
		if i < 0 || i >= n {
			return nil, errors.NewValueError("Dataset.Subset", fmt.Sprintf("row index %d out of range [0, %d)", i, n))
		}
		x.SetRow(k, ds.x.RawRowView(i))
		labels[k] = ds.labels[i]
	}
	return &Dataset{attributes: ds.Attributes(), x: x, labels: labels}, nil
}

// Clone returns a deep copy.
func (ds *Dataset) Clone() *Dataset {
	return &Dataset{
		attributes: ds.Attributes(),
		x:          mat.DenseCopyOf(ds.x),
		labels:     ds.Labels(),
	}
}

// TransformInPlace replaces every feature value v at (i, j) with fn(i, j, v).
func (ds *Dataset) TransformInPlace(fn func(i, j int, v float64) float64) {
	ds.x.Apply(fn, ds.x)
}

// ValidateNumeric checks that every feature column is numeric and returns a
// ValidationError naming the first column that is not.
func (ds *Dataset) ValidateNumeric() error {
	for i, attr := range ds.attributes {
		if !attr.IsNumeric() {
			return errors.NewValidationError(i, attr.Name, attr.Kind.String())
		}
	}
	return nil
}

// String summarises the dataset shape.
func (ds *Dataset) String() string {
	return fmt.Sprintf("Dataset(n_samples=%d, n_features=%d)", ds.NumSamples(), ds.NumFeatures())
}
