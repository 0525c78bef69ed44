package ensemble

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/YuminosukeSato/perceptron/core/model"
	"github.com/YuminosukeSato/perceptron/core/parallel"
	"github.com/YuminosukeSato/perceptron/dataset"
	"github.com/YuminosukeSato/perceptron/metrics"
	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/pkg/log"
	"github.com/YuminosukeSato/perceptron/preprocessing"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
	"gonum.org/v1/gonum/mat"
)

// RandomSubspace trains NumEnsembles perceptrons, each on the full rows
// restricted to a random feature subset, and predicts by majority vote.
// Ties resolve to label 1.
type RandomSubspace struct {
	model.BaseEstimator

	cfg     Config
	subsets [][]int
	rng     *rand.Rand

	members   []*linear_model.Model
	params    *preprocessing.StandardizationParams
	nFeatures int

	mu sync.RWMutex
}

// Option configures a RandomSubspace.
type Option func(*RandomSubspace)

// NewRandomSubspace creates an ensemble with DefaultConfig.
func NewRandomSubspace(opts ...Option) *RandomSubspace {
	rs := &RandomSubspace{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(rs *RandomSubspace) {
		rs.cfg = cfg
	}
}

// WithNumEnsembles sets the number of members.
func WithNumEnsembles(n int) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.NumEnsembles = n
	}
}

// WithSubsetSize sets the number of features per member. 0 means auto.
func WithSubsetSize(n int) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.SubsetSize = n
	}
}

// WithMemberKind switches members to the defaults of kind.
func WithMemberKind(kind MemberKind) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.MemberKind = kind
		rs.cfg.Member = MemberConfig(kind)
	}
}

// WithMemberConfig sets the configuration members train with.
func WithMemberConfig(cfg linear_model.Config) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.Member = cfg
	}
}

// WithStandardize enables ensemble-level standardization.
func WithStandardize(standardize bool) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.Standardize = standardize
	}
}

// WithCheckAttributes enables the numeric attribute check.
func WithCheckAttributes(check bool) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.CheckAttributes = check
	}
}

// WithNJobs sets the number of goroutines training members.
func WithNJobs(n int) Option {
	return func(rs *RandomSubspace) {
		rs.cfg.NJobs = n
	}
}

// WithRand sets the source of subsets and member seeds.
func WithRand(rng *rand.Rand) Option {
	return func(rs *RandomSubspace) {
		rs.rng = rng
	}
}

// WithRandomState seeds the source of subsets and member seeds.
func WithRandomState(seed uint64) Option {
	return func(rs *RandomSubspace) {
		rs.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithSubsets fixes the feature subset of every member and sets
// NumEnsembles to len(subsets). Subsets are validated against the data at
// fit time.
func WithSubsets(subsets [][]int) Option {
	return func(rs *RandomSubspace) {
		rs.subsets = make([][]int, len(subsets))
		for i, s := range subsets {
			rs.subsets[i] = append([]int(nil), s...)
		}
		rs.cfg.NumEnsembles = len(subsets)
	}
}

// Fit trains the ensemble. y is an n×1 matrix of 0/1 labels.
func (rs *RandomSubspace) Fit(X, y mat.Matrix) error {
	ds, err := dataset.FromMatrix(X, y)
	if err != nil {
		return err
	}
	return rs.FitDataset(ds)
}

// FitDataset trains the ensemble on ds. ds is not modified.
func (rs *RandomSubspace) FitDataset(ds *dataset.Dataset) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if err := rs.cfg.Validate(); err != nil {
		return err
	}
	if rs.cfg.CheckAttributes {
		if err := ds.ValidateNumeric(); err != nil {
			return err
		}
	}

	d := ds.NumFeatures()
	size, err := rs.cfg.resolveSubsetSize(d)
	if err != nil {
		return err
	}
	if rs.subsets != nil && len(rs.subsets) != rs.cfg.NumEnsembles {
		return errors.NewConfigurationError("num_ensembles", "does not match the number of explicit subsets",
			fmt.Sprintf("%d (subsets: %d)", rs.cfg.NumEnsembles, len(rs.subsets)))
	}
	for _, s := range rs.subsets {
		if err := linear_model.ValidateSubset(s, d); err != nil {
			return err
		}
	}

	if rs.rng == nil {
		rs.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	logger := log.GetLoggerWithName("ensemble").With(log.ModelNameKey, "RandomSubspace")
	start := time.Now()
	logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, ds.NumSamples(),
		log.FeaturesKey, d,
		log.EnsembleSizeKey, rs.cfg.NumEnsembles,
		log.SubsetSizeKey, size,
		log.WorkersKey, rs.cfg.NJobs,
	)

	train := ds
	var params *preprocessing.StandardizationParams
	if rs.cfg.Standardize {
		s := preprocessing.NewStandardizer(rs.cfg.Member.ZeroStd)
		if err := s.FitDataset(ds); err != nil {
			return err
		}
		train = ds.Clone()
		if err := s.TransformDatasetInPlace(train); err != nil {
			return err
		}
		params = s.Params
	}

	// Subsets and member seeds come from rs.rng in member order before any
	// member trains, so results do not depend on NJobs.
	n := rs.cfg.NumEnsembles
	subsets := make([][]int, n)
	seeds := make([]uint64, n)
	for i := 0; i < n; i++ {
		if rs.subsets != nil {
			subsets[i] = rs.subsets[i]
		} else {
			subsets[i] = GenerateSubset(rs.rng, size, d)
		}
		seeds[i] = rs.rng.Uint64()
	}

	memberCfg := rs.cfg.memberConfig()
	members := make([]*linear_model.Model, n)
	errs := make([]error, n)
	parallel.ParallelizeN(n, rs.cfg.NJobs, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			errs[i] = errors.SafeExecute(fmt.Sprintf("RandomSubspace member %d", i), func() error {
				rng := rand.New(rand.NewPCG(seeds[i], seeds[i]))
				m, _, err := linear_model.FitModel(train, memberCfg, subsets[i], rng)
				if err != nil {
					return err
				}
				members[i] = m
				return nil
			})
		}
	})

	for i, err := range errs {
		if err != nil {
			logger.Error("Member training failed", err, log.EstimatorIDKey, i)
			return errors.Wrapf(err, "RandomSubspace: member %d", i)
		}
	}

	if logger.Enabled(context.Background(), log.LevelDebug) {
		for i, m := range members {
			logger.Debug("Member trained",
				log.EstimatorIDKey, i,
				"subset", m.Subset(),
				log.EpochKey, m.Epochs(),
				log.ConvergedKey, m.Converged(),
				log.UpdateMethodKey, m.Method().String(),
			)
		}
	}

	rs.members = members
	rs.params = params
	rs.nFeatures = d
	rs.SetFitted()

	logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.EnsembleSizeKey, n,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Votes returns the number of members voting for label 0 and label 1.
func (rs *RandomSubspace) Votes(sample []float64) ([2]int, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	var votes [2]int
	if !rs.IsFitted() {
		return votes, errors.NewNotFittedError("RandomSubspace", "Votes")
	}
	if len(sample) != rs.nFeatures {
		return votes, errors.NewDimensionError("RandomSubspace.Votes", rs.nFeatures, len(sample), 1)
	}

	x := sample
	if rs.params != nil {
		var err error
		if x, err = rs.params.TransformRow(sample); err != nil {
			return votes, err
		}
	}

	for _, m := range rs.members {
		label, err := m.PredictSample(x)
		if err != nil {
			return votes, err
		}
		votes[label]++
	}
	return votes, nil
}

// PredictSample returns 0 when label 0 has strictly more votes, otherwise 1.
func (rs *RandomSubspace) PredictSample(sample []float64) (int, error) {
	votes, err := rs.Votes(sample)
	if err != nil {
		return 0, err
	}
	if votes[0] > votes[1] {
		return 0, nil
	}
	return 1, nil
}

// Predict returns an n×1 matrix of labels.
func (rs *RandomSubspace) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, cols := X.Dims()

	rs.mu.RLock()
	fitted, d := rs.IsFitted(), rs.nFeatures
	rs.mu.RUnlock()
	if !fitted {
		return nil, errors.NewNotFittedError("RandomSubspace", "Predict")
	}
	if cols != d {
		return nil, errors.NewDimensionError("RandomSubspace.Predict", d, cols, 1)
	}

	predictions := mat.NewDense(rows, 1, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		label, err := rs.PredictSample(row)
		if err != nil {
			return nil, err
		}
		predictions.Set(i, 0, float64(label))
	}
	return predictions, nil
}

// Score returns the accuracy on X and y.
func (rs *RandomSubspace) Score(X, y mat.Matrix) (float64, error) {
	predictions, err := rs.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyMatrix(y, predictions)
}

// Members returns the trained members in order.
func (rs *RandomSubspace) Members() []*linear_model.Model {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]*linear_model.Model(nil), rs.members...)
}

// Subsets returns a copy of every member's feature subset.
func (rs *RandomSubspace) Subsets() [][]int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	out := make([][]int, len(rs.members))
	for i, m := range rs.members {
		out[i] = m.Subset()
	}
	return out
}

// Standardization returns a copy of the ensemble-level parameters, or nil.
func (rs *RandomSubspace) Standardization() *preprocessing.StandardizationParams {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.params.Clone()
}

// GetParams returns the hyperparameters.
func (rs *RandomSubspace) GetParams() map[string]interface{} {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return map[string]interface{}{
		"num_ensembles":    rs.cfg.NumEnsembles,
		"subset_size":      rs.cfg.SubsetSize,
		"member_kind":      rs.cfg.MemberKind.String(),
		"standardize":      rs.cfg.Standardize,
		"check_attributes": rs.cfg.CheckAttributes,
		"n_jobs":           rs.cfg.NJobs,
		"fitted":           rs.IsFitted(),
	}
}

// String returns a short description.
func (rs *RandomSubspace) String() string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return fmt.Sprintf("RandomSubspace(num_ensembles=%d, subset_size=%d, member_kind=%s, standardize=%t)",
		rs.cfg.NumEnsembles, rs.cfg.SubsetSize, rs.cfg.MemberKind, rs.cfg.Standardize)
}

var (
	_ model.VotingClassifier = (*RandomSubspace)(nil)
	_ model.DatasetFitter    = (*RandomSubspace)(nil)
	_ model.ParameterGetter  = (*RandomSubspace)(nil)
)
