// Package ensemble implements a random-subspace ensemble of perceptrons
// combined by majority vote.
package ensemble

import (
	"math"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

// MemberKind selects the default configuration of every member.
type MemberKind int

const (
	// SimpleMember members use online updates without cross-validation.
	SimpleMember MemberKind = iota
	// EnhancedMember members pick online or offline updates by cross-validation.
	EnhancedMember
)

// String returns the member kind name.
func (k MemberKind) String() string {
	if k == EnhancedMember {
		return "enhanced"
	}
	return "simple"
}

// Config holds the ensemble hyperparameters.
type Config struct {
	// Member is the configuration every member trains with. Attribute checks
	// and standardization are always disabled for members.
	Member linear_model.Config
	// MemberKind records which default Member was derived from.
	MemberKind MemberKind
	// NumEnsembles is the number of members, greater than 1.
	NumEnsembles int
	// SubsetSize is the number of features per member. 0 selects AutoSubsetSize.
	SubsetSize int
	// Standardize standardizes the dataset once before members train and
	// every sample before members vote.
	Standardize bool
	// CheckAttributes validates that every feature is numeric, once per fit.
	CheckAttributes bool
	// NJobs is the number of goroutines training members.
	NJobs int
}

// DefaultConfig returns 500 simple members on auto-sized subsets with
// ensemble-level standardization.
func DefaultConfig() Config {
	return Config{
		Member:          MemberConfig(SimpleMember),
		MemberKind:      SimpleMember,
		NumEnsembles:    500,
		SubsetSize:      0,
		Standardize:     true,
		CheckAttributes: true,
		NJobs:           1,
	}
}

// MemberConfig returns the default member configuration for kind.
func MemberConfig(kind MemberKind) linear_model.Config {
	if kind == EnhancedMember {
		return linear_model.EnhancedConfig()
	}
	return linear_model.DefaultConfig()
}

// Validate checks the hyperparameters that do not depend on the data.
func (c Config) Validate() error {
	if c.NumEnsembles <= 1 {
		return errors.NewConfigurationError("num_ensembles", "must be greater than 1", c.NumEnsembles)
	}
	if c.SubsetSize < 0 {
		return errors.NewConfigurationError("subset_size", "must be 0 (auto) or positive", c.SubsetSize)
	}
	if c.NJobs < 1 {
		return errors.NewConfigurationError("n_jobs", "must be at least 1", c.NJobs)
	}
	return c.memberConfig().Validate()
}

// resolveSubsetSize applies the auto rule and checks the size against nFeatures.
func (c Config) resolveSubsetSize(nFeatures int) (int, error) {
	size := c.SubsetSize
	if size == 0 {
		size = AutoSubsetSize(nFeatures)
	}
	if size > nFeatures {
		return 0, errors.NewConfigurationError("subset_size", "exceeds the number of features", size)
	}
	return size, nil
}

func (c Config) memberConfig() linear_model.Config {
	m := c.Member
	m.CheckAttributes = false
	m.Standardize = false
	return m
}

// AutoSubsetSize is round(sqrt(nFeatures)) with halves rounded up, at least 1.
func AutoSubsetSize(nFeatures int) int {
	size := int(math.Floor(math.Sqrt(float64(nFeatures)) + 0.5))
	if size < 1 {
		return 1
	}
	return size
}
