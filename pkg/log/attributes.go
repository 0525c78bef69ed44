package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of model.
	// Examples: "Perceptron", "EnhancedPerceptron", "RandomSubspace", "Standardizer"
	ModelNameKey = "model.name"

	// EstimatorIDKey identifies a specific model instance, such as an ensemble member index.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "cross_validate"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of samples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// SubsetSizeKey indicates the number of features a model reads.
	SubsetSizeKey = "data.subset_size"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// ErrorRateKey records a misclassification percentage.
	ErrorRateKey = "metrics.error_rate"

	// AccuracyKey records model accuracy for evaluation operations.
	AccuracyKey = "metrics.accuracy"

	// EpochKey records the number of epochs run during training.
	EpochKey = "training.epoch"

	// ConvergedKey records whether training stopped because the weights stabilized.
	ConvergedKey = "training.converged"

	// UpdateMethodKey records the weight update method ("online" or "offline").
	UpdateMethodKey = "training.update_method"

	// FoldKey records the index of a cross-validation fold.
	FoldKey = "training.fold"
)

// Hyperparameters and Configuration
const (
	// LearningRateKey records the learning rate.
	LearningRateKey = "hyperparams.learning_rate"

	// DepthKey records the maximum number of epochs.
	DepthKey = "hyperparams.depth"

	// EnsembleSizeKey records the number of ensemble members.
	EnsembleSizeKey = "hyperparams.ensemble_size"

	// WorkersKey records the number of workers used for ensemble training.
	WorkersKey = "hyperparams.workers"
)

// Standard attribute value constants for common operations.
const (
	OperationFit           = "fit"
	OperationPredict       = "predict"
	OperationTransform     = "transform"
	OperationCrossValidate = "cross_validate"

	PhaseTraining      = "training"
	PhaseValidation    = "validation"
	PhaseInference     = "inference"
	PhasePreprocessing = "preprocessing"
)
