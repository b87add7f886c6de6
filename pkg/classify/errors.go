package classify

import "errors"

var (
	// ErrNotLoaded: prediction was requested before any model was trained or
	// loaded. Callers should treat the predicted category as optional and
	// degrade instead of failing the whole request.
	ErrNotLoaded = errors.New("classifier not trained or loaded")

	// ErrModelNotFound: no artifact exists under the requested name.
	ErrModelNotFound = errors.New("model not found")

	// ErrCorruptArtifact: a partial artifact on disk, e.g. only one of the two
	// required files present. Saves are staged atomically so training itself
	// never produces this state.
	ErrCorruptArtifact = errors.New("model artifact incomplete or corrupt")

	// ErrBadTrainingConfig: invalid model type or a split the data cannot
	// satisfy. Raised before any embedding work is done.
	ErrBadTrainingConfig = errors.New("invalid training configuration")
)
