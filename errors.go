package utvideoenc

import "github.com/pkg/errors"

// Sentinel errors for the three kinds of failure the encoder core
// reports (spec §7). Callers distinguish them with errors.Is.
var (
	// ErrInvalidData signals an unsupported pixel layout or an odd
	// dimension on a subsampled layout.
	ErrInvalidData = errors.New("utvideoenc: invalid data")

	// ErrOptionNotFound signals a prediction method outside [0,4], or
	// one that maps to the unsupported plane or gradient predictors.
	ErrOptionNotFound = errors.New("utvideoenc: option not found")

	// ErrAllocation signals that a scratch or packet buffer could not
	// be sized as requested.
	ErrAllocation = errors.New("utvideoenc: allocation failed")
)
