package life

import "errors"

var (
	// ErrInvalidDimension reports a non-positive grid width or height.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrInvalidProbability reports an alive probability outside [0, 1].
	ErrInvalidProbability = errors.New("life: invalid alive probability")
	// ErrInvalidSource reports a missing random source.
	ErrInvalidSource = errors.New("life: nil random source")
	// ErrImplementation reports an internal invariant violation, such as
	// neighbor counts computed for a differently shaped grid. Correct callers
	// never see it.
	ErrImplementation = errors.New("life: implementation error")
)
