package core

import "errors"

// Sentinel errors shared by the sampler, filter and bounds packages.
// Callers match them with errors.Is; packages wrap them with context.
var (
	// ErrInvalidDomain is returned for an empty, inverted or non-finite interval.
	ErrInvalidDomain = errors.New("denoise: invalid domain")

	// ErrEmptyInput is returned when a sample or point sequence is empty.
	ErrEmptyInput = errors.New("denoise: empty input")

	// ErrIllConditioned is returned when the filter order is too large for
	// the number of samples or the regression is numerically singular.
	ErrIllConditioned = errors.New("denoise: ill-conditioned order")

	// ErrInvalidOrder is returned for a non-positive or unsupported order.
	ErrInvalidOrder = errors.New("denoise: invalid order")

	// ErrInvalidCount is returned for a non-positive sample count.
	ErrInvalidCount = errors.New("denoise: invalid sample count")

	// ErrNilFunc is returned when no source function is supplied.
	ErrNilFunc = errors.New("denoise: nil function")

	// ErrNonFinite is returned when an input contains NaN or ±Inf.
	ErrNonFinite = errors.New("denoise: non-finite value")

	// ErrNonPositive is returned when a geometric mean meets a value <= 0.
	ErrNonPositive = errors.New("denoise: non-positive value")

	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("denoise: length mismatch")
)
