package bucket

import "errors"

// Sentinel errors returned by bucket construction and solving.
var (
	// ErrLengthMismatch indicates that values, ratios, and labels disagree on length.
	ErrLengthMismatch = errors.New("bucket: values, ratios, and labels must have equal length")

	// ErrNegativeValue indicates a current value below zero.
	ErrNegativeValue = errors.New("bucket: current values must be non-negative")

	// ErrNegativeRatio indicates a target ratio below zero.
	ErrNegativeRatio = errors.New("bucket: ratios must be non-negative")

	// ErrRatioSum indicates the target ratios do not sum to 1 within tolerance.
	ErrRatioSum = errors.New("bucket: ratios must sum to 1")

	// ErrNegativeAmount indicates a negative amount to add.
	ErrNegativeAmount = errors.New("bucket: amount to add must be non-negative")

	// ErrInfeasible indicates no non-negative delta exists that sums to the
	// requested amount given the target ratios (constrained solvers only).
	ErrInfeasible = errors.New("bucket: no feasible non-negative allocation exists")
)
