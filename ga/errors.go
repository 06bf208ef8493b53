package ga

import "errors"

var (
	// ErrEmptyInput is returned when the point set has fewer than two
	// points, or when an empty tour is evaluated.
	ErrEmptyInput = errors.New("ga: fewer than two points")

	// ErrDuplicatePoint is returned when the input points are not distinct.
	ErrDuplicatePoint = errors.New("ga: duplicate point")

	// ErrInsufficientPopulation is returned when selection or pairing needs
	// more members than the population holds.
	ErrInsufficientPopulation = errors.New("ga: insufficient population")

	// ErrInvariantViolation marks a tour whose stops are not a permutation of
	// the input points. It aborts the current generation.
	ErrInvariantViolation = errors.New("ga: tour is not a permutation of the input points")

	// ErrInvalidConfig is returned for meaningless parameters (non-positive
	// sizes, negative cadence, depth or worker count).
	ErrInvalidConfig = errors.New("ga: invalid configuration")

	// ErrUnknownCrossover is returned by ParseCrossover for unknown names.
	ErrUnknownCrossover = errors.New("ga: unknown crossover strategy")

	// ErrUnknownMutation is returned by ParseMutation for unknown names.
	ErrUnknownMutation = errors.New("ga: unknown mutation operator")

	// ErrUnknownDistancePolicy is returned by ParseDistancePolicy for unknown names.
	ErrUnknownDistancePolicy = errors.New("ga: unknown distance policy")
)
