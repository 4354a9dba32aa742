package counterpoint

import "errors"

var (
	// ErrInvalidReferenceLength is returned when the cantus firmus is too short
	// for the first/interior/penultimate/last role assignment
	ErrInvalidReferenceLength = errors.New("reference voice too short")

	// ErrNoSolution is returned when no candidate line passes every rule
	ErrNoSolution = errors.New("no counterpoint satisfies the rules")

	// ErrInvalidSpeciesConfiguration signals an unknown species or a position
	// outside the role assignment
	ErrInvalidSpeciesConfiguration = errors.New("invalid species configuration")

	// ErrSearchSpaceTooLarge is returned when the cross-product exceeds the
	// configured ceiling
	ErrSearchSpaceTooLarge = errors.New("search space too large")
)
