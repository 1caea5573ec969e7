package recoder

import "errors"

var (
	// ErrValidation is returned for a malformed sequence window or
	// codon. It is a user error: the input should be fixed and
	// submitted again.
	ErrValidation = errors.New("recoder: invalid input")

	// ErrInvariant reports an internal inconsistency, for example a
	// candidate whose flanks differ from the original ones or two sites
	// translating to proteins of different lengths. A recoding run that
	// hits it must be aborted.
	ErrInvariant = errors.New("recoder: invariant violation")

	// ErrNegativeDissimilarity is returned by scorers that need
	// score(a, a) >= score(a, b) when the matrix breaks it.
	ErrNegativeDissimilarity = errors.New("recoder: diagonal does not dominate matrix row")
)
