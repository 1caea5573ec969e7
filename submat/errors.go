package submat

import "errors"

// Every message is prefixed with "submat: ". Loaders wrap these with
// fmt.Errorf("...: %w", ErrX) so callers can match with errors.Is.
var (
	// ErrBadHeader is returned when the header row is missing, empty or
	// holds something other than single-letter symbols.
	ErrBadHeader = errors.New("submat: invalid header")

	// ErrDuplicateSymbol signals a symbol listed twice in the header or
	// as a row label.
	ErrDuplicateSymbol = errors.New("submat: duplicate symbol")

	// ErrNonSquare signals that the row labels don't match the header.
	ErrNonSquare = errors.New("submat: matrix is not square")

	// ErrAsymmetry signals that score(a, b) != score(b, a) for some pair.
	ErrAsymmetry = errors.New("submat: matrix is not symmetric")

	// ErrNaNInf signals a cell that is not a finite number.
	ErrNaNInf = errors.New("submat: NaN, Inf or unparsable score")

	// ErrUnknownSymbol is returned by lookups on a symbol absent from
	// the matrix.
	ErrUnknownSymbol = errors.New("submat: unknown symbol")
)
