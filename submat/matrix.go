// Package submat holds amino acid substitution matrices such as
// BLOSUM62. A Matrix is read-only once built.
package submat

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//go:embed data/blosum62.csv
var blosum62CSV string

// symmetry tolerance used when ingesting a table
const eps = 1e-9

// Matrix scores every pair of amino acid symbols
type Matrix struct {
	symbols []byte
	// index of each symbol in scores, -1 when absent
	index  [256]int
	scores *mat.SymDense
}

// New builds a Matrix from the symbols labelling the rows (and
// columns) of scores
func New(symbols []byte, scores *mat.SymDense) (*Matrix, error) {

	if len(symbols) == 0 {
		return nil, fmt.Errorf("no symbol: %w", ErrBadHeader)
	}
	if scores == nil {
		return nil, fmt.Errorf("nil scores for %d symbols: %w", len(symbols), ErrNonSquare)
	}
	if n := scores.SymmetricDim(); n != len(symbols) {
		return nil, fmt.Errorf("%d symbols for a %dx%d matrix: %w", len(symbols), n, n, ErrNonSquare)
	}

	m := &Matrix{
		symbols: make([]byte, len(symbols)),
		scores:  mat.NewSymDense(len(symbols), nil),
	}
	for i := range m.index {
		m.index[i] = -1
	}
	for i, s := range symbols {
		s = upper(s)
		if m.index[s] != -1 {
			return nil, fmt.Errorf("symbol %q: %w", s, ErrDuplicateSymbol)
		}
		m.index[s] = i
		m.symbols[i] = s
	}
	for i := range symbols {
		for j := i; j < len(symbols); j++ {
			v := scores.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("score(%c, %c): %w", m.symbols[i], m.symbols[j], ErrNaNInf)
			}
			m.scores.SetSym(i, j, v)
		}
	}
	return m, nil
}

// BLOSUM62 returns a new copy of the BLOSUM62 matrix, including the
// ambiguity codes B, Z, X and the stop symbol '*'
func BLOSUM62() *Matrix {
	m, err := ReadCSV(strings.NewReader(blosum62CSV))
	if err != nil {
		panic(fmt.Sprintf("embedded BLOSUM62 is invalid: %v", err))
	}
	return m
}

// Load reads a matrix from a CSV file, see ReadCSV for the format
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("fail to read substitution matrix %s: %w", path, err)
	}
	return m, nil
}

// Symbols returns the symbols of m in table order
func (m *Matrix) Symbols() []byte {
	return append([]byte(nil), m.symbols...)
}

// Has reports whether s is scored by m
func (m *Matrix) Has(s byte) bool {
	return m.index[upper(s)] != -1
}

// Score returns the substitution score of a by b
func (m *Matrix) Score(a, b byte) (float64, error) {
	i, j := m.index[upper(a)], m.index[upper(b)]
	if i == -1 {
		return 0, fmt.Errorf("symbol %q: %w", a, ErrUnknownSymbol)
	}
	if j == -1 {
		return 0, fmt.Errorf("symbol %q: %w", b, ErrUnknownSymbol)
	}
	return m.scores.At(i, j), nil
}

// Dissimilarity returns score(a, a) - score(a, b), which is zero when
// a == b and non negative when the diagonal of m dominates its rows.
func (m *Matrix) Dissimilarity(a, b byte) (float64, error) {
	self, err := m.Score(a, a)
	if err != nil {
		return 0, err
	}
	sub, err := m.Score(a, b)
	if err != nil {
		return 0, err
	}
	return self - sub, nil
}

// Covers checks that every symbol of symbols is scored by m
func (m *Matrix) Covers(symbols []byte) error {
	var missing []byte
	for _, s := range symbols {
		if !m.Has(s) {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("symbols %q: %w", missing, ErrUnknownSymbol)
	}
	return nil
}

func upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
