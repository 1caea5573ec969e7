package submat

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadCSV reads a labelled square table. The first row lists the
// column symbols after an empty corner cell, every following row
// starts with its own symbol:
//
//	,A,R,N
//	A,4,-1,-2
//	R,-1,5,0
//	N,-2,0,6
//
// Rows may come in any order, but each header symbol must label
// exactly one row and the table must be symmetric.
func ReadCSV(r io.Reader) (*Matrix, error) {

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty table: %w", ErrBadHeader)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("header %v: %w", header, ErrBadHeader)
	}

	symbols := make([]byte, 0, len(header)-1)
	col := map[byte]int{}
	for _, cell := range header[1:] {
		s, err := parseSymbol(cell)
		if err != nil {
			return nil, err
		}
		if _, ok := col[s]; ok {
			return nil, fmt.Errorf("column %q: %w", s, ErrDuplicateSymbol)
		}
		col[s] = len(symbols)
		symbols = append(symbols, s)
	}

	n := len(symbols)
	if len(records)-1 != n {
		return nil, fmt.Errorf("%d columns but %d rows: %w", n, len(records)-1, ErrNonSquare)
	}

	data := make([]float64, n*n)
	seen := make([]bool, n)
	for line, record := range records[1:] {
		if len(record) != n+1 {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", line+2, len(record), n+1, ErrNonSquare)
		}
		s, err := parseSymbol(record[0])
		if err != nil {
			return nil, err
		}
		i, ok := col[s]
		if !ok {
			return nil, fmt.Errorf("row %q not in header: %w", s, ErrNonSquare)
		}
		if seen[i] {
			return nil, fmt.Errorf("row %q: %w", s, ErrDuplicateSymbol)
		}
		seen[i] = true

		for j, cell := range record[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("score(%c, %c) = %q: %w", s, symbols[j], cell, ErrNaNInf)
			}
			data[i*n+j] = v
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(data[i*n+j]-data[j*n+i]) > eps {
				return nil, fmt.Errorf("score(%c, %c) = %v but score(%c, %c) = %v: %w",
					symbols[i], symbols[j], data[i*n+j], symbols[j], symbols[i], data[j*n+i], ErrAsymmetry)
			}
		}
	}

	return New(symbols, mat.NewSymDense(n, data))
}

func parseSymbol(cell string) (byte, error) {
	cell = strings.TrimSpace(cell)
	if len(cell) != 1 {
		return 0, fmt.Errorf("symbol %q: %w", cell, ErrBadHeader)
	}
	return upper(cell[0]), nil
}
