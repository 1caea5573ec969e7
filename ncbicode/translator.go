package ncbicode

import (
	"errors"
	"fmt"
	"sort"
)

const (
	// nCode has to be 0 so that a codon holding an invalid base maps
	// to an unset entry of the code array
	nCode uint8 = iota
	aCode
	cCode
	tCode
	gCode

	// Length of the array to store codon <-> AA correspondance
	// uses gCode because it's the biggest uint8 of all codes
	arrayCodeSize = (uint32(gCode) | uint32(gCode)<<8 | uint32(gCode)<<16) + 1
)

// ErrInvalidSequence is returned when a sequence can't be split into
// codons of A, C, G and T
var ErrInvalidSequence = errors.New("ncbicode: invalid nucleotide sequence")

// Translator maps codons to amino acids for one genetic code. It is
// safe for concurrent use once built.
type Translator struct {
	code  int
	codes [arrayCodeSize]byte
	aas   []byte
}

// NewTranslator builds a Translator for the given NCBI table code
func NewTranslator(code int) (*Translator, error) {

	codeMap, err := LoadTableCode(code)
	if err != nil {
		return nil, err
	}

	t := &Translator{code: code}
	seen := map[byte]bool{}
	for codon, aaCode := range codeMap {
		// convert the codon to an unique uint32
		t.codes[codonIndex(codon[0], codon[1], codon[2])] = aaCode
		if !seen[aaCode] {
			seen[aaCode] = true
			t.aas = append(t.aas, aaCode)
		}
	}
	sort.Slice(t.aas, func(i, j int) bool { return t.aas[i] < t.aas[j] })
	return t, nil
}

// Code returns the NCBI table code of t
func (t *Translator) Code() int { return t.code }

// AminoAcids returns every symbol t can produce, stop included
func (t *Translator) AminoAcids() []byte {
	return append([]byte(nil), t.aas...)
}

// Translate reads seq 3 letters at a time and returns the corresponding
// amino acids. seq is case insensitive.
func (t *Translator) Translate(seq string) ([]byte, error) {

	if len(seq)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d of %q is not a multiple of 3", ErrInvalidSequence, len(seq), seq)
	}

	prot := make([]byte, 0, len(seq)/3)
	for pos := 0; pos < len(seq); pos += 3 {
		idx := codonIndex(seq[pos], seq[pos+1], seq[pos+2])
		aaCode := t.codes[idx]
		if aaCode == 0 {
			return nil, fmt.Errorf("%w: codon %q at position %d", ErrInvalidSequence, seq[pos:pos+3], pos)
		}
		prot = append(prot, aaCode)
	}
	return prot, nil
}

func codonIndex(n1, n2, n3 byte) uint32 {
	return uint32(letterCode(n1)) | uint32(letterCode(n2))<<8 | uint32(letterCode(n3))<<16
}

func letterCode(b byte) uint8 {
	switch b {
	case 'A', 'a':
		return aCode
	case 'C', 'c':
		return cCode
	case 'G', 'g':
		return gCode
	case 'T', 't':
		return tCode
	}
	return nCode
}
