// Package ncbicode stores codon <-> AA
// translation.
//
// Relevant documentation:
//
//    https://www.ncbi.nlm.nih.gov/Taxonomy/Utils/wprintgc.cgi?chapter=tgencodes#SG1
//
package ncbicode

import (
	"fmt"
	"sort"
)

// Bases lists the nucleotides in the order used by the NCBI tables:
// the first base of a codon varies slowest.
const Bases = "TCAG"

// standardAAs is the standard code in NCBI notation, one amino acid
// per codon from TTT to GGG
const standardAAs = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"

const (
	Standard                                                    = 0
	VertebrateMitochondrial                                     = 2
	YeastMitochondrial                                          = 3
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma = 4
	InvertebrateMitochondrial                                   = 5
	CiliateDasycladaceanHexamita                                = 6
	EchinodermFlatwormMitochondrial                             = 9
	Euplotid                                                    = 10
	BacterialArchaealPlantPlastid                               = 11
	AlternativeYeast                                            = 12
	AscidianMitochondrial                                       = 13
	AlternativeFlatwormMitochondrial                            = 14
	ChlorophyceanMitochondrial                                  = 16
	TrematodeMitochondrial                                      = 21
	ScenedesmusObliquusMitochondrial                            = 22
	ThraustochytriumMitochondrial                               = 23
	PterobranchiaMitochondrial                                  = 24
	CandidateDivisionSR1Gracilibacteria                         = 25
	PachysolenTannophilus                                       = 26
	Mesodinium                                                  = 29
	Peritrich                                                   = 30
)

// codons reassigned relative to the standard code
var diffs = map[int]map[string]byte{
	VertebrateMitochondrial: {"AGA": '*', "AGG": '*', "ATA": 'M', "TGA": 'W'},
	YeastMitochondrial: {"ATA": 'M', "CTT": 'T', "CTC": 'T', "CTA": 'T', "CTG": 'T', "TGA": 'W'},
	MoldProtozoanCoelenterateMitochondrialMycoplasmaSpiroplasma: {"TGA": 'W'},
	InvertebrateMitochondrial:           {"AGA": 'S', "AGG": 'S', "ATA": 'M', "TGA": 'W'},
	CiliateDasycladaceanHexamita:        {"TAA": 'Q', "TAG": 'Q'},
	EchinodermFlatwormMitochondrial:     {"AAA": 'N', "AGA": 'S', "AGG": 'S', "TGA": 'W'},
	Euplotid:                            {"TGA": 'C'},
	BacterialArchaealPlantPlastid:       {},
	AlternativeYeast:                    {"CTG": 'S'},
	AscidianMitochondrial:               {"AGA": 'G', "AGG": 'G', "ATA": 'M', "TGA": 'W'},
	AlternativeFlatwormMitochondrial:    {"AAA": 'N', "AGA": 'S', "AGG": 'S', "TAA": 'Y', "TGA": 'W'},
	ChlorophyceanMitochondrial:          {"TAG": 'L'},
	TrematodeMitochondrial:              {"TGA": 'W', "ATA": 'M', "AGA": 'S', "AGG": 'S', "AAA": 'N'},
	ScenedesmusObliquusMitochondrial:    {"TCA": '*', "TAG": 'L'},
	ThraustochytriumMitochondrial:       {"TTA": '*'},
	PterobranchiaMitochondrial:          {"AGA": 'S', "AGG": 'K', "TGA": 'W'},
	CandidateDivisionSR1Gracilibacteria: {"TGA": 'G'},
	PachysolenTannophilus:               {"CTG": 'A'},
	Mesodinium:                          {"TAA": 'Y', "TAG": 'Y'},
	Peritrich:                           {"TAA": 'E', "TAG": 'E'},
}

// Codons returns the 64 codons in NCBI order
func Codons() []string {
	codons := make([]string, 0, 64)
	for i := 0; i < len(Bases); i++ {
		for j := 0; j < len(Bases); j++ {
			for k := 0; k < len(Bases); k++ {
				codons = append(codons, string([]byte{Bases[i], Bases[j], Bases[k]}))
			}
		}
	}
	return codons
}

// LoadTableCode returns a map of codon <-> AA. Both 0 and 1 select
// the standard code.
func LoadTableCode(code int) (map[string]byte, error) {

	tableCodon := make(map[string]byte, 64)
	for i, codon := range Codons() {
		tableCodon[codon] = standardAAs[i]
	}

	if code == Standard || code == 1 {
		return tableCodon, nil
	}

	tableDiff, ok := diffs[code]
	if !ok {
		return nil, fmt.Errorf("invalid table code: %v", code)
	}
	for codon, aaCode := range tableDiff {
		tableCodon[codon] = aaCode
	}
	return tableCodon, nil
}

// AvailableCodes returns the supported table codes in ascending order
func AvailableCodes() []int {
	codes := []int{Standard}
	for code := range diffs {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
