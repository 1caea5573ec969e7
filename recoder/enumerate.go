package recoder

import (
	"fmt"
	"sort"
	"strings"
)

// Nucleotides is the alphabet of the candidate middles, in the order
// they are generated
const Nucleotides = "ACGT"

// DefaultForbidden holds the codons removed at the recoded position
// when no other set is given: the TCG/TCA serine codons and the TGA
// stop.
var DefaultForbidden = []string{"TCG", "TCA", "TGA"}

// MaxSearchMiddle is the longest middle Middles will enumerate, the
// search space being 4^MaxSearchMiddle middles.
const MaxSearchMiddle = 12

// CodonSet is a set of upper case codons
type CodonSet map[string]struct{}

// NewCodonSet validates and normalizes codons
func NewCodonSet(codons ...string) (CodonSet, error) {
	set := make(CodonSet, len(codons))
	for _, c := range codons {
		if len(c) != 3 || strings.IndexFunc(c, func(r rune) bool { return !isNucleotide(r) }) != -1 {
			return nil, fmt.Errorf("%w: %q is not a codon", ErrValidation, c)
		}
		set[strings.ToUpper(c)] = struct{}{}
	}
	return set, nil
}

// Contains reports whether codon, in any case, is in the set
func (c CodonSet) Contains(codon string) bool {
	_, ok := c[strings.ToUpper(codon)]
	return ok
}

// Codons returns the set content sorted
func (c CodonSet) Codons() []string {
	codons := make([]string, 0, len(c))
	for codon := range c {
		codons = append(codons, codon)
	}
	sort.Strings(codons)
	return codons
}

// TargetCodon returns the offset, in the on frame, of the codon
// checked against the forbidden set. It is the first on frame codon
// lying entirely inside the middle. When the middle holds no whole
// on frame codon, the first three nucleotides of the middle are used.
// ok is false when the middle is shorter than a codon.
func TargetCodon(leftLen, middleLen int) (offset int, ok bool) {
	if middleLen < 3 {
		return 0, false
	}
	offset = (leftLen + 2) / 3 * 3
	if offset+3 <= leftLen+middleLen {
		return offset, true
	}
	return leftLen, true
}

// Middles returns every middle of the same length as the one of
// original, in lexicographic order over Nucleotides, skipping the ones
// that put a forbidden codon at the target position. Middles longer
// than MaxSearchMiddle are rejected with ErrValidation.
func Middles(original Site, forbidden CodonSet) ([]string, error) {

	m := len(original.middle)
	if m == 0 {
		return nil, nil
	}
	if m > MaxSearchMiddle {
		return nil, fmt.Errorf("%w: middle %s is longer than %d nucleotides", ErrValidation, original.middle, MaxSearchMiddle)
	}

	leftLen := len(original.left)
	offset, check := TargetCodon(leftLen, m)
	check = check && len(forbidden) > 0

	total := pow4(m)
	window := []byte(original.OnFrame())
	middles := make([]string, 0, total)
	middle := make([]byte, m)
	for n := 0; n < total; n++ {
		// n written in base 4, most significant digit first
		for i, rest := m-1, n; i >= 0; i, rest = i-1, rest/len(Nucleotides) {
			middle[i] = Nucleotides[rest%len(Nucleotides)]
		}
		if check {
			copy(window[leftLen:], middle)
			if forbidden.Contains(string(window[offset : offset+3])) {
				continue
			}
		}
		middles = append(middles, string(middle))
	}
	return middles, nil
}

// Enumerate returns a Site for each middle produced by Middles, in the
// same order. Candidates reuse the flanks of original, so a failure to
// build one is reported as ErrInvariant.
func Enumerate(original Site, forbidden CodonSet, tr Translator) ([]Site, error) {
	middles, err := Middles(original, forbidden)
	if err != nil {
		return nil, err
	}
	sites := make([]Site, 0, len(middles))
	for _, middle := range middles {
		candidate, err := candidateSite(original, middle, tr)
		if err != nil {
			return nil, err
		}
		sites = append(sites, candidate)
	}
	return sites, nil
}

func candidateSite(original Site, middle string, tr Translator) (Site, error) {
	candidate, err := original.WithMiddle(middle, tr)
	if err != nil {
		return Site{}, fmt.Errorf("%w: candidate %s%s%s%s%s: %w", ErrInvariant, original.left, Separator, middle, Separator, original.right, err)
	}
	return candidate, nil
}
