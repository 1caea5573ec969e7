package recoder

import (
	"fmt"
	"strings"
)

// Separator splits a sequence window into left flank, middle and
// right flank, as in "CT|TTCGGA|T"
const Separator = "|"

// Translator turns a nucleotide sequence into amino acids, one per
// codon
type Translator interface {
	Translate(seq string) ([]byte, error)
}

// Site is a sequence window with its two reading frames translated.
// The on frame covers left+middle+right, the off frame covers the
// middle only. A Site is never modified after construction.
type Site struct {
	left, middle, right string

	onFrameProt  string
	offFrameProt string
}

// ParseSite splits seq on Separator and translates both frames.
// Nucleotides are case insensitive and stored upper case.
func ParseSite(seq string, tr Translator) (Site, error) {

	parts := strings.Split(seq, Separator)
	if len(parts) != 3 {
		return Site{}, fmt.Errorf("%w: %q has %d segment(s), expected left%smiddle%sright", ErrValidation, seq, len(parts), Separator, Separator)
	}
	for i, part := range parts {
		if part == "" {
			return Site{}, fmt.Errorf("%w: segment %d of %q is empty", ErrValidation, i+1, seq)
		}
		if j := strings.IndexFunc(part, func(r rune) bool { return !isNucleotide(r) }); j != -1 {
			return Site{}, fmt.Errorf("%w: invalid nucleotide %q in %q", ErrValidation, part[j], part)
		}
	}
	return newSite(strings.ToUpper(parts[0]), strings.ToUpper(parts[1]), strings.ToUpper(parts[2]), tr)
}

func newSite(left, middle, right string, tr Translator) (Site, error) {

	s := Site{left: left, middle: middle, right: right}

	if n := len(s.OnFrame()); n%3 != 0 {
		return Site{}, fmt.Errorf("%w: on frame %s has length %d, not a multiple of 3", ErrValidation, s.OnFrame(), n)
	}
	if n := len(middle); n%3 != 0 {
		return Site{}, fmt.Errorf("%w: off frame %s has length %d, not a multiple of 3", ErrValidation, middle, n)
	}

	on, err := tr.Translate(s.OnFrame())
	if err != nil {
		return Site{}, fmt.Errorf("%w: on frame: %w", ErrValidation, err)
	}
	off, err := tr.Translate(middle)
	if err != nil {
		return Site{}, fmt.Errorf("%w: off frame: %w", ErrValidation, err)
	}
	s.onFrameProt, s.offFrameProt = string(on), string(off)
	return s, nil
}

// WithMiddle returns a new Site sharing the flanks of s. middle must
// already be upper case.
func (s Site) WithMiddle(middle string, tr Translator) (Site, error) {
	return newSite(s.left, middle, s.right, tr)
}

// Left returns the left flank
func (s Site) Left() string { return s.left }

// Middle returns the variable segment, which is also the off frame
func (s Site) Middle() string { return s.middle }

// Right returns the right flank
func (s Site) Right() string { return s.right }

// OnFrame returns the concatenated window
func (s Site) OnFrame() string { return s.left + s.middle + s.right }

// OffFrame returns the nucleotides read in the off frame
func (s Site) OffFrame() string { return s.middle }

// OnFrameProt returns the translation of the on frame
func (s Site) OnFrameProt() string { return s.onFrameProt }

// OffFrameProt returns the translation of the off frame
func (s Site) OffFrameProt() string { return s.offFrameProt }

// Aminos returns the on frame amino acids followed by the off frame
// ones
func (s Site) Aminos() string { return s.onFrameProt + s.offFrameProt }

// String returns the window in its "left|middle|right" form
func (s Site) String() string {
	return s.left + Separator + s.middle + Separator + s.right
}

func isNucleotide(r rune) bool {
	switch r {
	case 'A', 'C', 'G', 'T', 'a', 'c', 'g', 't':
		return true
	}
	return false
}
