// Package recoder enumerates the substitutions of the middle segment of
// an overlapping reading frame site, scores how much each one changes
// the proteins read on both frames, and ranks them.
package recoder

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/feliixx/gorecoder/ncbicode"
	"github.com/feliixx/gorecoder/submat"
	"golang.org/x/sync/errgroup"
)

// Options struct to store recoding command line args
type Options struct {
	Forbid    []string `short:"x" long:"forbid" value-name:"<codon>" description:"Codon excluded at the recoded position, repeat the flag for several codons" default:"TCG" default:"TCA" default:"TGA"`
	Table     int      `short:"t" long:"table" value-name:"<code>" description:"NCBI genetic code used for both frames, 0 or 1 is the standard code" default:"0"`
	Scoring   string   `short:"S" long:"scoring" value-name:"<name>" description:"Scoring policy: sum (similarity), distance (dissimilarity) or distributed (dissimilarity spread over both frames)" choice:"sum" choice:"distance" choice:"distributed" default:"sum"`
	Top       int      `short:"k" long:"top" value-name:"<n>" description:"Number of recodings to report" default:"10"`
	MaxMiddle int      `long:"max-middle" value-name:"<n>" description:"Longest middle segment accepted, the search space is 4^n" default:"9"`
	NumWorker int      `short:"n" long:"numcpu" value-name:"<n>" description:"Number of threads used to score candidates, default is number of CPU"`
}

// DefaultOptions returns the options used when no flag is given
func DefaultOptions() Options {
	return Options{
		Forbid:    append([]string(nil), DefaultForbidden...),
		Scoring:   SumScoring,
		Top:       10,
		MaxMiddle: 9,
		NumWorker: 1,
	}
}

// Recoder runs the enumerate, score and rank pipeline for one genetic
// code, substitution matrix and scoring policy.
type Recoder struct {
	translator *ncbicode.Translator
	matrix     *submat.Matrix
	scorer     Scorer
	forbidden  CodonSet
	maxMiddle  int
	numWorker  int
	logger     *slog.Logger
}

// New checks opts and returns a Recoder scoring with matrix. A nil
// opts.Forbid selects DefaultForbidden, an empty one disables the
// filter. opts.MaxMiddle is capped to MaxSearchMiddle, and a value <= 0
// selects the cap. A nil logger discards every record.
func New(matrix *submat.Matrix, opts Options, logger *slog.Logger) (*Recoder, error) {

	if matrix == nil {
		return nil, errors.New("recoder: nil substitution matrix")
	}

	translator, err := ncbicode.NewTranslator(opts.Table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := matrix.Covers(translator.AminoAcids()); err != nil {
		return nil, fmt.Errorf("substitution matrix can't score genetic code %d: %w", opts.Table, err)
	}

	scorer, err := ScorerByName(opts.Scoring)
	if err != nil {
		return nil, err
	}

	codons := opts.Forbid
	if codons == nil {
		codons = DefaultForbidden
	}
	forbidden, err := NewCodonSet(codons...)
	if err != nil {
		return nil, err
	}

	maxMiddle := opts.MaxMiddle
	if maxMiddle <= 0 || maxMiddle > MaxSearchMiddle {
		maxMiddle = MaxSearchMiddle
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Recoder{
		translator: translator,
		matrix:     matrix,
		scorer:     scorer,
		forbidden:  forbidden,
		maxMiddle:  maxMiddle,
		numWorker:  max(opts.NumWorker, 1),
		logger:     logger,
	}, nil
}

// Translator returns the genetic code used by r
func (r *Recoder) Translator() *ncbicode.Translator { return r.translator }

// Scorer returns the scoring policy used by r
func (r *Recoder) Scorer() Scorer { return r.scorer }

// Forbidden returns the codons filtered at the recoded position
func (r *Recoder) Forbidden() CodonSet { return r.forbidden }

// Site parses seq with the genetic code of r. Middles longer than the
// configured maximum are rejected.
func (r *Recoder) Site(seq string) (Site, error) {
	site, err := ParseSite(seq, r.translator)
	if err != nil {
		return Site{}, err
	}
	if len(site.middle) > r.maxMiddle {
		return Site{}, fmt.Errorf("%w: middle %s is longer than %d nucleotides", ErrValidation, site.middle, r.maxMiddle)
	}
	return site, nil
}

// Recode parses seq and returns its ranked recodings
func (r *Recoder) Recode(seq string) (Site, []Recoding, error) {
	original, err := r.Site(seq)
	if err != nil {
		return Site{}, nil, err
	}
	ranked, err := r.RecodeSite(original)
	return original, ranked, err
}

// RecodeSite enumerates, scores and ranks the candidates of original.
// An empty result is not an error.
func (r *Recoder) RecodeSite(original Site) ([]Recoding, error) {

	r.logger.Debug("original aminos",
		"site", original.String(),
		"on_frame", original.OnFrameProt(),
		"off_frame", original.OffFrameProt(),
	)

	middles, err := Middles(original, r.forbidden)
	if err != nil {
		return nil, err
	}
	recodings := make([]Recoding, len(middles))

	if r.numWorker == 1 || len(middles) < 2*r.numWorker {
		if err := r.scoreRange(original, middles, recodings, 0, len(middles)); err != nil {
			return nil, err
		}
	} else {
		var g errgroup.Group
		chunkSize := (len(middles) + r.numWorker - 1) / r.numWorker
		for start := 0; start < len(middles); start += chunkSize {
			end := min(start+chunkSize, len(middles))
			g.Go(func() error {
				return r.scoreRange(original, middles, recodings, start, end)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	ranked := RankFor(r.scorer, recodings)
	r.logger.Info("recodings ranked",
		"site", original.String(),
		"scoring", r.scorer.Name(),
		"kept", len(ranked),
		"filtered", pow4(len(original.middle))-len(ranked),
	)
	return ranked, nil
}

// each worker owns recodings[start:end]
func (r *Recoder) scoreRange(original Site, middles []string, recodings []Recoding, start, end int) error {
	for i := start; i < end; i++ {
		candidate, err := candidateSite(original, middles[i], r.translator)
		if err != nil {
			return err
		}
		score, err := r.scorer.Score(r.matrix, original, candidate)
		if err != nil {
			return fmt.Errorf("fail to score %s: %w", candidate, err)
		}
		recodings[i] = Recoding{Original: original, Candidate: candidate, Score: score}
	}
	return nil
}

func pow4(n int) int {
	total := 1
	for i := 0; i < n; i++ {
		total *= len(Nucleotides)
	}
	return total
}
