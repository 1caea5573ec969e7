package recoder

import (
	"fmt"
	"math"
	"sort"

	"github.com/feliixx/gorecoder/submat"
)

// Scorer computes the score of replacing original by candidate. A
// Scorer must be a pure function of its arguments.
type Scorer interface {
	Name() string
	Score(m *submat.Matrix, original, candidate Site) (float64, error)
	// LowerIsBetter is true for dissimilarity scores
	LowerIsBetter() bool
}

// names of the available scoring policies
const (
	SumScoring         = "sum"
	DistanceScoring    = "distance"
	DistributedScoring = "distributed"
)

var scorers = map[string]Scorer{
	SumScoring:         SumScore{},
	DistanceScoring:    DistanceScore{},
	DistributedScoring: DistributedScore{ResidueExponent: 1.1, FrameExponent: 1.5},
}

// ScorerByName returns the scoring policy registered as name. An empty
// name selects SumScoring.
func ScorerByName(name string) (Scorer, error) {
	if name == "" {
		name = SumScoring
	}
	s, ok := scorers[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown scoring %q, expected one of %v", ErrValidation, name, ScorerNames())
	}
	return s, nil
}

// ScorerNames returns the registered scoring policies, sorted
func ScorerNames() []string {
	names := make([]string, 0, len(scorers))
	for name := range scorers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SumScore sums matrix[original][candidate] over the on frame then the
// off frame amino acids. The higher, the more similar.
type SumScore struct{}

// Name implements Scorer
func (SumScore) Name() string { return SumScoring }

// LowerIsBetter implements Scorer
func (SumScore) LowerIsBetter() bool { return false }

// Score implements Scorer
func (SumScore) Score(m *submat.Matrix, original, candidate Site) (float64, error) {
	return sumPairs(original, candidate, m.Score)
}

// DistanceScore sums matrix[a][a] - matrix[a][candidate] over both
// frames. It is 0 for identical sites.
type DistanceScore struct{}

// Name implements Scorer
func (DistanceScore) Name() string { return DistanceScoring }

// LowerIsBetter implements Scorer
func (DistanceScore) LowerIsBetter() bool { return true }

// Score implements Scorer
func (DistanceScore) Score(m *submat.Matrix, original, candidate Site) (float64, error) {
	return sumPairs(original, candidate, m.Dissimilarity)
}

// DistributedScore raises each per residue dissimilarity to
// ResidueExponent, sums it per frame, and adds the frame sums raised to
// FrameExponent. With exponents above 1, the same amount of change
// scores lower when spread over both frames than when it hits one
// frame only.
type DistributedScore struct {
	ResidueExponent float64
	FrameExponent   float64
}

// Name implements Scorer
func (DistributedScore) Name() string { return DistributedScoring }

// LowerIsBetter implements Scorer
func (DistributedScore) LowerIsBetter() bool { return true }

// Score implements Scorer
func (d DistributedScore) Score(m *submat.Matrix, original, candidate Site) (float64, error) {

	if err := checkLengths(original, candidate); err != nil {
		return 0, err
	}

	frames := [2][2]string{
		{original.onFrameProt, candidate.onFrameProt},
		{original.offFrameProt, candidate.offFrameProt},
	}

	total := 0.0
	for _, frame := range frames {
		frameSum := 0.0
		for i := 0; i < len(frame[0]); i++ {
			dist, err := m.Dissimilarity(frame[0][i], frame[1][i])
			if err != nil {
				return 0, err
			}
			if dist < 0 {
				return 0, fmt.Errorf("%w: %c -> %c scores %v", ErrNegativeDissimilarity, frame[0][i], frame[1][i], dist)
			}
			frameSum += math.Pow(dist, d.ResidueExponent)
		}
		total += math.Pow(frameSum, d.FrameExponent)
	}
	return total, nil
}

func sumPairs(original, candidate Site, pairScore func(a, b byte) (float64, error)) (float64, error) {

	if err := checkLengths(original, candidate); err != nil {
		return 0, err
	}

	from, to := original.Aminos(), candidate.Aminos()
	total := 0.0
	for i := 0; i < len(from); i++ {
		v, err := pairScore(from[i], to[i])
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

func checkLengths(original, candidate Site) error {
	if len(original.onFrameProt) != len(candidate.onFrameProt) || len(original.offFrameProt) != len(candidate.offFrameProt) {
		return fmt.Errorf("%w: %s (%s/%s) and %s (%s/%s) differ in protein length", ErrInvariant,
			original, original.onFrameProt, original.offFrameProt,
			candidate, candidate.onFrameProt, candidate.offFrameProt)
	}
	return nil
}
