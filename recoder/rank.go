package recoder

import "sort"

// Recoding pairs an original site with one of its candidates
type Recoding struct {
	Original  Site
	Candidate Site
	Score     float64
}

// Rank returns a copy of recodings sorted by decreasing score. Equal
// scores keep their input order, so ranking the output of Enumerate
// is deterministic.
func Rank(recodings []Recoding) []Recoding {
	return rank(recodings, func(a, b float64) bool { return a > b })
}

// RankFor ranks recodings best first for s: by decreasing score, or
// by increasing score when s.LowerIsBetter(). Unlike Rank, the
// dissimilarity scorers (distance, distributed) are therefore ranked in
// ascending order so the least disruptive recoding comes first. Ties
// are kept stable as in Rank.
func RankFor(s Scorer, recodings []Recoding) []Recoding {
	if s.LowerIsBetter() {
		return rank(recodings, func(a, b float64) bool { return a < b })
	}
	return Rank(recodings)
}

func rank(recodings []Recoding, better func(a, b float64) bool) []Recoding {
	ranked := make([]Recoding, len(recodings))
	copy(ranked, recodings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return better(ranked[i].Score, ranked[j].Score)
	})
	return ranked
}
