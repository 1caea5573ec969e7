package recoder_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/feliixx/gorecoder/recoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodonSet(t *testing.T) {

	set, err := recoder.NewCodonSet("tcg", "TCA", "TgA", "TCA")
	require.NoError(t, err)
	assert.Equal(t, []string{"TCA", "TCG", "TGA"}, set.Codons())
	assert.True(t, set.Contains("tga"))
	assert.False(t, set.Contains("TCT"))

	for _, bad := range []string{"TC", "TCGA", "TCN", ""} {
		_, err := recoder.NewCodonSet(bad)
		assert.True(t, errors.Is(err, recoder.ErrValidation), bad)
	}
}

func TestTargetCodon(t *testing.T) {

	tests := []struct {
		left, middle int
		offset       int
		ok           bool
	}{
		{2, 6, 3, true},
		{3, 3, 3, true},
		{1, 3, 1, true},
		{3, 6, 3, true},
		{1, 6, 3, true},
		{4, 3, 4, true},
		{1, 2, 0, false},
	}
	for _, tt := range tests {
		offset, ok := recoder.TargetCodon(tt.left, tt.middle)
		assert.Equal(t, tt.ok, ok, "%d/%d", tt.left, tt.middle)
		assert.Equal(t, tt.offset, offset, "%d/%d", tt.left, tt.middle)
	}
}

func TestMiddlesCount(t *testing.T) {

	tr := standardCode(t)

	tests := []struct {
		seq  string
		want int
	}{
		// the middle is the checked codon
		{"g|tcg|ct", 64 - 3},
		{"aaa|tcg|ggg", 64 - 3},
		// middle[1:4] is checked, the 3 other bases are free
		{"ct|ttcgga|t", 4096 - 3*64},
	}

	forbidden, err := recoder.NewCodonSet(recoder.DefaultForbidden...)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			site, err := recoder.ParseSite(tt.seq, tr)
			require.NoError(t, err)

			middles, err := recoder.Middles(site, forbidden)
			require.NoError(t, err)
			assert.Len(t, middles, tt.want)
			assert.True(t, sort.StringsAreSorted(middles))

			offset, _ := recoder.TargetCodon(len(site.Left()), len(site.Middle()))
			for _, m := range middles {
				window := site.Left() + m + site.Right()
				assert.False(t, forbidden.Contains(window[offset:offset+3]), m)
			}

			all, err := recoder.Middles(site, recoder.CodonSet{})
			require.NoError(t, err)
			assert.Len(t, all, 1<<(2*len(site.Middle())))
		})
	}
}

func TestMiddlesOrder(t *testing.T) {

	site, err := recoder.ParseSite("g|tcg|ct", standardCode(t))
	require.NoError(t, err)

	middles, err := recoder.Middles(site, nil)
	require.NoError(t, err)
	require.Len(t, middles, 64)
	assert.Equal(t, []string{"AAA", "AAC", "AAG", "AAT", "ACA"}, middles[:5])
	assert.Equal(t, "TTT", middles[63])
}

func TestMiddlesEmpty(t *testing.T) {
	middles, err := recoder.Middles(recoder.Site{}, nil)
	assert.NoError(t, err)
	assert.Empty(t, middles)
}

func TestMiddlesTooLong(t *testing.T) {

	tr := standardCode(t)

	// 4^30 can't be allocated and 4^33 overflows int
	for _, codons := range []int{5, 10, 11} {
		seq := "aaa|" + strings.Repeat("gct", codons) + "|ggg"
		t.Run(seq, func(t *testing.T) {
			site, err := recoder.ParseSite(seq, tr)
			require.NoError(t, err)

			middles, err := recoder.Middles(site, nil)
			assert.True(t, errors.Is(err, recoder.ErrValidation))
			assert.Nil(t, middles)

			sites, err := recoder.Enumerate(site, nil, tr)
			assert.True(t, errors.Is(err, recoder.ErrValidation))
			assert.Nil(t, sites)
		})
	}
}

func TestEnumerate(t *testing.T) {

	tr := standardCode(t)
	site, err := recoder.ParseSite("ct|ttcgga|t", tr)
	require.NoError(t, err)

	forbidden, err := recoder.NewCodonSet(recoder.DefaultForbidden...)
	require.NoError(t, err)

	candidates, err := recoder.Enumerate(site, forbidden, tr)
	require.NoError(t, err)
	require.Len(t, candidates, 4096-192)

	middles, err := recoder.Middles(site, forbidden)
	require.NoError(t, err)
	for i, c := range candidates {
		assert.Equal(t, site.Left(), c.Left())
		assert.Equal(t, site.Right(), c.Right())
		assert.Equal(t, middles[i], c.Middle())
		assert.Len(t, c.OnFrameProt(), 3)
		assert.Len(t, c.OffFrameProt(), 2)
	}
}

// failOn translates with the standard code but rejects any sequence
// holding codon in frame
type failOn struct {
	tr    recoder.Translator
	codon string
}

func (f failOn) Translate(seq string) ([]byte, error) {
	for i := 0; i+3 <= len(seq); i += 3 {
		if seq[i:i+3] == f.codon {
			return nil, errors.New("untranslatable codon " + f.codon)
		}
	}
	return f.tr.Translate(seq)
}

func TestEnumerateCandidateFailure(t *testing.T) {

	tr := failOn{tr: standardCode(t), codon: "TTT"}
	site, err := recoder.ParseSite("g|tcg|ct", tr)
	require.NoError(t, err)

	sites, err := recoder.Enumerate(site, nil, tr)
	assert.True(t, errors.Is(err, recoder.ErrInvariant))
	assert.True(t, errors.Is(err, recoder.ErrValidation))
	assert.Nil(t, sites)
}
