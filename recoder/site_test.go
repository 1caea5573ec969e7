package recoder_test

import (
	"errors"
	"testing"

	"github.com/feliixx/gorecoder/ncbicode"
	"github.com/feliixx/gorecoder/recoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardCode(t testing.TB) *ncbicode.Translator {
	t.Helper()
	tr, err := ncbicode.NewTranslator(ncbicode.Standard)
	require.NoError(t, err)
	return tr
}

func TestParseSite(t *testing.T) {

	tr := standardCode(t)

	tests := []struct {
		seq      string
		str      string
		onFrame  string
		onProt   string
		offProt  string
		aminos   string
		leftFlnk string
	}{
		{"ct|ttcgga|t", "CT|TTCGGA|T", "CTTTCGGAT", "LSD", "FG", "LSDFG", "CT"},
		{"g|tcg|ct", "G|TCG|CT", "GTCGCT", "VA", "S", "VAS", "G"},
		{"AAA|CCC|GGG", "AAA|CCC|GGG", "AAACCCGGG", "KPG", "P", "KPGP", "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.seq, func(t *testing.T) {
			site, err := recoder.ParseSite(tt.seq, tr)
			require.NoError(t, err)
			assert.Equal(t, tt.str, site.String())
			assert.Equal(t, tt.onFrame, site.OnFrame())
			assert.Equal(t, tt.onProt, site.OnFrameProt())
			assert.Equal(t, tt.offProt, site.OffFrameProt())
			assert.Equal(t, site.Middle(), site.OffFrame())
			assert.Equal(t, tt.aminos, site.Aminos())
			assert.Equal(t, tt.leftFlnk, site.Left())
		})
	}
}

func TestParseSiteCanonicalLengths(t *testing.T) {
	site, err := recoder.ParseSite("ct|ttcgga|t", standardCode(t))
	require.NoError(t, err)
	assert.Len(t, site.OnFrameProt(), 3)
	assert.Len(t, site.OffFrameProt(), 2)
}

func TestParseSiteInvalid(t *testing.T) {

	tr := standardCode(t)

	for _, seq := range []string{
		"",
		"gtcgct",
		"g|tcg",
		"g|tcg|ct|a",
		"|tcg|gct",
		"g||tcgct",
		"gtc|gct|",
		"g|tcn|ct",
		"g|tug|ct",
		"g|tcg|c",
		"gt|cg|ct",
		"g t|cg|ct",
	} {
		t.Run(seq, func(t *testing.T) {
			_, err := recoder.ParseSite(seq, tr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, recoder.ErrValidation), "got %v", err)
		})
	}
}

func TestWithMiddleKeepsFlanks(t *testing.T) {

	tr := standardCode(t)
	site, err := recoder.ParseSite("ct|ttcgga|t", tr)
	require.NoError(t, err)

	candidate, err := site.WithMiddle("AAAAAA", tr)
	require.NoError(t, err)
	assert.Equal(t, "CT|AAAAAA|T", candidate.String())
	assert.Equal(t, "LSD", site.OnFrameProt(), "original must not change")
	assert.Equal(t, "LKN", candidate.OnFrameProt())
	assert.Equal(t, "KK", candidate.OffFrameProt())
}
