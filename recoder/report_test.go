package recoder_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/feliixx/gorecoder/recoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {

	r := newRecoder(t, recoder.DefaultOptions())
	original, ranked, err := r.Recode("g|tcg|ct")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, recoder.WriteReport(&out, original, ranked, 2))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "original sequence: G|TCG|CT", lines[0])
	assert.Equal(t, "on frame aminos: VA | off frame aminos: S", lines[1])
	assert.Equal(t, "I found 61 recodings", lines[2])
	assert.Equal(t, "The first 2 recodings are:", lines[3])
	assert.Equal(t, "0: "+strings.Repeat("/", 40), lines[4])
	assert.Equal(t, "recoded sequence: G|TCT|CT | score: 9", lines[5])
	assert.Equal(t, "on frame aminos: VS | off frame aminos: S", lines[6])
	assert.True(t, strings.HasPrefix(lines[7], "1: "))
}

func TestWriteReportAll(t *testing.T) {

	r := newRecoder(t, recoder.DefaultOptions())
	original, ranked, err := r.Recode("g|tcg|ct")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, recoder.WriteReport(&out, original, ranked, 0))
	assert.Contains(t, out.String(), "The first 61 recodings are:")
	assert.Contains(t, out.String(), "\n60: ")
}

func TestWriteReportEmpty(t *testing.T) {

	var out bytes.Buffer
	require.NoError(t, recoder.WriteReport(&out, mustSite(t, "g|tcg|ct"), nil, 10))
	assert.True(t, strings.HasSuffix(out.String(), "I found 0 recodings\n"))
	assert.NotContains(t, out.String(), "The first")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportError(t *testing.T) {
	err := recoder.WriteReport(failingWriter{}, mustSite(t, "g|tcg|ct"), nil, 10)
	assert.ErrorContains(t, err, "disk full")
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "9", recoder.FormatScore(9))
	assert.Equal(t, "-2.5", recoder.FormatScore(-2.5))
}
