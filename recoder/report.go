package recoder

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// width of the line separating two reported recodings
const separatorWidth = 40

type reportWriter struct {
	buf *bytes.Buffer
}

func newReportWriter() *reportWriter {
	return &reportWriter{buf: bytes.NewBuffer(make([]byte, 0, 4096))}
}

func (w *reportWriter) writeSite(label string, s Site) {
	fmt.Fprintf(w.buf, "%s sequence: %s\n", label, s)
	fmt.Fprintf(w.buf, "on frame aminos: %s | off frame aminos: %s\n", s.OnFrameProt(), s.OffFrameProt())
}

func (w *reportWriter) writeRecoding(i int, rec Recoding) {
	fmt.Fprintf(w.buf, "%d: %s\n", i, strings.Repeat("/", separatorWidth))
	fmt.Fprintf(w.buf, "recoded sequence: %s | score: %s\n", rec.Candidate, FormatScore(rec.Score))
	fmt.Fprintf(w.buf, "on frame aminos: %s | off frame aminos: %s\n", rec.Candidate.OnFrameProt(), rec.Candidate.OffFrameProt())
}

func (w *reportWriter) flush(out io.Writer) error {
	_, err := out.Write(w.buf.Bytes())
	if err != nil {
		return fmt.Errorf("fail to write report: %v", err)
	}
	w.buf.Reset()
	return nil
}

// WriteReport writes the original site followed by the top best
// recodings of ranked, numbered from 0. A top <= 0 reports everything.
func WriteReport(out io.Writer, original Site, ranked []Recoding, top int) error {

	w := newReportWriter()
	w.writeSite("original", original)

	fmt.Fprintf(w.buf, "I found %d recodings\n", len(ranked))
	if len(ranked) == 0 {
		return w.flush(out)
	}

	if top <= 0 || top > len(ranked) {
		top = len(ranked)
	}
	fmt.Fprintf(w.buf, "The first %d recodings are:\n", top)
	for i, rec := range ranked[:top] {
		w.writeRecoding(i, rec)
	}
	return w.flush(out)
}

// FormatScore prints a score with the fewest digits that read back to
// the same value
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
