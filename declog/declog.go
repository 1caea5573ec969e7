// Package declog records the recodings chosen by a user. The log is
// append only and stored as CSV, one row per decision.
package declog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/feliixx/gorecoder/recoder"
	"github.com/google/uuid"
)

// Header lists the CSV columns, in order
var Header = []string{"id", "time", "original_seq", "recoded_seq", "score", "gene", "position", "notes"}

// Entry is one decision
type Entry struct {
	ID       uuid.UUID
	Time     time.Time
	Original string
	Recoded  string
	Score    float64
	Gene     string
	Position int
	Notes    string
}

// NewEntry records rec as chosen at t
func NewEntry(rec recoder.Recoding, gene string, position int, notes string, t time.Time) Entry {
	return Entry{
		ID:       uuid.New(),
		Time:     t,
		Original: rec.Original.String(),
		Recoded:  rec.Candidate.String(),
		Score:    rec.Score,
		Gene:     gene,
		Position: position,
		Notes:    notes,
	}
}

func (e Entry) record() []string {
	return []string{
		e.ID.String(),
		e.Time.Format(time.RFC3339),
		e.Original,
		e.Recoded,
		recoder.FormatScore(e.Score),
		e.Gene,
		strconv.Itoa(e.Position),
		e.Notes,
	}
}

// Log holds the entries of a session
type Log struct {
	entries []Entry
}

// Append adds e at the end of the log
func (l *Log) Append(e Entry) {
	l.entries = append(l.entries, e)
}

// Len returns the number of entries
func (l *Log) Len() int { return len(l.entries) }

// Entries returns a copy of the entries
func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

// WriteCSV writes the entries to w, preceded by Header when header is
// true
func (l *Log) WriteCSV(w io.Writer, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(Header); err != nil {
			return err
		}
	}
	for _, e := range l.entries {
		if err := cw.Write(e.record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// AppendToFile appends the entries to the CSV file at path, creating it
// with a header row if needed
func (l *Log) AppendToFile(path string) error {

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return err
	}

	err = l.WriteCSV(f, info.Size() == 0)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("fail to write decision log %s: %w", path, err)
	}
	return nil
}

// ReadCSV reads entries written by WriteCSV, header included
func ReadCSV(r io.Reader) ([]Entry, error) {

	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	entries := make([]Entry, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(Header) {
			return nil, fmt.Errorf("line %d: %d fields, expected %d", i+2, len(rec), len(Header))
		}
		e := Entry{Original: rec[2], Recoded: rec[3], Gene: rec[5], Notes: rec[7]}
		if e.ID, err = uuid.Parse(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if e.Time, err = time.Parse(time.RFC3339, rec[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if e.Score, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		if e.Position, err = strconv.Atoi(rec[6]); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// TimestampedName returns "<base> @ <date time>.csv", the name used
// when a session log is saved under a user given name
func TimestampedName(base string, t time.Time) string {
	return fmt.Sprintf("%s @ %s.csv", base, t.Format("2006-01-02 15-04-05"))
}
