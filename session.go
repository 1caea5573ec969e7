package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/feliixx/gorecoder/declog"
	"github.com/feliixx/gorecoder/prompt"
	"github.com/feliixx/gorecoder/recoder"
)

const (
	sequencePrompt = "input sequence; highlight serine codon with bars (e.g., 'ct|ttcgga|t'), empty to stop: "
	choicePrompt   = "which recoding would you like to choose? (please input int, empty to skip): "
	genePrompt     = "gene name: "
	positionPrompt = "position of recoding (aa of TCG/TCA codon): "
	notesPrompt    = "recoding notes: "
	logPrompt      = "write log to file? (input filename, empty to discard): "
)

// runSession loops over sequences given by the user, reports their
// recodings and logs the chosen ones
func runSession(rec *recoder.Recoder, options GlobalOptions, p *prompt.Prompter, out io.Writer) error {

	var log declog.Log

	validSite := prompt.Optional(func(seq string) error {
		_, err := rec.Site(seq)
		return err
	})

Loop:
	for {
		seq, err := p.Ask(sequencePrompt, validSite)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if seq == "" {
			break
		}

		original, ranked, err := rec.Recode(seq)
		if err != nil {
			return err
		}
		if err := recoder.WriteReport(out, original, ranked, options.Top); err != nil {
			return err
		}
		if len(ranked) == 0 {
			continue
		}

		answers := make([]string, 4)
		questions := []struct {
			text     string
			validate func(string) error
		}{
			{choicePrompt, prompt.Optional(prompt.Choice(len(ranked)))},
			{genePrompt, nil},
			{positionPrompt, prompt.Int},
			{notesPrompt, nil},
		}
		for i, q := range questions {
			answers[i], err = p.Ask(q.text, q.validate)
			if errors.Is(err, io.EOF) {
				break Loop
			}
			if err != nil {
				return err
			}
			if i == 0 && answers[0] == "" {
				continue Loop
			}
		}

		choice, _ := strconv.Atoi(answers[0])
		position, _ := strconv.Atoi(answers[2])
		log.Append(declog.NewEntry(ranked[choice], answers[1], position, answers[3], time.Now()))
	}

	if log.Len() == 0 {
		return nil
	}

	path := options.LogFile
	if path == "" {
		name, err := p.Ask(logPrompt, nil)
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if name == "" {
			fmt.Fprintf(out, "\n%d decision(s) discarded\n", log.Len())
			return nil
		}
		path = declog.TimestampedName(name, time.Now())
	}

	if err := log.AppendToFile(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%d decision(s) written to %s\n", log.Len(), path)
	return nil
}
