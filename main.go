package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/feliixx/gorecoder/declog"
	"github.com/feliixx/gorecoder/prompt"
	"github.com/feliixx/gorecoder/recoder"
	"github.com/feliixx/gorecoder/submat"
	"github.com/jessevdk/go-flags"
)

const (
	version  = "0.1.0"
	toolName = "gorecoder"
)

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Input           `group:"input"`
	recoder.Options `group:"optional"`
	Decision        `group:"decision log"`
	General         `group:"general"`
}

// Input struct to store the sequence and matrix args
type Input struct {
	Sequence    string `short:"s" long:"sequence" value-name:"<left|middle|right>" description:"Sequence window to recode, the middle segment is the one substituted, e.g. 'ct|ttcgga|t'"`
	Matrix      string `short:"m" long:"matrix" value-name:"<filename>" description:"Substitution matrix as CSV, default is BLOSUM62"`
	Interactive bool   `short:"i" long:"interactive" description:"Prompt for sequences and choices until an empty sequence is given"`
}

// Decision struct to store decision log args
type Decision struct {
	Choose   int    `short:"c" long:"choose" value-name:"<rank>" description:"Rank of the recoding to record in the decision log" default:"-1"`
	LogFile  string `short:"l" long:"log" value-name:"<filename>" description:"CSV decision log, chosen recodings are appended to it"`
	Gene     string `long:"gene" value-name:"<name>" description:"Gene holding the site"`
	Position int    `long:"position" value-name:"<n>" description:"Position of the recoded codon, in amino acids"`
	Notes    string `long:"notes" value-name:"<text>" description:"Free notes stored with the decision"`
}

// General struct to store required command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
	Verbose bool `short:"V" long:"verbose" description:"Log debug information on stderr"`
}

func parseOptions(args []string) (GlobalOptions, *flags.Parser, error) {
	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.ParseArgs(args)
	return options, p, err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(options GlobalOptions, in io.Reader, out, errOut io.Writer) error {

	if options.Sequence == "" && !options.Interactive {
		return fmt.Errorf("missing required parameter -s | --sequence, try %s --help for details", toolName)
	}
	if options.Choose >= 0 && options.LogFile == "" && !options.Interactive {
		return fmt.Errorf("parameter -c | --choose requires -l | --log, try %s --help for details", toolName)
	}

	if options.NumWorker == 0 {
		options.NumWorker = runtime.NumCPU()
	}

	matrix := submat.BLOSUM62()
	if options.Matrix != "" {
		var err error
		matrix, err = submat.Load(options.Matrix)
		if err != nil {
			return err
		}
	}

	rec, err := recoder.New(matrix, options.Options, newLogger(errOut, options.Verbose))
	if err != nil {
		return err
	}

	if options.Interactive {
		return runSession(rec, options, prompt.New(in, out), out)
	}

	original, ranked, err := rec.Recode(options.Sequence)
	if err != nil {
		return err
	}
	err = recoder.WriteReport(out, original, ranked, options.Top)
	if err != nil || options.Choose < 0 {
		return err
	}

	if options.Choose >= len(ranked) {
		return fmt.Errorf("no recoding at rank %d, only %d found", options.Choose, len(ranked))
	}
	var log declog.Log
	log.Append(declog.NewEntry(ranked[options.Choose], options.Gene, options.Position, options.Notes, time.Now()))
	if err := log.AppendToFile(options.LogFile); err != nil {
		return err
	}
	fmt.Fprintf(out, "recoding %d written to %s\n", options.Choose, options.LogFile)
	return nil
}

func main() {

	options, p, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Printf("wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	err = run(options, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Printf("fail to recode sequence:\n%v\n", err)
		os.Exit(1)
	}
}
