// Package prompt asks questions on a line based terminal
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// max size of an answer
const maxLineSize = 64 * 1024

// Prompter reads one answer per line
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New returns a Prompter reading answers from in and writing questions
// to out
func New(in io.Reader, out io.Writer) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &Prompter{scanner: scanner, out: out}
}

// Ask writes question and returns the first answer accepted by validate,
// with surrounding spaces removed. Rejected answers are reported and
// the question is asked again. A nil validate accepts anything. At the
// end of the input, Ask returns io.EOF.
func (p *Prompter) Ask(question string, validate func(string) error) (string, error) {
	for {
		fmt.Fprint(p.out, question)

		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}

		answer := strings.TrimSpace(p.scanner.Text())
		if validate == nil {
			return answer, nil
		}
		err := validate(answer)
		if err == nil {
			return answer, nil
		}
		fmt.Fprintf(p.out, "invalid input: %v\n", err)
	}
}
