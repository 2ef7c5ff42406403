package ignore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Prompter asks yes/no questions on a line-oriented stream.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Confirm prints "<verb> <subject> <rest>? [Yn] " with subject highlighted.
// An empty answer means yes; end of input means no.
func (p *Prompter) Confirm(verb, subject, rest string) bool {
	question := verb + " " + color.New(color.FgCyan).Sprint(subject)
	if rest != "" {
		question += " " + rest
	}
	fmt.Fprintf(p.out, "%s? [Yn] ", question)

	if !p.in.Scan() {
		return false
	}

	response := strings.TrimSpace(strings.ToLower(p.in.Text()))
	return response == "" || response == "y" || response == "yes"
}
