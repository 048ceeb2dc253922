package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const separatorLine = "--------------------------------------------------"

// Prompter does the line-oriented conversation with the operator. Reads are
// synchronous; a non-numeric answer where a number is expected re-prompts
// instead of failing the read.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Say writes one line to the operator.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Separator writes the dashed line that closes each interaction block.
func (p *Prompter) Separator() {
	fmt.Fprintln(p.out, separatorLine)
}

// ReadLine prompts and returns the operator's answer with surrounding
// whitespace trimmed. The error is non-nil only when input is exhausted.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadInt prompts until the operator types a whole number.
func (p *Prompter) ReadInt(prompt string) (int, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			p.Say("That is not a whole number, try again.")
			continue
		}
		return n, nil
	}
}

// ReadIntRange prompts until the operator types a whole number in
// [min, max].
func (p *Prompter) ReadIntRange(prompt string, min, max int) (int, error) {
	for {
		n, err := p.ReadInt(prompt)
		if err != nil {
			return 0, err
		}
		if n < min || n > max {
			p.Say("Please type a number between %d and %d.", min, max)
			continue
		}
		return n, nil
	}
}

// ReadFloat prompts until the operator types a number.
func (p *Prompter) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil {
			p.Say("That is not a number, try again.")
			continue
		}
		return f, nil
	}
}
