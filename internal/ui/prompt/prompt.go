// Package prompt reads validated answers from a line-oriented terminal.
// Invalid answers are reported and the question is asked again.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when input ends before an answer is given.
var ErrInputClosed = errors.New("input closed")

const (
	msgNotNumber   = "Please enter a number."
	msgNotPositive = "Please enter a positive number."
)

type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Say writes one line of output.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line asks prompt and returns the answer without surrounding spaces. A
// final unterminated line is still returned.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	text, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && text != "" {
			return strings.TrimSpace(text), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(text), nil
}

func (p *Prompter) PositiveInt(prompt string) (int, error) {
	for {
		text, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			p.Say(msgNotNumber)
			continue
		}
		if v <= 0 {
			p.Say(msgNotPositive)
			continue
		}
		return v, nil
	}
}

func (p *Prompter) PositiveFloat(prompt string) (float64, error) {
	for {
		text, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			p.Say(msgNotNumber)
			continue
		}
		if !(v > 0) || math.IsInf(v, 1) {
			p.Say(msgNotPositive)
			continue
		}
		return v, nil
	}
}

// Choice returns the option matching the answer, compared without case.
// errMsg is printed for any other answer.
func (p *Prompter) Choice(prompt string, options []string, errMsg string) (string, error) {
	for {
		text, err := p.Line(prompt)
		if err != nil {
			return "", err
		}
		for _, option := range options {
			if strings.EqualFold(text, option) {
				return option, nil
			}
		}
		p.Say(errMsg)
	}
}

// Confirm treats y and yes as true and every other answer as false.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	text, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(text) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
