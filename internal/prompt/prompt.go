// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt reads line-oriented answers from a console with a bounded
// number of retries per field.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTooManyAttempts is returned when a field is rejected maxAttempts times
// in a row.
var ErrTooManyAttempts = errors.New("too many attempts")

const defaultMaxAttempts = 3

// Prompter writes prompts to out and reads answers from in, one per line.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	maxAttempts int
}

// New returns a Prompter. When maxAttempts is 0 or less the default (3) is
// used.
func New(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Prompter{
		in:          bufio.NewScanner(in),
		out:         out,
		maxAttempts: maxAttempts,
	}
}

// MaxAttempts returns the retry ceiling per field.
func (p *Prompter) MaxAttempts() int {
	return p.maxAttempts
}

// Line prints prompt and returns the next input line without its newline.
// It returns io.EOF once input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Field prompts until accept returns nil. Each rejection prints the error and
// counts as one attempt; after maxAttempts rejections Field returns
// ErrTooManyAttempts. Errors reading input are returned as they are.
func (p *Prompter) Field(prompt string, accept func(string) error) error {
	for attempt := 1; ; attempt++ {
		line, err := p.Line(prompt)
		if err != nil {
			return err
		}

		err = accept(line)
		if err == nil {
			return nil
		}
		fmt.Fprintln(p.out, err)

		if attempt >= p.maxAttempts {
			return ErrTooManyAttempts
		}
	}
}

// Choice prints menu and reads an integer in [min, max]. Invalid entries are
// reported and the menu is shown again with no attempt limit.
func (p *Prompter) Choice(menu string, min, max int) (int, error) {
	for {
		line, err := p.Line(menu)
		if err != nil {
			return 0, err
		}
		n, err := parseChoice(line, min, max)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %v\n", err)
			continue
		}
		return n, nil
	}
}

func parseChoice(s string, min, max int) (int, error) {
	fields := strings.Fields(s)
	if len(fields) != 1 {
		return 0, errors.New("only enter one number")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, errors.New("enter an integer")
	}
	if n < min || n > max {
		return 0, fmt.Errorf("enter a number between %d and %d", min, max)
	}
	return n, nil
}
