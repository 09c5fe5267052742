package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

// ptermInput asks every question with an interactive text input.
type ptermInput struct{}

func (ptermInput) ReadLine(prompt string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	pterm.Println()
	return answer, err
}

// lineInput reads one answer per line, for pipes and dumb terminals.
// Lines have no length limit: an overlong answer is just an invalid one.
type lineInput struct {
	reader *bufio.Reader
	out    io.Writer
}

func newLineInput(r io.Reader, w io.Writer) *lineInput {
	return &lineInput{reader: bufio.NewReader(r), out: w}
}

// ReadLine returns io.EOF only once no text is left. A last line without a
// trailing newline is still returned.
func (in *lineInput) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(in.out, "%s: ", prompt)
	line, err := in.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
