package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// promptConfirmer asks y/n questions on the terminal.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
	yes bool
}

func (p *promptConfirmer) Confirm(_ context.Context, title, message string) (bool, error) {
	if p.yes {
		return true, nil
	}
	fmt.Fprintf(p.out, "%s\n%s [y/N]: ", title, message)
	answer, err := readLine(p.in)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		fmt.Fprintln(p.out)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "t", "tak":
		return true, nil
	}
	return false, nil
}

// readLine returns the next trimmed line; a final line without newline counts.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(line), nil
}

// ask prints a prompt and reads the answer.
func (a *app) ask(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	return readLine(a.in)
}
