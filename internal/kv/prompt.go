package kv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Valid confirmation responses, after normalization to one character.
const (
	responseYes = "y"
	responseNo  = "n"
)

// Confirm asks a single-shot yes/no question on stdin. See ConfirmFrom.
func Confirm(prompt string) (bool, error) {
	return ConfirmFrom(os.Stdin, os.Stdout, prompt)
}

// ConfirmFrom displays prompt with a "[y/n]" suffix, reads exactly one line,
// strips all whitespace, lowercases the rest, and keeps only the first
// character. "y" confirms, "n" declines; anything else (including an empty
// line) is an InputError. There is deliberately no retry loop: one malformed
// response ends the confirmation, so a non-interactive input stream can never
// spin forever. Note the first-character truncation means any input starting
// with "y" ("yes", "yup") confirms.
func ConfirmFrom(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/n]\n", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	response := strings.ToLower(strings.Join(strings.Fields(line), ""))
	if len(response) > 1 {
		response = response[:1]
	}

	switch response {
	case responseYes:
		return true, nil
	case responseNo:
		return false, nil
	default:
		return false, &InputError{Response: response}
	}
}
