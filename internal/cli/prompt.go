package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the prompt input ends before a path was given.
var ErrNoInput = errors.New("no path given")

// PromptPaths asks for the automaton file and the strings file, one line each.
func PromptPaths(r io.Reader, w io.Writer) (automaton, strs string, err error) {
	br := bufio.NewReader(r)

	automaton, err = prompt(br, w, "Enter automaton file path: ")
	if err != nil {
		return "", "", err
	}
	strs, err = prompt(br, w, "Enter strings file path: ")
	if err != nil {
		return "", "", err
	}
	return automaton, strs, nil
}

func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	text, err := r.ReadString('\n')
	text = strings.TrimSpace(text)
	if text != "" {
		return text, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return "", ErrNoInput
}
