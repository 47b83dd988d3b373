package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword and isTerminal are test seams for golang.org/x/term.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The line is trimmed of surrounding whitespace. If EOF occurs after
// some input was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text: _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a prompt to w and reads a credential.
//
// When stdin is a terminal the read happens without echo; otherwise the
// helper deliberately falls back to a plain line read from reader. The
// fallback is a capability probe, not a caught failure: whether echo is
// suppressed depends only on the environment the program runs in.
func GetPassword(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}

	fd := int(os.Stdin.Fd())
	if isTerminal(fd) {
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(pw)), nil
	}

	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptField re-prompts until check accepts the input. Rejections are
// printed and retried; read errors end the loop.
func promptField(reader *bufio.Reader, prompt string, w io.Writer, check func(string) error) (string, error) {
	for {
		v, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if err := check(v); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		return v, nil
	}
}

// promptOptional is promptField for edit flows: an empty input means "keep
// the current value" and is returned as-is without validation.
func promptOptional(reader *bufio.Reader, prompt string, w io.Writer, check func(string) error) (string, error) {
	for {
		v, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if v == "" {
			return "", nil
		}
		if err := check(v); err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		return v, nil
	}
}
