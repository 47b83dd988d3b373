package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func stubTerminal(t *testing.T, terminal bool, pw []byte, pwErr error) {
	t.Helper()
	oldIsTerminal, oldReadPassword := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	readPassword = func(int) ([]byte, error) { return pw, pwErr }
	t.Cleanup(func() {
		isTerminal, readPassword = oldIsTerminal, oldReadPassword
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Name?: ")
}

func TestGetSimpleText_EOFReturnsPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	require.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword_TerminalSuppressesEcho(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)

	var out bytes.Buffer
	got, err := GetPassword(rdr(""), "Password", &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
}

func TestGetPassword_TerminalReadError(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password", &out)
	require.Error(t, err)
}

func TestGetPassword_PlainFallbackWithoutTerminal(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	got, err := GetPassword(rdr("typed in the open\n"), "Password", &out)
	require.NoError(t, err)
	require.Equal(t, "typed in the open", got)
}

func TestPromptField_RetriesUntilValid(t *testing.T) {
	check := func(s string) error {
		if len(s) < 3 {
			return errors.New("too short")
		}
		return nil
	}

	var out bytes.Buffer
	got, err := promptField(rdr("a\nab\nabc\n"), "Name", &out, check)
	require.NoError(t, err)
	require.Equal(t, "abc", got)
	require.Equal(t, 2, strings.Count(out.String(), "too short"))
}

func TestPromptOptional_EmptyMeansKeep(t *testing.T) {
	check := func(string) error { return errors.New("never accepted") }

	var out bytes.Buffer
	got, err := promptOptional(rdr("\n"), "New name", &out, check)
	require.NoError(t, err)
	require.Empty(t, got, "empty input bypasses validation")
}

func TestPromptOptional_ValidatesNonEmpty(t *testing.T) {
	check := func(s string) error {
		if s == "bad" {
			return errors.New("rejected")
		}
		return nil
	}

	var out bytes.Buffer
	got, err := promptOptional(rdr("bad\ngood\n"), "New name", &out, check)
	require.NoError(t, err)
	require.Equal(t, "good", got)
	require.Contains(t, out.String(), "rejected")
}
