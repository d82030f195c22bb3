package auth

import (
	"bufio"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrIncorrectPassword = errors.New("incorrect password")

// Verify compares an entered password with the configured one.
func Verify(entered, password string) error {
	if subtle.ConstantTimeCompare([]byte(entered), []byte(password)) != 1 {
		return ErrIncorrectPassword
	}
	return nil
}

// Prompt asks for the password once. Input is not echoed when in is a
// terminal. There is no retry.
func Prompt(in *os.File, out io.Writer, password string) error {
	fmt.Fprint(out, "Enter password to continue: ")

	if term.IsTerminal(int(in.Fd())) {
		entered, err := term.ReadPassword(int(in.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		return Verify(string(entered), password)
	}

	return PromptReader(in, password)
}

// PromptReader reads a single line from r and verifies it.
func PromptReader(r io.Reader, password string) error {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read password: %w", err)
	}
	return Verify(strings.TrimRight(line, "\r\n"), password)
}
