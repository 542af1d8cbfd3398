package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errTokenRequired = errors.New("token is required (--token, or paste it on stdin)")

// resolveToken prefers the flag, then prompts without echo on a terminal, then
// reads the first non-empty line of piped stdin.
func resolveToken(cmd *cobra.Command, flagValue string) (string, error) {
	if tok := strings.TrimSpace(flagValue); tok != "" {
		return tok, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		if tok := strings.TrimSpace(string(b)); tok != "" {
			return tok, nil
		}
		return "", errTokenRequired
	}
	return readToken(in)
}

func readToken(r io.Reader) (string, error) {
	if r == nil {
		return "", errTokenRequired
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return "", errTokenRequired
}
