package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadLine prompts for a plain value and reads a single trimmed line.
func ReadLine(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// ReadSecret prompts for a value without echoing it back to the terminal. The
// value is never logged.
func ReadSecret(label string) (string, error) {
	fmt.Printf("%s: ", label)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(raw)), nil
}
