package util

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// PromptYesNo prompts the user with a yes/no question on stderr and reads the
// answer from stdin. Anything but yes counts as no.
func PromptYesNo(question string) (bool, error) {
	fmt.Fprintf(os.Stderr, "%s [y]es / [n]o: ", question)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// ResolveEditor picks the editor command: the override, then $VISUAL, then
// $EDITOR, then the first common editor found on PATH.
func ResolveEditor(override string) (string, error) {
	for _, candidate := range []string{override, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(candidate) != "" {
			return candidate, nil
		}
	}
	for _, e := range []string{"vim", "vi", "nano", "emacs"} {
		if _, err := exec.LookPath(e); err == nil {
			return e, nil
		}
	}
	return "", fmt.Errorf("no editor found. Set $EDITOR or $VISUAL environment variable")
}

// OpenInEditor opens a file in the user's preferred editor and waits for it
// to exit. editor may carry arguments, e.g. "code --wait".
func OpenInEditor(editor, filePath string) error {
	resolved, err := ResolveEditor(editor)
	if err != nil {
		return err
	}
	parts := strings.Fields(resolved)

	// #nosec G204 - editor command comes from the user's flags or environment which is intentional
	cmd := exec.Command(parts[0], append(parts[1:], filePath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q failed: %w", parts[0], err)
	}
	return nil
}

// StdinIsTerminal reports whether stdin is attached to a terminal.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
