package util

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func withStdin(t *testing.T, input string) {
	t.Helper()
	oldStdin := os.Stdin
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open devnull failed: %v", err)
	}
	os.Stdin = r
	os.Stderr = devNull
	t.Cleanup(func() {
		os.Stdin = oldStdin
		os.Stderr = oldStderr
		r.Close()
		devNull.Close()
	})
	go func() {
		defer w.Close()
		io.WriteString(w, input)
	}()
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes response", input: "y\n", want: true},
		{name: "yes full response", input: "yes\n", want: true},
		{name: "uppercase response", input: "YES\n", want: true},
		{name: "no response", input: "n\n", want: false},
		{name: "unknown response defaults to no", input: "maybe\n", want: false},
		{name: "answer without newline", input: "y", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStdin(t, tt.input)
			got, err := PromptYesNo("rename?")
			if err != nil {
				t.Fatalf("PromptYesNo() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PromptYesNo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPromptYesNoClosedInput(t *testing.T) {
	withStdin(t, "")
	if _, err := PromptYesNo("rename?"); err == nil {
		t.Fatalf("expected error on closed input")
	}
}

func TestResolveEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "nano")
	got, err := ResolveEditor("")
	if err != nil || got != "nano" {
		t.Fatalf("expected $EDITOR, got %q %v", got, err)
	}

	t.Setenv("VISUAL", "code --wait")
	if got, _ := ResolveEditor(""); got != "code --wait" {
		t.Fatalf("expected $VISUAL to win, got %q", got)
	}
	if got, _ := ResolveEditor("ed"); got != "ed" {
		t.Fatalf("expected override to win, got %q", got)
	}
}

func TestOpenInEditor(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "buffer.txt")
	if err := os.WriteFile(target, []byte("TITLE=\n"), 0o600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	script := filepath.Join(dir, "fake-editor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'TITLE=Edited' > \"$1\"\n"), 0o700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := OpenInEditor(script, target); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(target)
	if string(data) != "TITLE=Edited\n" {
		t.Fatalf("editor did not run: %q", data)
	}

	if err := OpenInEditor(filepath.Join(dir, "missing-editor"), target); err == nil {
		t.Fatalf("expected error for missing editor")
	}
}
