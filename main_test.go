package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/refslug/refslug/cmd"
	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/testutil"
)

func TestRunSuccessAndFailure(t *testing.T) {
	fix := testutil.NewFixture(t)
	good := fix.WriteFile(t, "good.txt", []byte(testutil.SampleKeyValue))
	bad := fix.WriteFile(t, "bad.txt", []byte("TITLE=Only a title\n"))

	root := cmd.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	t.Cleanup(func() {
		root.SetArgs(nil)
		root.SetOut(nil)
		root.SetErr(nil)
		config.SetCurrent(nil)
	})

	config.SetCurrent(nil)
	root.SetArgs([]string{"slug", good})
	if code := run(); code != 0 {
		t.Fatalf("expected success, got %d", code)
	}
	if strings.TrimSpace(out.String()) != "wagner_richard_1852_oper_und_drama" {
		t.Fatalf("unexpected slug output: %q", out.String())
	}

	config.SetCurrent(nil)
	root.SetArgs([]string{"slug", bad})
	if code := run(); code != cmd.ExitCodeValidation {
		t.Fatalf("expected validation exit, got %d", code)
	}

	config.SetCurrent(nil)
	root.SetArgs([]string{"slug", fix.Path("missing.txt")})
	if code := run(); code != cmd.ExitCodeNotFound {
		t.Fatalf("expected not found exit, got %d", code)
	}
}
