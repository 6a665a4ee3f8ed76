package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/refslug/refslug/internal/config"
)

// SampleKeyValue is a complete key=value metadata buffer.
const SampleKeyValue = `TITLE=Oper und Drama
YEAR=1852
AUTHOR=Richard Wagner
`

// SampleTagged is the tagged block rendition of SampleKeyValue.
const SampleTagged = `<title>
Oper und Drama
</title>
<year>
1852
</year>
<authors>
Richard Wagner
</authors>
`

// Fixture provides a temporary directory holding documents to rename.
type Fixture struct {
	Root string
}

// NewFixture initialises a new workspace containing a single document.pdf.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	fix := &Fixture{Root: t.TempDir()}
	fix.WriteFile(t, "document.pdf", []byte("%PDF-1.4\n"))
	return fix
}

// Options returns cli options initialised for the fixture with default
// format and marker.
func (f *Fixture) Options(t *testing.T, jsonOut, verbose, dry bool) *config.Options {
	t.Helper()
	opts := config.New()
	if err := opts.Init(jsonOut, verbose, dry, "", "", ""); err != nil {
		t.Fatalf("failed to init options: %v", err)
	}
	t.Cleanup(func() {
		// #nosec G104 -- log file may never have been opened
		opts.Close()
		config.SetCurrent(nil)
	})
	return opts
}

// WriteFile writes a file relative to the fixture root and returns its path.
func (f *Fixture) WriteFile(t *testing.T, relative string, data []byte) string {
	t.Helper()
	path := f.Path(relative)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	return path
}

// Path resolves a path relative to the fixture root.
func (f *Fixture) Path(parts ...string) string {
	return filepath.Join(append([]string{f.Root}, parts...)...)
}

// Exists reports whether a path relative to the fixture root exists.
func (f *Fixture) Exists(parts ...string) bool {
	_, err := os.Lstat(f.Path(parts...))
	return err == nil
}
