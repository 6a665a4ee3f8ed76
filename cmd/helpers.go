package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/metadata"
	"github.com/refslug/refslug/internal/pipeline"
	"github.com/refslug/refslug/internal/rename"
	"github.com/refslug/refslug/internal/util"
)

// errDeclined is returned when the user answers no to the rename prompt.
var errDeclined = errors.New("rename declined")

func options() (*config.Options, error) {
	return config.Current()
}

func respond(cmd *cobra.Command, opts *config.Options, success bool, message string, data interface{}) error {
	if opts.JSONOutput {
		payload := util.StructuredResult(success, message, data)
		return util.PrintJSON(cmd.OutOrStdout(), payload)
	}
	if message != "" {
		fmt.Fprintln(cmd.OutOrStdout(), message)
	}
	return nil
}

func newPipeline(opts *config.Options) *pipeline.Pipeline {
	return pipeline.New(opts.Format, opts.Marker)
}

// readBuffer loads a metadata buffer from path, or from the command input
// when path is empty or "-".
func readBuffer(cmd *cobra.Command, path string) (string, error) {
	if path == "" || path == "-" {
		in := cmd.InOrStdin()
		if in == os.Stdin && util.StdinIsTerminal() {
			return "", NewCLIError(ExitCodeValidation, "refusing to read metadata from a terminal; pass a file or pipe the buffer")
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", WrapCLIError(ExitCodeFilesystem, fmt.Errorf("failed to read metadata: %w", err))
		}
		return string(data), nil
	}

	// #nosec G304 -- buffer path provided via command argument
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", WrapCLIError(ExitCodeNotFound, fmt.Errorf("metadata file not found: %s", path))
		}
		return "", WrapCLIError(ExitCodeFilesystem, fmt.Errorf("failed to read metadata: %w", err))
	}
	return string(data), nil
}

// errorKind names the class of err for JSON error payloads.
func errorKind(err error) string {
	if kind := metadata.KindOf(err); kind != "" {
		return kind
	}
	switch {
	case errors.Is(err, rename.ErrTargetExists):
		return "TargetExists"
	case errors.Is(err, rename.ErrSourceMissing):
		return "SourceMissing"
	case errors.Is(err, errDeclined):
		return "Declined"
	default:
		return ""
	}
}

// exitCodeFor maps domain errors onto exit codes.
func exitCodeFor(err error) int {
	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Code != 0 {
		return cliErr.Code
	}
	switch {
	case errors.Is(err, metadata.ErrEmptyMetadataBuffer), errors.Is(err, errDeclined):
		return ExitCodeCancelled
	case errors.Is(err, metadata.ErrMissingTitle),
		errors.Is(err, metadata.ErrMissingYear),
		errors.Is(err, metadata.ErrMissingContributor),
		errors.Is(err, metadata.ErrEmptySlug):
		return ExitCodeValidation
	case errors.Is(err, rename.ErrTargetExists):
		return ExitCodeCollision
	case errors.Is(err, rename.ErrSourceMissing), errors.Is(err, fs.ErrNotExist):
		return ExitCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitCodeFilesystem
	default:
		return ExitCodeUnknown
	}
}

// fail reports err in the selected output mode and wraps it with its exit code.
func fail(cmd *cobra.Command, opts *config.Options, err error) error {
	if err == nil {
		return nil
	}
	code := exitCodeFor(err)
	if opts.JSONOutput {
		// #nosec G104 -- the error itself is returned below
		util.PrintJSON(cmd.OutOrStdout(), util.ErrorResult(errorKind(err), err.Error()))
	}
	return WrapCLIError(code, err)
}

// seedFlags prefill the metadata buffer offered for editing.
type seedFlags struct {
	title   string
	year    string
	authors []string
	editors []string
}

func (s *seedFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&s.title, "title", "", "Prefill the title")
	flags.StringVar(&s.year, "year", "", "Prefill the year")
	flags.StringArrayVar(&s.authors, "author", nil, "Prefill an author (repeatable)")
	flags.StringArrayVar(&s.editors, "editor", nil, "Prefill an editor (repeatable)")
}

func (s *seedFlags) record() metadata.Record {
	return metadata.Record{
		Title:   s.title,
		Year:    s.year,
		Authors: s.authors,
		Editors: s.editors,
	}
}
