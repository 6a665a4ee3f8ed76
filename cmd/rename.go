package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/config"
	"github.com/refslug/refslug/internal/metadata"
	"github.com/refslug/refslug/internal/rename"
	"github.com/refslug/refslug/internal/util"
)

func newRenameCommand() *cobra.Command {
	var (
		seed        seedFlags
		editorCmd   string
		from        string
		noEdit      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "rename <document>",
		Short: "Rename a document after its bibliographic metadata",
		Long: "Opens a metadata buffer in your editor, derives a reference from it and renames " +
			"the document to the slug of that reference, keeping its extension.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			log := opts.Logger().WithField("component", "cli")

			text, err := collectBuffer(cmd, opts, seed.record(), from, noEdit, editorCmd)
			if err != nil {
				return fail(cmd, opts, err)
			}

			result, err := newPipeline(opts).Run(text)
			if err != nil {
				log.WithField("kind", metadata.KindOf(err)).Warn("Metadata rejected")
				return fail(cmd, opts, err)
			}

			renamer := rename.NewRenamer(opts)
			plan, err := renamer.Plan(args[0], result.Slug)
			if err != nil {
				return fail(cmd, opts, err)
			}

			if interactive && !plan.NoOp && !opts.DryRun {
				question := fmt.Sprintf("Rename %s to %s?", filepath.Base(plan.Source), filepath.Base(plan.Target))
				ok, err := util.PromptYesNo(question)
				if err != nil {
					return fail(cmd, opts, err)
				}
				if !ok {
					return fail(cmd, opts, errDeclined)
				}
			}

			if err := renamer.Apply(plan); err != nil {
				return fail(cmd, opts, err)
			}

			var message string
			switch {
			case plan.NoOp:
				message = fmt.Sprintf("%s already has the name %s", args[0], filepath.Base(plan.Target))
			case opts.DryRun:
				message = fmt.Sprintf("Would rename %s to %s", plan.Source, plan.Target)
			default:
				message = fmt.Sprintf("Renamed %s to %s", plan.Source, plan.Target)
			}
			data := map[string]interface{}{
				"source":    plan.Source,
				"target":    plan.Target,
				"slug":      result.Slug,
				"reference": result.Reference,
				"noop":      plan.NoOp,
				"dryRun":    opts.DryRun,
			}
			return respond(cmd, opts, true, message, data)
		},
	}

	seed.register(cmd.Flags())
	cmd.Flags().StringVar(&editorCmd, "editor-cmd", "", "Editor command (default: $VISUAL, then $EDITOR)")
	cmd.Flags().StringVar(&from, "from", "", "Read the metadata buffer from a file, or - for stdin, instead of editing")
	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "Use the prefilled buffer without opening an editor")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Confirm before renaming")
	return cmd
}

// collectBuffer returns the metadata buffer for a rename: read from --from,
// taken as rendered with --no-edit, or edited by the user in a temp file.
func collectBuffer(cmd *cobra.Command, opts *config.Options, seed metadata.Record, from string, noEdit bool, editorCmd string) (string, error) {
	if from != "" {
		return readBuffer(cmd, from)
	}

	buffer := metadata.RenderTemplate(opts.Format, seed)
	if noEdit {
		return buffer, nil
	}

	path, err := util.WriteTempFile("", "refslug-*.txt", []byte(buffer))
	if err != nil {
		return "", WrapCLIError(ExitCodeFilesystem, err)
	}
	defer func() {
		// #nosec G104 -- temp buffer cleanup is best-effort
		os.Remove(path)
	}()

	if err := util.OpenInEditor(editorCmd, path); err != nil {
		return "", WrapCLIError(ExitCodeEditor, err)
	}

	// #nosec G304 -- path is the temp file created above
	data, err := os.ReadFile(path)
	if err != nil {
		return "", WrapCLIError(ExitCodeFilesystem, fmt.Errorf("failed to read edited buffer: %w", err))
	}
	return string(data), nil
}
