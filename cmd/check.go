package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/metadata"
	"github.com/refslug/refslug/internal/validator"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "List every missing field of a metadata buffer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			text, err := readBuffer(cmd, firstArg(args))
			if err != nil {
				return fail(cmd, opts, err)
			}

			v, err := validator.New(opts)
			if err != nil {
				return WrapCLIError(ExitCodeUnknown, err)
			}
			report, err := v.Check(newPipeline(opts).Parse(text))
			if err != nil {
				return WrapCLIError(ExitCodeUnknown, err)
			}

			if report.Valid() {
				return respond(cmd, opts, true, "Metadata is complete", report)
			}

			if opts.JSONOutput {
				if err := respond(cmd, opts, false, "validation failed", report); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				for _, issue := range report.Issues {
					fmt.Fprintf(out, "  - %s: %s\n", issue.Kind, issue.Message)
				}
			}

			code := ExitCodeValidation
			if len(report.Issues) == 1 && report.Issues[0].Kind == metadata.KindOf(metadata.ErrEmptyMetadataBuffer) {
				code = ExitCodeCancelled
			}
			return WrapCLIError(code, report.Err())
		},
	}
}
