package cmd

import (
	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/util"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Show the parsed record, reference and slug of a metadata buffer",
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

			result, err := newPipeline(opts).Run(text)
			if err != nil {
				return fail(cmd, opts, err)
			}

			if opts.JSONOutput {
				return respond(cmd, opts, true, "inspect", result)
			}
			return util.PrintYAML(cmd.OutOrStdout(), result)
		},
	}
}
