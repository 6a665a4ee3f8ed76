package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSlugCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "slug [file|-]",
		Short: "Print the filename slug for a metadata buffer",
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
				return respond(cmd, opts, true, result.Slug, map[string]interface{}{
					"slug":      result.Slug,
					"reference": result.Reference,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Slug)
			return nil
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
