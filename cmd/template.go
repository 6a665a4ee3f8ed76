package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/metadata"
)

func newTemplateCommand() *cobra.Command {
	var seed seedFlags

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print an editable metadata buffer for the selected format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			buffer := metadata.RenderTemplate(opts.Format, seed.record())

			if opts.JSONOutput {
				return respond(cmd, opts, true, "template", map[string]interface{}{
					"format": opts.Format,
					"buffer": buffer,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), buffer)
			return nil
		},
	}

	seed.register(cmd.Flags())
	return cmd
}
