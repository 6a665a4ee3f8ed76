package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the refslug version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}

			if opts.JSONOutput {
				return respond(cmd, opts, true, "version", map[string]interface{}{
					"version": version.Current,
					"go":      runtime.Version(),
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "refslug %s\n", version.Current)
			return nil
		},
	}
}
