package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/refslug/refslug/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:   "refslug",
		Short: "Rename documents after their bibliographic metadata",
		Long: "refslug turns a short metadata buffer (title, year, authors, editors) into a " +
			"citation-style reference and renames documents to an ASCII filename derived from it.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Current(); err == nil {
				return nil
			}
			// A .env file may set VISUAL or EDITOR for the rename buffer.
			_ = godotenv.Load()
			opts := config.New()
			if err := opts.Init(flagJSON, flagVerbose, flagDryRun, flagLogFile, flagFormat, flagMarker); err != nil {
				return WrapCLIError(ExitCodeValidation, err)
			}
			cmd.SetContext(opts.WithContext(cmd.Context()))
			return nil
		},
	}

	flagJSON    bool
	flagVerbose bool
	flagDryRun  bool
	flagLogFile string
	flagFormat  string
	flagMarker  string
)

// Execute runs the root command.
func Execute() error {
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	opts, err := config.Current()
	if err == nil {
		if cerr := opts.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close resources: %v\n", cerr)
		}
	}
	return nil
}

// RootCommand returns the configured root command; primarily for testing scenarios.
func RootCommand() *cobra.Command {
	registerCommands()
	return rootCmd
}

// registerCommands ensures all subcommands are attached before execution.
func registerCommands() {
	if len(rootCmd.Commands()) > 0 {
		return
	}
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "Report the rename without touching files")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "File to write verbose logs")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "keyvalue", "Metadata buffer format: keyvalue, tagged or auto")
	rootCmd.PersistentFlags().StringVar(&flagMarker, "marker", "(Hg.)", "Editor marker: \"(Hg.)\" or \"(hg)\"")

	rootCmd.AddCommand(newRenameCommand())
	rootCmd.AddCommand(newSlugCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTemplateCommand())
	rootCmd.AddCommand(newVersionCommand())
}
