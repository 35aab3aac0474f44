package cmd

import (
	"fmt"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/spf13/cobra"
)

var generateStateFlag string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the command built from the draft",
	Long: `Print the /announcerplus command built from the draft.

Only the fields the selected type reads are used. Generation never fails:
values are inserted verbatim and an unknown type produces the bare prefix.

Examples:
  apstudio generate
  apstudio generate --state saved.yaml`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	generateCmd.Flags().StringVar(&generateStateFlag, "state", "", "Read fields from this YAML file instead of the draft")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	s, err := env.loadDraft(generateStateFlag)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), command.Generate(*s))
	return nil
}
