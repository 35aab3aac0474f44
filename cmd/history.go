package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/history"
	"github.com/spf13/cobra"
)

var (
	historyFormatFlag string
	historyLimitFlag  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse commands you copied",
	Long: `Browse commands you copied.

Entries are listed newest first. An entry is referenced by its ID or by its
1-based position in the list.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyRestoreCmd = &cobra.Command{
	Use:   "restore <id|N>",
	Short: "Replace the draft with a history entry",
	Long: `Replace the draft with the fields captured by a history entry.

The whole draft is replaced, including fields the entry's type does not
read, and the restored command is printed.

Examples:
  apstudio history restore 1
  apstudio history restore V1StGXR8_Z`,
	Args: cobra.ExactArgs(1),
	RunE: runHistoryRestore,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every history entry",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the history as JSON",
	Long: `Print the history as a JSON array in its persisted layout:
id, timestamp (unix milliseconds), command and state per entry.`,
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	historyListCmd.Flags().StringVar(&historyFormatFlag, "format", "text", "Output format: text, json")
	historyListCmd.Flags().IntVar(&historyLimitFlag, "limit", 0, "Show at most N entries (default: all)")

	historyCmd.AddCommand(historyListCmd, historyRestoreCmd, historyClearCmd, historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(historyFormatFlag)
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid format %q: valid values are text, json", historyFormatFlag)
	}

	store, err := env.openHistory()
	if err != nil {
		return err
	}
	items := store.Items()
	if historyLimitFlag > 0 && len(items) > historyLimitFlag {
		items = items[:historyLimitFlag]
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		if items == nil {
			items = []history.Item{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}

	if len(items) == 0 {
		status(cmd.ErrOrStderr(), "history is empty")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tID\tCOPIED\tTYPE\tCOMMAND")
	for i, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, it.ID, it.Time().Format(time.DateTime), it.State.Type, it.Command)
	}
	return w.Flush()
}

func runHistoryRestore(cmd *cobra.Command, args []string) error {
	store, err := env.openHistory()
	if err != nil {
		return err
	}
	s, err := store.Restore(args[0])
	if err != nil {
		return err
	}
	if err := env.saveDraft(&s); err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), "draft restored from history entry %s", args[0])
	fmt.Fprintln(cmd.OutOrStdout(), command.Generate(s))
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	store, err := env.openHistory()
	if err != nil {
		return err
	}
	n := store.Len()
	if err := store.Clear(); err != nil {
		return err
	}
	status(cmd.ErrOrStderr(), "removed %d history entries", n)
	return nil
}

func runHistoryExport(cmd *cobra.Command, _ []string) error {
	store, err := env.openHistory()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
