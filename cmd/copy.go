package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/spf13/cobra"
)

// copyTimeout bounds how long a clipboard backend may block.
const copyTimeout = 5 * time.Second

var copyStateFlag string

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the generated command and record it in history",
	Long: `Copy the generated command to the clipboard and record it in history.

The command is also printed to stdout. A clipboard failure is reported as a
warning and does not stop the history entry from being recorded. Copying
the same command twice in a row records it once.

Set APSTUDIO_CLIPBOARD_CMD (or clipboard_command in the config file) to pipe
the command into a program of your choice, e.g. "wl-copy" or "pbcopy".

Examples:
  apstudio copy
  apstudio copy --state saved.yaml`,
	Args: cobra.NoArgs,
	RunE: runCopy,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	copyCmd.Flags().StringVar(&copyStateFlag, "state", "", "Read fields from this YAML file instead of the draft")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, _ []string) error {
	s, err := env.loadDraft(copyStateFlag)
	if err != nil {
		return err
	}
	generated := command.Generate(*s)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, copyTimeout)
	defer cancel()
	if err := newCopier(env.cfg).Copy(ctx, generated); err != nil {
		env.logger.Warn("clipboard copy failed", "error", err)
		status(cmd.ErrOrStderr(), "warning: could not copy to clipboard: %v", err)
	} else {
		status(cmd.ErrOrStderr(), "copied to clipboard")
	}

	store, err := env.openHistory()
	if err != nil {
		return err
	}
	item, added, err := store.Append(generated, *s)
	if err != nil {
		return err
	}
	if added {
		status(cmd.ErrOrStderr(), "history: added %s (%d/%d)", item.ID, store.Len(), env.cfg.HistoryLimit)
	} else {
		status(cmd.ErrOrStderr(), "history: unchanged, same as latest entry")
	}

	fmt.Fprintln(cmd.OutOrStdout(), generated)
	return nil
}
