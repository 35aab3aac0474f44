package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/fileutil"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	draftShowFormatFlag  string
	draftInsertFieldFlag string
	draftInsertAtFlag    int
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Show and edit the working draft",
	Long: `Show and edit the working draft.

The draft is the full set of command fields. The type field selects which
AnnouncerPlus subcommand is built and which other fields are read; fields
the type does not read are kept so switching back restores them.`,
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the draft",
	Args:  cobra.NoArgs,
	RunE:  runDraftShow,
}

var draftSetCmd = &cobra.Command{
	Use:   "set <key=value>...",
	Short: "Update draft fields",
	Long: `Update one or more draft fields.

Keys are the field names shown by 'apstudio draft show'. Numeric fields
must parse as numbers; every other value is stored verbatim, including the
empty string.

Examples:
  apstudio draft set type=send player=Notch
  apstudio draft set "text=<rainbow>Welcome!" seconds=8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDraftSet,
}

var draftResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default draft",
	Long: `Restore the default draft by deleting the saved one.

History is not affected. Running reset twice is harmless.`,
	Args: cobra.NoArgs,
	RunE: runDraftReset,
}

var draftInsertCmd = &cobra.Command{
	Use:   "insert <snippet> [args...]",
	Short: "Insert a formatting snippet into a text field",
	Long: `Insert a formatting snippet into a text field, like the editor toolbar.

Snippets:
  <colour name>        named colour tag, e.g. red -> <red>
  color #RRGGBB        custom colour tag
  gradient [from to]   two-stop gradient (default #FF0000 #0000FF)
  bold italic underlined strikethrough reset center
  flash type pulse rainbow   animation presets
  interact             click + hover actions

Without --at the snippet is appended.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDraftInsert,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	draftShowCmd.Flags().StringVar(&draftShowFormatFlag, "format", "yaml", "Output format: yaml, json")
	draftInsertCmd.Flags().StringVar(&draftInsertFieldFlag, "field", "text",
		"Field to insert into: "+strings.Join(command.TextFields, ", "))
	draftInsertCmd.Flags().IntVar(&draftInsertAtFlag, "at", -1, "Character position to insert at (default: end)")

	draftCmd.AddCommand(draftShowCmd, draftSetCmd, draftResetCmd, draftInsertCmd)
	rootCmd.AddCommand(draftCmd)
}

func runDraftShow(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(draftShowFormatFlag)
	switch format {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid format %q: valid values are yaml, json", draftShowFormatFlag)
	}

	s, err := env.loadDraft("")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(s)
	}

	reads := command.Fields(s.Type)
	if len(reads) == 0 {
		fmt.Fprintf(out, "# %s reads no fields\n", s.Type)
	} else {
		fmt.Fprintf(out, "# %s reads: %s\n", s.Type, strings.Join(reads, ", "))
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return enc.Close()
}

func runDraftSet(cmd *cobra.Command, args []string) error {
	s, err := env.loadDraft("")
	if err != nil {
		return err
	}
	if err := s.SetPairs(args); err != nil {
		return err
	}
	if !s.Type.Known() {
		status(cmd.ErrOrStderr(), "warning: unknown type %q generates a bare command", s.Type)
	}
	if err := env.saveDraft(s); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), command.Generate(*s))
	return nil
}

func runDraftReset(cmd *cobra.Command, _ []string) error {
	if err := fileutil.Remove(env.cfg.DraftPath()); err != nil {
		return err
	}
	env.logger.Debug("draft removed", "path", env.cfg.DraftPath())
	s := command.Default()
	status(cmd.ErrOrStderr(), "draft reset to defaults")
	fmt.Fprintln(cmd.OutOrStdout(), command.Generate(s))
	return nil
}

func runDraftInsert(cmd *cobra.Command, args []string) error {
	snippet, err := command.Snippet(args[0], args[1:]...)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(command.SnippetNames(), ", "))
	}

	s, err := env.loadDraft("")
	if err != nil {
		return err
	}
	if err := s.Insert(draftInsertFieldFlag, snippet, draftInsertAtFlag); err != nil {
		return err
	}
	if err := env.saveDraft(s); err != nil {
		return err
	}

	value, _ := s.Get(draftInsertFieldFlag)
	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
