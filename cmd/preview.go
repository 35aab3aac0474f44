package cmd

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/config"
	"github.com/apstudio/apstudio/internal/markup"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	previewFormatFlag string
	previewFieldFlag  string
	previewWidthFlag  int
)

var previewCmd = &cobra.Command{
	Use:   "preview [text...]",
	Short: "Render MiniMessage markup",
	Long: `Render MiniMessage markup the way it will look in game.

With text arguments the text is rendered. Without them the draft is
rendered the way its type displays: title and subtitle for titles, the
title plus the plain description for toasts, and the text field otherwise.
--field renders a single draft field instead.

Formats:
  ansi   Styled terminal output (default)
  html   Escaped HTML fragment
  raw    HTML from the literal rewrite rules, input not escaped

Examples:
  apstudio preview '<gradient:gold:red>Server restart</gradient>'
  apstudio preview --field subtitle
  apstudio preview --format html`,
	RunE: runPreview,
}

func init() { //nolint:gochecknoinits // Standard cobra pattern
	previewCmd.Flags().StringVar(&previewFormatFlag, "format", "ansi", "Output format: ansi, html, raw")
	previewCmd.Flags().StringVar(&previewFieldFlag, "field", "", "Render this draft field only")
	previewCmd.Flags().IntVar(&previewWidthFlag, "width", 0, "Line width for centred text (default: terminal width)")
	rootCmd.AddCommand(previewCmd)
}

// previewLine is one rendered line; plain lines skip markup interpretation.
type previewLine struct {
	text  string
	plain bool
}

func runPreview(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(previewFormatFlag)
	switch format {
	case "ansi", "html", "raw":
	default:
		return fmt.Errorf("invalid format %q: valid values are ansi, html, raw", previewFormatFlag)
	}
	if len(args) > 0 && previewFieldFlag != "" {
		return fmt.Errorf("--field cannot be combined with text arguments")
	}

	lines, err := previewLines(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := markup.Options{
		Width:   previewWidthFlag,
		Profile: outputProfile(env.cfg, out),
	}
	if opts.Width <= 0 {
		opts.Width = outputWidth(out)
	}

	samples := env.cfg.Samples
	for _, l := range lines {
		fmt.Fprintln(out, renderLine(l, format, samples, opts))
	}
	return nil
}

func previewLines(args []string) ([]previewLine, error) {
	if len(args) > 0 {
		return []previewLine{{text: strings.Join(args, " ")}}, nil
	}

	s, err := env.loadDraft("")
	if err != nil {
		return nil, err
	}
	if previewFieldFlag != "" {
		v, err := s.Get(previewFieldFlag)
		if err != nil {
			return nil, err
		}
		return []previewLine{{text: v}}, nil
	}

	switch s.Type {
	case command.KindBroadcastTitle:
		return []previewLine{{text: s.Title}, {text: s.Subtitle}}, nil
	case command.KindBroadcastToast:
		return []previewLine{{text: s.Title}, {text: s.Description, plain: true}}, nil
	default:
		return []previewLine{{text: s.Text}}, nil
	}
}

func renderLine(l previewLine, format string, samples markup.Samples, opts markup.Options) string {
	if l.plain {
		if format == "ansi" {
			return l.text
		}
		return html.EscapeString(l.text)
	}
	switch format {
	case "raw":
		return markup.Rewrite(l.text, samples)
	case "html":
		return markup.HTML(markup.Parse(l.text, samples))
	default:
		return markup.ANSI(markup.Parse(l.text, samples), opts)
	}
}

// outputProfile resolves the colour depth for w. Writers that are not files
// are treated like a redirected stdout.
func outputProfile(cfg *config.Config, w io.Writer) termenv.Profile {
	if f, ok := w.(*os.File); ok {
		return cfg.ColorProfile(f)
	}
	if cfg.Color == config.ColorOn {
		return termenv.TrueColor
	}
	return termenv.Ascii
}

func outputWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return config.TerminalWidth(f)
	}
	return markup.DefaultWidth
}
