package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apstudio/apstudio/internal/clipboard"
	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/config"
	"github.com/apstudio/apstudio/internal/logging"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// newTestEnv installs an environment rooted in a temp data dir with colour
// off, and restores the previous one when the test ends.
func newTestEnv(t *testing.T) *environment {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.Color = config.ColorOff

	prev := env
	env = &environment{cfg: cfg, logger: logging.Discard()}
	t.Cleanup(func() { env = prev })
	return env
}

// fakeClipboard records copied text in place of the system clipboard.
type fakeClipboard struct {
	copied []string
	err    error
}

func useFakeClipboard(t *testing.T, fc *fakeClipboard) {
	t.Helper()
	prev := newCopier
	newCopier = func(*config.Config) clipboard.Copier {
		return clipboard.CopierFunc(func(_ context.Context, text string) error {
			if fc.err != nil {
				return fc.err
			}
			fc.copied = append(fc.copied, text)
			return nil
		})
	}
	t.Cleanup(func() { newCopier = prev })
}

func newTestRoot() *cobra.Command {
	return &cobra.Command{
		Use:           "apstudio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// execute runs root with args and returns captured stdout and stderr.
func execute(root *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDraft(t *testing.T, s command.State) {
	t.Helper()
	require.NoError(t, command.WriteFile(env.cfg.DraftPath(), &s))
}

func readDraft(t *testing.T) command.State {
	t.Helper()
	s, err := command.LoadFileOrDefault(env.cfg.DraftPath())
	require.NoError(t, err)
	return *s
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
