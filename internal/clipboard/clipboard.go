// Package clipboard copies generated commands to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// EnvCommand names the environment variable that overrides the clipboard
// backend with a shell command reading the text from stdin.
const EnvCommand = "APSTUDIO_CLIPBOARD_CMD"

// Copier writes text to a clipboard.
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// CopierFunc adapts a function to Copier.
type CopierFunc func(ctx context.Context, text string) error

// Copy calls f.
func (f CopierFunc) Copy(ctx context.Context, text string) error {
	return f(ctx, text)
}

// System copies through a user-supplied shell command when Command is set,
// and through the platform clipboard otherwise.
type System struct {
	Command string
}

// Copy writes text to the clipboard. The platform backend cannot be
// interrupted, so cancellation only stops the wait for it.
func (s System) Copy(ctx context.Context, text string) error {
	if strings.TrimSpace(s.Command) != "" {
		return s.copyWithCommand(ctx, text)
	}
	if clipboard.Unsupported {
		return fmt.Errorf("no system clipboard available; set %s", EnvCommand)
	}

	done := make(chan error, 1)
	go func() {
		done <- clipboard.WriteAll(text)
	}()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to write clipboard: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s System) copyWithCommand(ctx context.Context, text string) error {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.CommandContext(ctx, "cmd", "/c", s.Command) //nolint:gosec // command is user configuration
	} else {
		c = exec.CommandContext(ctx, "/bin/sh", "-c", s.Command) //nolint:gosec // command is user configuration
	}
	c.Stdin = strings.NewReader(text)
	if out, err := c.CombinedOutput(); err != nil {
		return fmt.Errorf("clipboard command %q failed: %w: %s", s.Command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
