package cmd

import (
	"fmt"
	"io"

	"github.com/apstudio/apstudio/internal/clipboard"
	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/config"
	"github.com/apstudio/apstudio/internal/history"
	"github.com/apstudio/apstudio/internal/logging"
	"github.com/spf13/cobra"
)

// environment is what every subcommand needs after the config is loaded.
type environment struct {
	cfg    *config.Config
	logger logging.Logger
}

var env *environment

// newCopier builds the clipboard backend. Tests replace it.
var newCopier = func(cfg *config.Config) clipboard.Copier {
	return clipboard.System{Command: cfg.ClipboardCommand}
}

func setupEnv(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	env = &environment{
		cfg:    cfg,
		logger: logging.New(cmd.ErrOrStderr(), cfg.LogLevel),
	}
	env.logger.Debug("config loaded", "data_dir", cfg.DataDir, "history_limit", cfg.HistoryLimit)
	return nil
}

// loadDraft returns the draft at statePath, or the working draft when
// statePath is empty.
func (e *environment) loadDraft(statePath string) (*command.State, error) {
	if statePath != "" {
		s, err := command.LoadFile(statePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := command.LoadFileOrDefault(e.cfg.DraftPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}
	return s, nil
}

func (e *environment) saveDraft(s *command.State) error {
	if err := command.WriteFile(e.cfg.DraftPath(), s); err != nil {
		return err
	}
	e.logger.Debug("draft saved", "path", e.cfg.DraftPath(), "type", s.Type)
	return nil
}

func (e *environment) openHistory() (*history.Store, error) {
	return history.Open(e.cfg.HistoryPath(), e.cfg.HistoryLimit, e.logger)
}

// status writes a human-readable progress line to stderr.
func status(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "apstudio: "+format+"\n", args...)
}
