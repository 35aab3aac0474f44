package command

import (
	"errors"
	"fmt"
	"strings"
)

// Accepted enumerations for the toast and boss bar kinds.
var (
	Frames          = []string{"task", "goal", "challenge"}
	BossBarColors   = []string{"BLUE", "GREEN", "RED", "YELLOW", "PINK", "PURPLE", "WHITE"}
	BossBarOverlays = []string{"PROGRESS", "NOTCHED_6", "NOTCHED_10", "NOTCHED_12", "NOTCHED_20"}
)

// ValidationError collects every problem found in a draft.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate checks that the draft would produce a command the plugin accepts.
// Generate never calls it: it is advisory, used by the validate subcommand.
// Only the fields the active kind reads are checked.
func (s *State) Validate() error {
	var problems []string

	if !s.Type.Known() {
		problems = append(problems, fmt.Sprintf("type: unknown kind %q", s.Type))
	}

	for _, name := range Fields(s.Type) {
		switch name {
		case "frame":
			if !contains(Frames, s.Frame) {
				problems = append(problems, fmt.Sprintf("frame: must be one of %s", strings.Join(Frames, ", ")))
			}
		case "bossbarColor":
			if !contains(BossBarColors, s.BossBarColor) {
				problems = append(problems, fmt.Sprintf("bossbarColor: must be one of %s", strings.Join(BossBarColors, ", ")))
			}
		case "bossbarOverlay":
			if !contains(BossBarOverlays, s.BossBarOverlay) {
				problems = append(problems, fmt.Sprintf("bossbarOverlay: must be one of %s", strings.Join(BossBarOverlays, ", ")))
			}
		case "fadein", "stay", "fadeout", "seconds":
			v, _ := s.Get(name)
			if strings.HasPrefix(v, "-") {
				problems = append(problems, fmt.Sprintf("%s: must not be negative", name))
			}
		case "text", "title":
			v, _ := s.Get(name)
			if strings.TrimSpace(v) == "" {
				problems = append(problems, fmt.Sprintf("%s: must be non-empty", name))
			}
		}
	}

	if s.Type == KindBroadcastBossBar && (s.BossBarProgress < 0 || s.BossBarProgress > 1) {
		problems = append(problems, "bossbarProgress: must be between 0 and 1")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Problems unwraps a Validate error into its individual messages.
func Problems(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	if err != nil {
		return []string{err.Error()}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
