package config

import (
	"os"

	"github.com/apstudio/apstudio/internal/markup"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// UseColor decides whether output to f is styled.
// Priority: explicit on/off setting > NO_COLOR env > auto-detect TTY.
func (c *Config) UseColor(f *os.File) bool {
	switch c.Color {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorProfile picks the terminal colour depth for f. Forced colour on a
// non-terminal uses true colour; disabled colour uses plain ASCII.
func (c *Config) ColorProfile(f *os.File) termenv.Profile {
	if !c.UseColor(f) {
		return termenv.Ascii
	}
	if !term.IsTerminal(int(f.Fd())) {
		return termenv.TrueColor
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// TerminalWidth returns the column count of f, or markup.DefaultWidth when
// f is not a terminal.
func TerminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return markup.DefaultWidth
	}
	return w
}
