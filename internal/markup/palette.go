// Package markup interprets the MiniMessage subset used in AnnouncerPlus
// messages and renders it for preview.
//
// Two interpreters share one rule table. Rewrite applies the rules as ordered
// textual substitutions and yields the same HTML as the AnnouncerPlus web
// editor. Parse applies the same precedence while tokenizing and builds a
// tree, which HTML and ANSI render with escaping and terminal styling.
package markup

import "strings"

// NamedColor is one entry of the fixed Minecraft colour palette.
type NamedColor struct {
	Name string
	Hex  string
}

// Palette holds the 16 named Minecraft colours.
var Palette = []NamedColor{
	{"black", "#000000"},
	{"dark_blue", "#0000AA"},
	{"dark_green", "#00AA00"},
	{"dark_aqua", "#00AAAA"},
	{"dark_red", "#AA0000"},
	{"dark_purple", "#AA00AA"},
	{"gold", "#FFAA00"},
	{"gray", "#AAAAAA"},
	{"dark_gray", "#555555"},
	{"blue", "#5555FF"},
	{"green", "#55FF55"},
	{"aqua", "#55FFFF"},
	{"red", "#FF5555"},
	{"light_purple", "#FF55FF"},
	{"yellow", "#FFFF55"},
	{"white", "#FFFFFF"},
}

// RainbowStops are the gradient stops of the rainbow tag, left to right.
var RainbowStops = []string{"#ff0000", "#ff7f00", "#ffff00", "#00ff00", "#0000ff", "#4b0082", "#9400d3"}

// LookupColor resolves a palette name, ignoring case.
func LookupColor(name string) (string, bool) {
	for _, c := range Palette {
		if strings.EqualFold(c.Name, name) {
			return c.Hex, true
		}
	}
	return "", false
}

// resolveStop maps a gradient stop to a CSS colour: hex stops are kept,
// palette names are resolved and anything else passes through unchanged.
func resolveStop(stop string) string {
	if strings.HasPrefix(stop, "#") {
		return stop
	}
	if hex, ok := LookupColor(stop); ok {
		return hex
	}
	return stop
}

// Samples are the fixed values substituted for placeholders in a preview.
type Samples struct {
	Player string `yaml:"player"`
	Online string `yaml:"online"`
}

// DefaultSamples returns the stock preview data.
func DefaultSamples() Samples {
	return Samples{Player: "Steve", Online: "42"}
}

func (s Samples) withDefaults() Samples {
	d := DefaultSamples()
	if s.Player == "" {
		s.Player = d.Player
	}
	if s.Online == "" {
		s.Online = d.Online
	}
	return s
}
