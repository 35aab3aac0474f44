package command

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/apstudio/apstudio/internal/markup"
)

// Default gradient stops offered by the gradient snippet.
const (
	DefaultGradientStart = "#FF0000"
	DefaultGradientEnd   = "#0000FF"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// fixedSnippets are toolbar entries that take no arguments.
var fixedSnippets = map[string]string{
	"bold":          "<bold>",
	"italic":        "<italic>",
	"underlined":    "<underlined>",
	"strikethrough": "<strikethrough>",
	"reset":         "<reset>",
	"center":        "<center>",
	"flash":         "{animate:flash:T1:T2:10}",
	"type":          "{animate:type:内容:5}",
	"pulse":         "<{animate:pulse:red:white:20}>",
	"rainbow":       "<rainbow>",
	"interact":      "<click:run_command:/spawn><hover:show_text:'内容'>",
}

// SnippetNames lists every snippet name accepted by Snippet, sorted.
func SnippetNames() []string {
	names := make([]string, 0, len(fixedSnippets)+len(markup.Palette)+2)
	for name := range fixedSnippets {
		names = append(names, name)
	}
	for _, c := range markup.Palette {
		names = append(names, c.Name)
	}
	names = append(names, "color", "gradient")
	sort.Strings(names)
	return names
}

// Snippet returns the markup inserted by the named toolbar entry.
//
//   - a palette colour name inserts its tag, e.g. red -> <red>
//   - color #RRGGBB inserts a hex colour tag
//   - gradient [start end] inserts a two-stop gradient
//   - format, animation and interaction presets insert fixed text
func Snippet(name string, args ...string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if s, ok := fixedSnippets[key]; ok {
		if len(args) > 0 {
			return "", fmt.Errorf("snippet %q takes no arguments", key)
		}
		return s, nil
	}

	if _, ok := markup.LookupColor(key); ok {
		if len(args) > 0 {
			return "", fmt.Errorf("snippet %q takes no arguments", key)
		}
		return "<" + key + ">", nil
	}

	switch key {
	case "color":
		if len(args) != 1 {
			return "", fmt.Errorf("snippet color needs exactly one #RRGGBB argument")
		}
		if !hexColorRe.MatchString(args[0]) {
			return "", fmt.Errorf("invalid colour %q: expected #RRGGBB", args[0])
		}
		return fmt.Sprintf("<color:%s>", args[0]), nil
	case "gradient":
		start, end := DefaultGradientStart, DefaultGradientEnd
		switch len(args) {
		case 0:
		case 2:
			start, end = args[0], args[1]
		default:
			return "", fmt.Errorf("snippet gradient takes zero or two colours, got %d", len(args))
		}
		for _, c := range []string{start, end} {
			if !hexColorRe.MatchString(c) {
				return "", fmt.Errorf("invalid colour %q: expected #RRGGBB", c)
			}
		}
		return fmt.Sprintf("<gradient:%s:%s>", start, end), nil
	}

	return "", fmt.Errorf("unknown snippet %q", name)
}
