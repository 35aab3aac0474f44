package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// Tag patterns, shared by Rewrite and Parse. All are matched case-insensitively.
const (
	playerPattern        = `%player_name%|%player%|<player_name>|<player>`
	onlinePattern        = `%online%|<online>`
	styleClosePattern    = `</(?:bold|italic|underlined|strikethrough|obfuscated)>`
	hexOpenPattern       = `<color:(#[0-9a-fA-F]{6})>`
	hexClosePattern      = `</color>`
	gradientOpenPattern  = `<gradient:([^>]+)>`
	gradientClosePattern = `</gradient>`
	rainbowOpenPattern   = `<rainbow>`
	rainbowClosePattern  = `</rainbow>`
	resetPattern         = `<reset>`
	animatePattern       = `\{animate:([^}]+)\}`
	centerOpenPattern    = `<center>`
	centerClosePattern   = `</center>`
	clickOpenPattern     = `<click:[^>]+>`
	clickClosePattern    = `</click>`
	hoverOpenPattern     = `<hover:[^>]+>`
	hoverClosePattern    = `</hover>`
)

// HTML fragments emitted for each construct.
const (
	htmlBold          = `<span style="font-weight: 800; text-shadow: 3px 3px 0px rgba(0,0,0,0.5)">`
	htmlItalic        = `<span style="font-style: italic;">`
	htmlUnderlined    = `<span style="text-decoration: underline;">`
	htmlStrikethrough = `<span style="text-decoration: line-through;">`
	htmlObfuscated    = `<span class="animate-pulse opacity-50 bg-white/20">`
	htmlClose         = `</span>`
	htmlColorFmt      = `<span style="color: %s">`
	htmlGradientFmt   = `<span style="background: linear-gradient(to right, %s); -webkit-background-clip: text; -webkit-text-fill-color: transparent; display: inline-block;">`
	htmlResetOpen     = `<span style="color: inherit; font-weight: normal; font-style: normal; text-decoration: none;">`
	htmlBadgeFmt      = `<span class="px-2 py-0.5 mx-1 bg-white/5 rounded border border-white/10 text-[10px] font-sans font-black tracking-widest uppercase opacity-70 animate-pulse" title="Animation: %s">[%s]</span>`
	htmlCenterOpen    = `<div style="text-align: center; width: 100%;">`
	htmlCenterClose   = `</div>`
	htmlClick         = `<span class="border-b border-dashed border-white/40 cursor-pointer">`
	htmlHover         = `<span class="bg-white/5 rounded px-1 group-hover:bg-white/10 transition-colors">`
)

// Decoration is one of the five inline text styles.
type Decoration int

// Inline decorations, in rule order.
const (
	Bold Decoration = iota
	Italic
	Underlined
	Strikethrough
	Obfuscated
)

var decorationTags = [...]string{"bold", "italic", "underlined", "strikethrough", "obfuscated"}

var decorationHTML = [...]string{htmlBold, htmlItalic, htmlUnderlined, htmlStrikethrough, htmlObfuscated}

func (d Decoration) String() string {
	if d < 0 || int(d) >= len(decorationTags) {
		return fmt.Sprintf("Decoration(%d)", int(d))
	}
	return decorationTags[d]
}

func (d Decoration) html() string {
	return decorationHTML[d]
}

func colorOpenHTML(hex string) string {
	return fmt.Sprintf(htmlColorFmt, hex)
}

func gradientOpenHTML(stops []string) string {
	return fmt.Sprintf(htmlGradientFmt, strings.Join(stops, ", "))
}

func badgeHTML(spec string) string {
	return fmt.Sprintf(htmlBadgeFmt, spec, spec)
}

// ci compiles a case-insensitive pattern.
func ci(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// ciAnchored compiles a case-insensitive pattern that only matches at the
// start of the input.
func ciAnchored(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^(?:` + pattern + `)`)
}

// splitStops splits a gradient argument into its colour stops.
func splitStops(arg string) []string {
	return strings.Split(arg, ":")
}
