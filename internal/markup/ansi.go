package markup

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/rivo/uniseg"
)

// DefaultWidth is the line width centre blocks are aligned to when Options
// does not set one.
const DefaultWidth = 80

// hoverBackground is the subtle highlight behind hover text.
const hoverBackground = "#303030"

// Options configures terminal rendering.
type Options struct {
	// Width is the line width for centre blocks.
	Width int
	// Profile selects the colour depth. termenv.Ascii disables all styling.
	Profile termenv.Profile
}

// textStyle is the style inherited by text while walking the tree.
type textStyle struct {
	fg        string
	bg        string
	bold      bool
	italic    bool
	underline bool
	strike    bool
	faint     bool
	blink     bool
	grad      *gradientRun
}

// gradientRun spreads colour stops across the glyphs of one gradient node.
type gradientRun struct {
	stops []colorful.Color
	total int
	pos   int
}

func newGradientRun(n *Node) *gradientRun {
	var stops []colorful.Color
	for _, s := range n.Stops {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}
	if len(stops) == 0 {
		return nil
	}
	total := 0
	Walk(n, func(c *Node) {
		if c.Kind == TextNode {
			total += uniseg.GraphemeClusterCount(c.Text)
		}
	})
	return &gradientRun{stops: stops, total: total}
}

// next returns the colour of the next glyph, interpolating in RGB between
// neighbouring stops.
func (g *gradientRun) next() string {
	i := g.pos
	g.pos++
	if len(g.stops) == 1 || g.total <= 1 {
		return g.stops[0].Clamped().Hex()
	}
	t := float64(i) / float64(g.total-1)
	seg := t * float64(len(g.stops)-1)
	k := int(seg)
	if k >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1].Clamped().Hex()
	}
	return g.stops[k].BlendRgb(g.stops[k+1], seg-float64(k)).Clamped().Hex()
}

type ansiRenderer struct {
	r     *lipgloss.Renderer
	width int
	plain bool
}

// ANSI renders a parsed tree for a terminal. Gradients are coloured per
// grapheme cluster, badges show their raw spec, click text is underlined and
// hover text gets a subtle background.
func ANSI(n *Node, opts Options) string {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(opts.Profile)
	a := &ansiRenderer{r: r, width: opts.Width, plain: opts.Profile == termenv.Ascii}
	if a.width <= 0 {
		a.width = DefaultWidth
	}
	var sb strings.Builder
	a.render(&sb, n, textStyle{})
	return sb.String()
}

func (a *ansiRenderer) render(sb *strings.Builder, n *Node, st textStyle) {
	switch n.Kind {
	case TextNode:
		a.renderText(sb, n.Text, st)
		return
	case BadgeNode:
		sb.WriteString(a.paint(textStyle{faint: true, bold: true}, "", "["+n.Text+"]"))
		return
	case StyleNode:
		switch n.Decoration {
		case Bold:
			st.bold = true
		case Italic:
			st.italic = true
		case Underlined:
			st.underline = true
		case Strikethrough:
			st.strike = true
		case Obfuscated:
			st.faint = true
			st.blink = true
		}
	case ColorNode:
		st.fg = n.Color
	case GradientNode:
		if run := newGradientRun(n); run != nil {
			st.grad = run
		}
	case ResetNode:
		st = textStyle{fg: st.fg, grad: st.grad}
	case ClickNode:
		st.underline = true
	case HoverNode:
		st.bg = hoverBackground
	case CenterNode:
		a.renderCenter(sb, n, st)
		return
	}

	for _, c := range n.Children {
		a.render(sb, c, st)
	}
}

func (a *ansiRenderer) renderText(sb *strings.Builder, text string, st textStyle) {
	if st.grad == nil {
		sb.WriteString(a.paint(st, st.fg, text))
		return
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		sb.WriteString(a.paint(st, st.grad.next(), g.Str()))
	}
}

func (a *ansiRenderer) renderCenter(sb *strings.Builder, n *Node, st textStyle) {
	var inner strings.Builder
	for _, c := range n.Children {
		a.render(&inner, c, st)
	}
	if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteString("\n")
	}
	block := a.r.NewStyle().Width(a.width).Align(lipgloss.Center).Render(inner.String())
	sb.WriteString(block)
	sb.WriteString("\n")
}

// paint applies st to text with the given foreground. Unstyled text and
// the plain profile return text untouched.
func (a *ansiRenderer) paint(st textStyle, fg, text string) string {
	if a.plain || text == "" {
		return text
	}
	style := a.r.NewStyle()
	styled := false
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
		styled = true
	}
	if st.bg != "" {
		style = style.Background(lipgloss.Color(st.bg))
		styled = true
	}
	if st.bold {
		style = style.Bold(true)
		styled = true
	}
	if st.italic {
		style = style.Italic(true)
		styled = true
	}
	if st.underline {
		style = style.Underline(true)
		styled = true
	}
	if st.strike {
		style = style.Strikethrough(true)
		styled = true
	}
	if st.faint {
		style = style.Faint(true)
		styled = true
	}
	if st.blink {
		style = style.Blink(true)
		styled = true
	}
	if !styled {
		return text
	}
	return style.Render(text)
}
