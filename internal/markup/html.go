package markup

import (
	"html"
	"regexp"
	"strings"
)

// safeStopRe accepts hex colours and bare CSS colour keywords.
var safeStopRe = regexp.MustCompile(`^#?[0-9A-Za-z_]+$`)

// HTML renders a parsed tree with the same markup Rewrite produces, except
// that text and attribute values are escaped and gradient stops that are not
// plain colour tokens are dropped. The output is safe to embed in a page.
func HTML(n *Node) string {
	var sb strings.Builder
	writeHTML(&sb, n)
	return sb.String()
}

func writeHTML(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case TextNode:
		sb.WriteString(html.EscapeString(n.Text))
		return
	case BadgeNode:
		sb.WriteString(badgeHTML(html.EscapeString(n.Text)))
		return
	}

	open, closing := htmlWrap(n)
	sb.WriteString(open)
	for _, c := range n.Children {
		writeHTML(sb, c)
	}
	sb.WriteString(closing)
}

func htmlWrap(n *Node) (string, string) {
	switch n.Kind {
	case StyleNode:
		return n.Decoration.html(), htmlClose
	case ColorNode:
		return colorOpenHTML(html.EscapeString(n.Color)), htmlClose
	case GradientNode:
		return gradientOpenHTML(safeStops(n.Stops)), htmlClose
	case ResetNode:
		return htmlResetOpen, htmlClose
	case CenterNode:
		return htmlCenterOpen, htmlCenterClose
	case ClickNode:
		return htmlClick, htmlClose
	case HoverNode:
		return htmlHover, htmlClose
	default:
		return "", ""
	}
}

func safeStops(stops []string) []string {
	out := make([]string, 0, len(stops))
	for _, s := range stops {
		if safeStopRe.MatchString(s) {
			out = append(out, s)
		}
	}
	return out
}
