package markup

import "strings"

// NodeKind identifies what a Node represents.
type NodeKind int

// Node kinds.
const (
	RootNode     NodeKind = iota
	TextNode              // literal text, including unknown tags
	StyleNode             // one inline Decoration
	ColorNode             // solid colour, named or hex
	GradientNode          // colour stops spread across the inner text
	ResetNode             // neutral container opened by <reset>
	BadgeNode             // static placeholder for an animation
	CenterNode            // block-level centred container
	ClickNode             // click affordance
	HoverNode             // hover affordance
)

var nodeKindNames = [...]string{"root", "text", "style", "color", "gradient", "reset", "badge", "center", "click", "hover"}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "unknown"
	}
	return nodeKindNames[k]
}

// Node is one element of a parsed markup tree.
type Node struct {
	Kind NodeKind
	// Text holds the literal text of a TextNode or the raw spec of a BadgeNode.
	Text string
	// Decoration is set on StyleNode.
	Decoration Decoration
	// Color is the resolved hex colour of a ColorNode.
	Color string
	// Stops are the resolved gradient stops of a GradientNode, left to right.
	Stops    []string
	Children []*Node
}

// inline reports whether n is an inline container that generic closers pop.
func (n *Node) inline() bool {
	switch n.Kind {
	case StyleNode, ColorNode, GradientNode, ResetNode, ClickNode, HoverNode:
		return true
	}
	return false
}

func (n *Node) appendText(s string) {
	if s == "" {
		return
	}
	if last := len(n.Children) - 1; last >= 0 && n.Children[last].Kind == TextNode {
		n.Children[last].Text += s
		return
	}
	n.Children = append(n.Children, &Node{Kind: TextNode, Text: s})
}

// Plain returns the visible text of the tree: text nodes verbatim and
// badges as [spec].
func Plain(n *Node) string {
	var sb strings.Builder
	writePlain(&sb, n)
	return sb.String()
}

func writePlain(sb *strings.Builder, n *Node) {
	switch n.Kind {
	case TextNode:
		sb.WriteString(n.Text)
	case BadgeNode:
		sb.WriteString("[" + n.Text + "]")
	default:
		for _, c := range n.Children {
			writePlain(sb, c)
		}
	}
}

// Walk calls fn for n and every descendant, depth first.
func Walk(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
