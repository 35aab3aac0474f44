package markup

import "regexp"

type action int

const (
	actOpen action = iota
	actClose
	actReset
	actBadge
	actCenterOpen
	actCenterClose
)

// matcher recognises one tag at the start of the remaining input.
type matcher struct {
	re    *regexp.Regexp
	build func(m []string) (action, *Node)
}

func closeTag(pattern string) matcher {
	return matcher{ciAnchored(pattern), func([]string) (action, *Node) { return actClose, nil }}
}

// matchers are tried in rule order at every tag-start position; the first
// match wins, giving Parse the same precedence as Rewrite.
var matchers = buildMatchers()

func buildMatchers() []matcher {
	var ms []matcher

	for d := Bold; d <= Obfuscated; d++ {
		d := d
		ms = append(ms, matcher{ciAnchored(`<` + d.String() + `>`), func([]string) (action, *Node) {
			return actOpen, &Node{Kind: StyleNode, Decoration: d}
		}})
	}
	ms = append(ms, closeTag(styleClosePattern))

	for _, c := range Palette {
		hex := c.Hex
		ms = append(ms,
			matcher{ciAnchored(`<` + c.Name + `>`), func([]string) (action, *Node) {
				return actOpen, &Node{Kind: ColorNode, Color: hex}
			}},
			closeTag(`</`+c.Name+`>`),
		)
	}

	ms = append(ms,
		matcher{ciAnchored(hexOpenPattern), func(m []string) (action, *Node) {
			return actOpen, &Node{Kind: ColorNode, Color: m[1]}
		}},
		closeTag(hexClosePattern),
		matcher{ciAnchored(gradientOpenPattern), func(m []string) (action, *Node) {
			stops := splitStops(m[1])
			for i, s := range stops {
				stops[i] = resolveStop(s)
			}
			return actOpen, &Node{Kind: GradientNode, Stops: stops}
		}},
		closeTag(gradientClosePattern),
		matcher{ciAnchored(rainbowOpenPattern), func([]string) (action, *Node) {
			stops := make([]string, len(RainbowStops))
			copy(stops, RainbowStops)
			return actOpen, &Node{Kind: GradientNode, Stops: stops}
		}},
		closeTag(rainbowClosePattern),
		matcher{ciAnchored(resetPattern), func([]string) (action, *Node) {
			return actReset, &Node{Kind: ResetNode}
		}},
		matcher{ciAnchored(animatePattern), func(m []string) (action, *Node) {
			return actBadge, &Node{Kind: BadgeNode, Text: m[1]}
		}},
		matcher{ciAnchored(centerOpenPattern), func([]string) (action, *Node) {
			return actCenterOpen, &Node{Kind: CenterNode}
		}},
		matcher{ciAnchored(centerClosePattern), func([]string) (action, *Node) {
			return actCenterClose, nil
		}},
		matcher{ciAnchored(clickOpenPattern), func([]string) (action, *Node) {
			return actOpen, &Node{Kind: ClickNode}
		}},
		closeTag(clickClosePattern),
		matcher{ciAnchored(hoverOpenPattern), func([]string) (action, *Node) {
			return actOpen, &Node{Kind: HoverNode}
		}},
		closeTag(hoverClosePattern),
	)
	return ms
}

// treeBuilder maintains the stack of open containers while parsing.
type treeBuilder struct {
	root  *Node
	stack []*Node
}

func newTreeBuilder() *treeBuilder {
	root := &Node{Kind: RootNode}
	return &treeBuilder{root: root, stack: []*Node{root}}
}

func (b *treeBuilder) top() *Node {
	return b.stack[len(b.stack)-1]
}

func (b *treeBuilder) push(n *Node) {
	top := b.top()
	top.Children = append(top.Children, n)
	b.stack = append(b.stack, n)
}

// popInline closes the innermost container if it is inline. Closers never
// reach through a centre block, matching how browsers treat a stray </span>.
func (b *treeBuilder) popInline() {
	if len(b.stack) > 1 && b.top().inline() {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

// popCenter closes everything up to and including the innermost centre
// block. Without an open centre block it does nothing.
func (b *treeBuilder) popCenter() {
	for i := len(b.stack) - 1; i > 0; i-- {
		if b.stack[i].Kind == CenterNode {
			b.stack = b.stack[:i]
			return
		}
	}
}

func (b *treeBuilder) apply(act action, n *Node) {
	switch act {
	case actOpen, actCenterOpen:
		b.push(n)
	case actClose:
		b.popInline()
	case actReset:
		b.popInline()
		b.push(n)
	case actBadge:
		top := b.top()
		top.Children = append(top.Children, n)
	case actCenterClose:
		b.popCenter()
	}
}

// Parse tokenizes markup into a tree. Placeholders are substituted first, as
// in Rewrite; tags are then recognised left to right using the rule order as
// precedence. Unknown or malformed tags become text. A closer pops the
// innermost open inline container whichever tag opened it, and containers
// left open at the end are closed implicitly.
func Parse(text string, samples Samples) *Node {
	b := newTreeBuilder()
	if text == "" {
		return b.root
	}
	s := substitutePlaceholders(text, samples)

	start := 0
	for i := 0; i < len(s); {
		if s[i] != '<' && s[i] != '{' {
			i++
			continue
		}
		act, n, width, ok := matchAt(s[i:])
		if !ok {
			i++
			continue
		}
		b.top().appendText(s[start:i])
		b.apply(act, n)
		i += width
		start = i
	}
	b.top().appendText(s[start:])

	return b.root
}

func matchAt(s string) (action, *Node, int, bool) {
	for _, m := range matchers {
		if sub := m.re.FindStringSubmatch(s); sub != nil {
			act, n := m.build(sub)
			return act, n, len(sub[0]), true
		}
	}
	return 0, nil, 0, false
}
