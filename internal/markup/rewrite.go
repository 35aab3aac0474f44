package markup

import (
	"regexp"
	"strings"
)

// step is one substitution of the ordered rewrite.
type step struct {
	re   *regexp.Regexp
	repl func(m []string) string
}

func literal(s string) func([]string) string {
	return func([]string) string { return s }
}

// rewriteSteps are applied in order; each step sees the output of all the
// previous ones. Placeholder steps are prepended per call since their
// replacement depends on Samples.
var rewriteSteps = buildRewriteSteps()

func buildRewriteSteps() []step {
	var steps []step

	for d := Bold; d <= Obfuscated; d++ {
		steps = append(steps, step{ci(`<` + d.String() + `>`), literal(d.html())})
	}
	steps = append(steps, step{ci(styleClosePattern), literal(htmlClose)})

	for _, c := range Palette {
		steps = append(steps,
			step{ci(`<` + c.Name + `>`), literal(colorOpenHTML(c.Hex))},
			step{ci(`</` + c.Name + `>`), literal(htmlClose)},
		)
	}

	steps = append(steps,
		step{ci(hexOpenPattern), func(m []string) string { return colorOpenHTML(m[1]) }},
		step{ci(hexClosePattern), literal(htmlClose)},
		step{ci(gradientOpenPattern), func(m []string) string {
			stops := splitStops(m[1])
			for i, s := range stops {
				stops[i] = resolveStop(s)
			}
			return gradientOpenHTML(stops)
		}},
		step{ci(gradientClosePattern), literal(htmlClose)},
		step{ci(rainbowOpenPattern), literal(gradientOpenHTML(RainbowStops))},
		step{ci(rainbowClosePattern), literal(htmlClose)},
		step{ci(resetPattern), literal(htmlClose + htmlResetOpen)},
		step{ci(animatePattern), func(m []string) string { return badgeHTML(m[1]) }},
		step{ci(centerOpenPattern), literal(htmlCenterOpen)},
		step{ci(centerClosePattern), literal(htmlCenterClose)},
		step{ci(clickOpenPattern), literal(htmlClick)},
		step{ci(clickClosePattern), literal(htmlClose)},
		step{ci(hoverOpenPattern), literal(htmlHover)},
		step{ci(hoverClosePattern), literal(htmlClose)},
	)
	return steps
}

var (
	playerRe = ci(playerPattern)
	onlineRe = ci(onlinePattern)
)

// substitutePlaceholders replaces preview placeholders with sample values.
func substitutePlaceholders(text string, samples Samples) string {
	samples = samples.withDefaults()
	text = playerRe.ReplaceAllLiteralString(text, samples.Player)
	return onlineRe.ReplaceAllLiteralString(text, samples.Online)
}

// Rewrite converts markup to HTML by running every rewrite rule once, in
// order, over the whole string. Unknown tags are left verbatim and input text
// is NOT escaped: the result is only safe to display for trusted input. Use
// HTML(Parse(...)) for escaped output.
//
// Closers are flat: each one emits a plain </span>, so overlapping tags close
// in textual order rather than by name.
func Rewrite(text string, samples Samples) string {
	if text == "" {
		return ""
	}
	out := substitutePlaceholders(text, samples)
	for _, s := range rewriteSteps {
		out = replaceAll(s.re, out, s.repl)
	}
	return out
}

// replaceAll is regexp.ReplaceAllStringFunc with access to submatches.
func replaceAll(re *regexp.Regexp, s string, repl func([]string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var sb strings.Builder
	last := 0
	for _, loc := range matches {
		sb.WriteString(s[last:loc[0]])
		groups := make([]string, len(loc)/2)
		for g := range groups {
			if loc[2*g] >= 0 {
				groups[g] = s[loc[2*g]:loc[2*g+1]]
			}
		}
		sb.WriteString(repl(groups))
		last = loc[1]
	}
	sb.WriteString(s[last:])
	return sb.String()
}
