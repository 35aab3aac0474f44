package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	root := Parse("", DefaultSamples())
	assert.Equal(t, RootNode, root.Kind)
	assert.Empty(t, root.Children)
}

func TestParse_NamedColorWrapsText(t *testing.T) {
	root := Parse("<green>hi", DefaultSamples())
	require.Len(t, root.Children, 1)

	c := root.Children[0]
	assert.Equal(t, ColorNode, c.Kind)
	assert.Equal(t, "#55FF55", c.Color)
	require.Len(t, c.Children, 1)
	assert.Equal(t, "hi", c.Children[0].Text)
}

func TestParse_GradientStops(t *testing.T) {
	root := Parse("<gradient:#FF0000:blue>hi</gradient>!", DefaultSamples())
	require.Len(t, root.Children, 2)

	g := root.Children[0]
	assert.Equal(t, GradientNode, g.Kind)
	assert.Equal(t, []string{"#FF0000", "#5555FF"}, g.Stops)
	assert.Equal(t, "hi", Plain(g))
	assert.Equal(t, "!", root.Children[1].Text)
}

func TestParse_RainbowIsGradient(t *testing.T) {
	root := Parse("<rainbow>x</rainbow>", DefaultSamples())
	require.Len(t, root.Children, 1)
	assert.Equal(t, GradientNode, root.Children[0].Kind)
	assert.Equal(t, RainbowStops, root.Children[0].Stops)
}

func TestParse_GenericCloserPopsInnermost(t *testing.T) {
	// </bold> closes the red container, not the bold one.
	root := Parse("<bold><red>a</bold>b</red>c", DefaultSamples())
	require.Len(t, root.Children, 2)

	bold := root.Children[0]
	assert.Equal(t, StyleNode, bold.Kind)
	assert.Equal(t, Bold, bold.Decoration)
	require.Len(t, bold.Children, 2)
	assert.Equal(t, ColorNode, bold.Children[0].Kind)
	assert.Equal(t, "a", Plain(bold.Children[0]))
	assert.Equal(t, "b", bold.Children[1].Text)

	assert.Equal(t, "c", root.Children[1].Text)
}

func TestParse_StrayCloserIgnored(t *testing.T) {
	root := Parse("a</bold>b", DefaultSamples())
	require.Len(t, root.Children, 1)
	assert.Equal(t, "ab", root.Children[0].Text)
}

func TestParse_ResetReplacesCurrentContainer(t *testing.T) {
	root := Parse("<red>a<reset>b", DefaultSamples())
	require.Len(t, root.Children, 2)
	assert.Equal(t, ColorNode, root.Children[0].Kind)
	assert.Equal(t, "a", Plain(root.Children[0]))
	assert.Equal(t, ResetNode, root.Children[1].Kind)
	assert.Equal(t, "b", Plain(root.Children[1]))
}

func TestParse_AnimationBadge(t *testing.T) {
	root := Parse("go {animate:flash:red:blue:10}", DefaultSamples())
	require.Len(t, root.Children, 2)
	assert.Equal(t, BadgeNode, root.Children[1].Kind)
	assert.Equal(t, "flash:red:blue:10", root.Children[1].Text)
	assert.Equal(t, "go [flash:red:blue:10]", Plain(root))
}

func TestParse_CenterBlock(t *testing.T) {
	root := Parse("<center><red>a</center>b", DefaultSamples())
	require.Len(t, root.Children, 2)

	center := root.Children[0]
	assert.Equal(t, CenterNode, center.Kind)
	assert.Equal(t, "a", Plain(center))
	assert.Equal(t, "b", root.Children[1].Text)
}

func TestParse_CloserDoesNotEscapeCenter(t *testing.T) {
	root := Parse("<red><center>a</red>b</center>", DefaultSamples())
	require.Len(t, root.Children, 1)

	red := root.Children[0]
	require.Len(t, red.Children, 1)
	center := red.Children[0]
	assert.Equal(t, CenterNode, center.Kind)
	assert.Equal(t, "ab", Plain(center))
}

func TestParse_ClickAndHover(t *testing.T) {
	root := Parse("<click:run_command:/spawn><hover:show_text:'x'>go", DefaultSamples())
	require.Len(t, root.Children, 1)
	click := root.Children[0]
	assert.Equal(t, ClickNode, click.Kind)
	require.Len(t, click.Children, 1)
	assert.Equal(t, HoverNode, click.Children[0].Kind)
	assert.Equal(t, "go", Plain(root))
}

func TestParse_UnknownTagsAreText(t *testing.T) {
	root := Parse("<sparkle>x</sparkle>", DefaultSamples())
	assert.Equal(t, "<sparkle>x</sparkle>", Plain(root))
	require.Len(t, root.Children, 1)
	assert.Equal(t, TextNode, root.Children[0].Kind)
}

func TestParse_PlaceholdersSubstitutedFirst(t *testing.T) {
	root := Parse("<gold><player> (<online>)", Samples{Player: "Alex"})
	assert.Equal(t, "Alex (42)", Plain(root))
}
