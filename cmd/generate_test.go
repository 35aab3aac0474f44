package cmd

import (
	"testing"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeGenerateRoot creates a fresh root + generate command tree for testing.
func makeGenerateRoot() *cobra.Command {
	generateStateFlag = ""

	root := newTestRoot()
	g := &cobra.Command{Use: "generate", Args: cobra.NoArgs, RunE: runGenerate}
	g.Flags().StringVar(&generateStateFlag, "state", "", "Read fields from this YAML file")
	root.AddCommand(g)
	return root
}

func TestGenerate_DefaultDraft(t *testing.T) {
	newTestEnv(t)

	stdout, _, err := execute(makeGenerateRoot(), "generate")
	require.NoError(t, err)
	assert.Equal(t, "/announcerplus broadcast all <green>你好，世界！\n", stdout)
}

func TestGenerate_SavedDraft(t *testing.T) {
	newTestEnv(t)
	s := command.Default()
	s.Type = command.KindBroadcastTitle
	s.Title = ""
	s.Subtitle = ""
	writeDraft(t, s)

	stdout, _, err := execute(makeGenerateRoot(), "generate")
	require.NoError(t, err)
	assert.Equal(t, "/announcerplus broadcasttitle * 10 70 20 \"\" \"\"\n", stdout)
}

func TestGenerate_StateFile(t *testing.T) {
	newTestEnv(t)
	path := writeFile(t, t.TempDir(), "saved.yaml", "type: parseanimation\nseconds: 3\ntext: <rainbow>go\n")

	stdout, _, err := execute(makeGenerateRoot(), "generate", "--state", path)
	require.NoError(t, err)
	assert.Equal(t, "/announcerplus parseanimation 3 <rainbow>go\n", stdout)
}

func TestGenerate_StateFileErrors(t *testing.T) {
	newTestEnv(t)
	dir := t.TempDir()

	_, _, err := execute(makeGenerateRoot(), "generate", "--state", writeFile(t, dir, "bad.yaml", "typo: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "typo")

	_, _, err = execute(makeGenerateRoot(), "generate", "--state", dir+"/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open draft file")
}
