package cmd

import (
	"errors"
	"testing"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeCopyRoot creates a fresh root + copy command tree for testing.
func makeCopyRoot() *cobra.Command {
	copyStateFlag = ""

	root := newTestRoot()
	c := &cobra.Command{Use: "copy", Args: cobra.NoArgs, RunE: runCopy}
	c.Flags().StringVar(&copyStateFlag, "state", "", "Read fields from this YAML file")
	root.AddCommand(c)
	return root
}

func TestCopy_CopiesAndRecords(t *testing.T) {
	newTestEnv(t)
	fc := &fakeClipboard{}
	useFakeClipboard(t, fc)

	stdout, stderr, err := execute(makeCopyRoot(), "copy")
	require.NoError(t, err)

	want := "/announcerplus broadcast all <green>你好，世界！"
	assert.Equal(t, want+"\n", stdout)
	assert.Equal(t, []string{want}, fc.copied)
	assert.Contains(t, stderr, "copied to clipboard")
	assert.Contains(t, stderr, "history: added")

	store, err := env.openHistory()
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, want, store.Items()[0].Command)
	assert.Equal(t, command.Default(), store.Items()[0].State)
}

func TestCopy_ConsecutiveDuplicateRecordedOnce(t *testing.T) {
	newTestEnv(t)
	fc := &fakeClipboard{}
	useFakeClipboard(t, fc)

	_, _, err := execute(makeCopyRoot(), "copy")
	require.NoError(t, err)
	_, stderr, err := execute(makeCopyRoot(), "copy")
	require.NoError(t, err)
	assert.Contains(t, stderr, "history: unchanged")

	assert.Len(t, fc.copied, 2, "the clipboard is written every time")
	store, err := env.openHistory()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestCopy_ClipboardFailureStillRecords(t *testing.T) {
	newTestEnv(t)
	useFakeClipboard(t, &fakeClipboard{err: errors.New("no display")})

	stdout, stderr, err := execute(makeCopyRoot(), "copy")
	require.NoError(t, err)
	assert.Contains(t, stderr, "could not copy to clipboard: no display")
	assert.Contains(t, stdout, "/announcerplus broadcast")

	store, err := env.openHistory()
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestCopy_RespectsHistoryLimit(t *testing.T) {
	e := newTestEnv(t)
	e.cfg.HistoryLimit = 2
	useFakeClipboard(t, &fakeClipboard{})

	for _, text := range []string{"one", "two", "three"} {
		s := command.Default()
		s.Text = text
		writeDraft(t, s)
		_, _, err := execute(makeCopyRoot(), "copy")
		require.NoError(t, err)
	}

	store, err := env.openHistory()
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "three", store.Items()[0].State.Text)
	assert.Equal(t, "two", store.Items()[1].State.Text)
}

func TestCopy_RestoreRoundTrip(t *testing.T) {
	newTestEnv(t)
	useFakeClipboard(t, &fakeClipboard{})

	original := command.Default()
	original.Type = command.KindBroadcastBossBar
	original.Text = "<gradient:#FF0000:#0000FF>Event</gradient>"
	original.Seconds = 12
	writeDraft(t, original)

	generated, _, err := execute(makeGenerateRoot(), "generate")
	require.NoError(t, err)
	_, _, err = execute(makeCopyRoot(), "copy")
	require.NoError(t, err)

	_, _, err = execute(makeDraftRoot(), "draft", "set", "type=send", "player=Alex", "seconds=1")
	require.NoError(t, err)

	restored, _, err := execute(makeHistoryRoot(), "history", "restore", "1")
	require.NoError(t, err)
	assert.Equal(t, generated, restored)

	regenerated, _, err := execute(makeGenerateRoot(), "generate")
	require.NoError(t, err)
	assert.Equal(t, generated, regenerated)
	assert.Equal(t, original, readDraft(t))
}
