package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/history"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeHistoryRoot creates a fresh root + history command tree for testing.
func makeHistoryRoot() *cobra.Command {
	historyFormatFlag = "text"
	historyLimitFlag = 0

	root := newTestRoot()
	h := &cobra.Command{Use: "history"}

	list := &cobra.Command{Use: "list", Args: cobra.NoArgs, RunE: runHistoryList}
	list.Flags().StringVar(&historyFormatFlag, "format", "text", "Output format: text, json")
	list.Flags().IntVar(&historyLimitFlag, "limit", 0, "Show at most N entries")

	h.AddCommand(
		list,
		&cobra.Command{Use: "restore", Args: cobra.ExactArgs(1), RunE: runHistoryRestore},
		&cobra.Command{Use: "clear", Args: cobra.NoArgs, RunE: runHistoryClear},
		&cobra.Command{Use: "export", Args: cobra.NoArgs, RunE: runHistoryExport},
	)
	root.AddCommand(h)
	return root
}

// seedHistory appends one entry per text, oldest first.
func seedHistory(t *testing.T, texts ...string) *history.Store {
	t.Helper()
	store, err := env.openHistory()
	require.NoError(t, err)
	for _, text := range texts {
		s := command.Default()
		s.Text = text
		_, _, err := store.Append(command.Generate(s), s)
		require.NoError(t, err)
	}
	return store
}

func TestHistoryList_Empty(t *testing.T) {
	newTestEnv(t)

	stdout, stderr, err := execute(makeHistoryRoot(), "history", "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "history is empty")

	stdout, _, err = execute(makeHistoryRoot(), "history", "list", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestHistoryList_Text(t *testing.T) {
	newTestEnv(t)
	store := seedHistory(t, "first", "second")

	stdout, _, err := execute(makeHistoryRoot(), "history", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], store.Items()[0].ID)
	assert.Contains(t, lines[1], "/announcerplus broadcast all second")
	assert.Contains(t, lines[2], "/announcerplus broadcast all first")
}

func TestHistoryList_JSONWithLimit(t *testing.T) {
	newTestEnv(t)
	seedHistory(t, "a", "b", "c")

	stdout, _, err := execute(makeHistoryRoot(), "history", "list", "--format", "json", "--limit", "2")
	require.NoError(t, err)

	var items []history.Item
	require.NoError(t, json.Unmarshal([]byte(stdout), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "c", items[0].State.Text)
	assert.Equal(t, "b", items[1].State.Text)
}

func TestHistoryRestore(t *testing.T) {
	newTestEnv(t)
	store := seedHistory(t, "old", "new")

	stdout, _, err := execute(makeHistoryRoot(), "history", "restore", "2")
	require.NoError(t, err)
	assert.Equal(t, "/announcerplus broadcast all old\n", stdout)
	assert.Equal(t, "old", readDraft(t).Text)

	id := store.Items()[0].ID
	_, _, err = execute(makeHistoryRoot(), "history", "restore", id)
	require.NoError(t, err)
	assert.Equal(t, "new", readDraft(t).Text)
}

func TestHistoryRestore_NotFound(t *testing.T) {
	newTestEnv(t)
	seedHistory(t, "only")

	_, _, err := execute(makeHistoryRoot(), "history", "restore", "5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, history.ErrNotFound))
}

func TestHistoryClear(t *testing.T) {
	newTestEnv(t)
	seedHistory(t, "a", "b")

	_, stderr, err := execute(makeHistoryRoot(), "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, stderr, "removed 2 history entries")

	store, err := env.openHistory()
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestHistoryExport(t *testing.T) {
	newTestEnv(t)
	seedHistory(t, "x")

	stdout, _, err := execute(makeHistoryRoot(), "history", "export")
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &raw))
	require.Len(t, raw, 1)
	for _, key := range []string{"id", "timestamp", "command", "state"} {
		assert.Contains(t, raw[0], key)
	}
	assert.Equal(t, "x", raw[0]["state"].(map[string]any)["text"])
	assert.Equal(t, "/announcerplus broadcast all x", raw[0]["command"])
}
