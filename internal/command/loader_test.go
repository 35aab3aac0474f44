package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_PartialDocumentKeepsDefaults(t *testing.T) {
	s, err := Load(strings.NewReader("type: send\nplayer: Notch\n"))
	require.NoError(t, err)
	assert.Equal(t, KindSend, s.Type)
	assert.Equal(t, "Notch", s.Player)
	assert.Equal(t, "all", s.Config)
	assert.Equal(t, 70, s.Stay)
}

func TestLoad_JSONDocument(t *testing.T) {
	s, err := Load(strings.NewReader(`{"type":"broadcastbossbar","bossbarColor":"RED","bossbarProgress":0.5}`))
	require.NoError(t, err)
	assert.Equal(t, KindBroadcastBossBar, s.Type)
	assert.Equal(t, "RED", s.BossBarColor)
	assert.InDelta(t, 0.5, s.BossBarProgress, 1e-9)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"empty", "", "empty draft file"},
		{"unknown key", "type: send\nplyer: x\n", "plyer"},
		{"bad number", "seconds: soon\n", "failed to parse draft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteFile_LoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "draft.yaml")

	s := Default()
	s.Type = KindBroadcastTitle
	s.Title = "<gradient:#FF0000:#0000FF>Hi</gradient>"
	s.Subtitle = ""
	s.BossBarProgress = 0.3
	require.NoError(t, WriteFile(path, &s))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s, *got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadFileOrDefault(t *testing.T) {
	s, err := LoadFileOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *s)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open draft file")
}
