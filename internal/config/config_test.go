package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataDirFromEnv(t *testing.T) {
	t.Setenv("MATHDRILL_DATA_DIR", "/tmp/drill-data")
	cfg := Default()
	assert.Equal(t, "/tmp/drill-data", cfg.DataDir)
	assert.Equal(t, 10, cfg.QuestionCount)
	assert.Equal(t, 50, cfg.OperandBound)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MATHDRILL_DATA_DIR", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MATHDRILL_DATA_DIR", dir)

	path := filepath.Join(dir, "config.yaml")
	content := "question_count: 20\nleaderboard_file: top.txt\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.QuestionCount)
	assert.Equal(t, filepath.Join(dir, "top.txt"), cfg.LeaderboardPath())
	// Untouched fields keep their defaults.
	assert.Equal(t, "users.txt", cfg.UsersFile)
	assert.Equal(t, 50, cfg.OperandBound)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("question_count: [nope"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPaths(t *testing.T) {
	cfg := Config{DataDir: "/data"}
	cfg.applyDefaults()
	assert.Equal(t, "/data/leaderboard.txt", cfg.LeaderboardPath())
	assert.Equal(t, "/data/users.txt", cfg.UsersPath())
	assert.Equal(t, "/data/questions.txt", cfg.BankPath())
	assert.Equal(t, "/data/mathdrill.log", cfg.LogPath())
	assert.Equal(t, "/data", cfg.HistoryDir())
}
