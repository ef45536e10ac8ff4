// Package config resolves the application's data locations and test
// parameters from an optional YAML file plus environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all tunable settings. Zero or missing fields fall back to
// the defaults from Default.
type Config struct {
	// DataDir is the directory holding every data file: leaderboard,
	// users, question bank, per-user history logs, attempt database, log.
	DataDir string `yaml:"data_dir"`

	LeaderboardFile string `yaml:"leaderboard_file"`
	UsersFile       string `yaml:"users_file"`
	BankFile        string `yaml:"bank_file"`
	LogFile         string `yaml:"log_file"`

	// QuestionCount is the number of problems per generated test.
	QuestionCount int `yaml:"question_count"`

	// OperandBound is the exclusive upper bound for generated operands,
	// and the inclusive cap for addition results.
	OperandBound int `yaml:"operand_bound"`
}

// Default returns the standard configuration. The data directory resolves
// in priority order: MATHDRILL_DATA_DIR, $XDG_DATA_HOME/mathdrill,
// ~/.local/share/mathdrill.
func Default() Config {
	dataDir := os.Getenv("MATHDRILL_DATA_DIR")
	if dataDir == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dataHome = filepath.Join(home, ".local", "share")
			}
		}
		dataDir = filepath.Join(dataHome, "mathdrill")
	}

	return Config{
		DataDir:         dataDir,
		LeaderboardFile: "leaderboard.txt",
		UsersFile:       "users.txt",
		BankFile:        "questions.txt",
		LogFile:         "mathdrill.log",
		QuestionCount:   10,
		OperandBound:    50,
	}
}

// Load reads YAML config from path over the defaults. An empty path falls
// back to MATHDRILL_CONFIG, then to <data-dir>/config.yaml; a missing file
// is not an error, the defaults simply apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("MATHDRILL_CONFIG")
	}
	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills any field the YAML left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.LeaderboardFile == "" {
		c.LeaderboardFile = def.LeaderboardFile
	}
	if c.UsersFile == "" {
		c.UsersFile = def.UsersFile
	}
	if c.BankFile == "" {
		c.BankFile = def.BankFile
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.QuestionCount <= 0 {
		c.QuestionCount = def.QuestionCount
	}
	if c.OperandBound <= 0 {
		c.OperandBound = def.OperandBound
	}
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0o755)
}

// LeaderboardPath returns the absolute leaderboard file path.
func (c Config) LeaderboardPath() string { return filepath.Join(c.DataDir, c.LeaderboardFile) }

// UsersPath returns the absolute credential file path.
func (c Config) UsersPath() string { return filepath.Join(c.DataDir, c.UsersFile) }

// BankPath returns the absolute question-bank file path.
func (c Config) BankPath() string { return filepath.Join(c.DataDir, c.BankFile) }

// LogPath returns the absolute log file path.
func (c Config) LogPath() string { return filepath.Join(c.DataDir, c.LogFile) }

// HistoryDir returns the directory holding per-user transcript logs.
func (c Config) HistoryDir() string { return c.DataDir }
