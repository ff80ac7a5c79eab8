package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"

	EmojiAuto   = "auto"
	EmojiAlways = "always"
	EmojiNever  = "never"
)

var ErrBadConfig = errors.New("bad config")

type LogConfig struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode  string     `json:"mode"`
	Emoji string     `json:"emoji"`
	Game  GameParams `json:"game"`
	Log   LogConfig  `json:"log"`
}

// Default is a 10x20 board with 15 mines, drawn with emoji on terminals and
// logging nowhere.
func Default() *Config {
	return &Config{
		Mode:  ModeProduction,
		Emoji: EmojiAuto,
		Game:  GameParams{Rows: 10, Cols: 20, Mines: 15},
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads the JSON config at path on top of [Default] and applies env
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	config := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config %s: %w", path, err)
		}
		if err := json.Unmarshal(b, config); err != nil {
			return nil, fmt.Errorf("unable to parse config %s: %w", path, err)
		}
	}

	if mode, ok := os.LookupEnv("MINES_MODE"); ok {
		config.Mode = mode
	}
	if logFile, ok := os.LookupEnv("MINES_LOG_FILE"); ok {
		config.Log.File = logFile
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c Config) Validate() error {
	switch c.Mode {
	case ModeDevelopment, ModeProduction:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrBadConfig, c.Mode)
	}
	switch c.Emoji {
	case EmojiAuto, EmojiAlways, EmojiNever:
	default:
		return fmt.Errorf("%w: unknown emoji setting %q", ErrBadConfig, c.Emoji)
	}
	if err := c.Game.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	return nil
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":             c.Mode,
		"emoji":            c.Emoji,
		"rows":             c.Game.Rows,
		"cols":             c.Game.Cols,
		"mines":            c.Game.Mines,
		"log_file":         c.Log.File,
		"log_max_size_mb":  c.Log.MaxSizeMB,
		"log_max_backups":  c.Log.MaxBackups,
		"log_max_age_days": c.Log.MaxAgeDays,
	}
}
