package config

import (
	"path/filepath"
	"time"
)

// DefaultPath is the configuration file read when --config is not given.
const DefaultPath = ".circuitbot.yml"

// DefaultReplyDelayMS matches the pause the website widget shows before a
// bot bubble appears.
const DefaultReplyDelayMS = 1000

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:           8080,
		ContentInclude: "**/*.md",
		ReplyDelayMS:   DefaultReplyDelayMS,
		StatsEnabled:   false,
		DataDir:        ".circuitbot",
	}
}

// ReplyDelay returns the presentation delay as a duration.
func (c *Config) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// StatsPath returns the SQLite file used for resolution stats.
func (c *Config) StatsPath() string {
	return filepath.Join(c.DataDir, "stats.db")
}
