package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-pngyinx"
)

// Config is the optional YAML configuration file. Flags override it.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Format   string       `yaml:"format"`
	Backup   bool         `yaml:"backup"`
	Strict   bool         `yaml:"strict"`
	Limits   LimitsConfig `yaml:"limits"`
}

// LimitsConfig mirrors pngyinx.Limits; zero fields keep the library defaults.
type LimitsConfig struct {
	MaxFileSize int64  `yaml:"max_file_size"`
	MaxChunkLen uint32 `yaml:"max_chunk_len"`
	MaxChunks   int    `yaml:"max_chunks"`
	MaxTextLen  uint64 `yaml:"max_text_len"`
}

func (l LimitsConfig) toLimits() pngyinx.Limits {
	return pngyinx.Limits{
		MaxFileSize: l.MaxFileSize,
		MaxChunkLen: l.MaxChunkLen,
		MaxChunks:   l.MaxChunks,
		MaxTextLen:  l.MaxTextLen,
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, cliName, "config.yaml")
}

// loadConfig reads path. A missing file is only an error when the user named it.
func loadConfig(path string, explicit bool) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case formatTable, formatJSON:
	default:
		return fmt.Errorf("unknown format %q, want %s or %s", c.Format, formatTable, formatJSON)
	}
	if c.Limits.MaxFileSize < 0 || c.Limits.MaxChunks < 0 {
		return errors.New("limits must not be negative")
	}
	return nil
}
