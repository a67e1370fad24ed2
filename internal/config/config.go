// Package config loads the transcode CLI configuration from transcode.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mnightingale/transcode"
)

// FileName is the configuration file looked up by Find.
const FileName = "transcode.toml"

type Config struct {
	Convert ConvertConfig `toml:"convert"`
	Gen     GenConfig     `toml:"gen"`
	Log     LogConfig     `toml:"log"`
}

type ConvertConfig struct {
	From      string `toml:"from"`
	To        string `toml:"to"`
	ChunkSize int    `toml:"chunk_size"`
	Jobs      int    `toml:"jobs"`
}

type GenConfig struct {
	Count int    `toml:"count"`
	Seed  uint64 `toml:"seed"`
	Dir   string `toml:"dir"`
}

type LogConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Convert: ConvertConfig{
			From:      "utf8",
			To:        "utf16le",
			ChunkSize: 32 * 1024,
		},
		Gen: GenConfig{
			Count: 1000,
			Seed:  1,
			Dir:   ".",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Find walks up from startDir looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("convert", "chunk_size") && cfg.Convert.ChunkSize <= 0 {
		return Config{}, fmt.Errorf("%s: convert.chunk_size must be positive", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the encoding names are known.
func (c Config) Validate() error {
	if _, err := transcode.ParseEncoding(c.Convert.From); err != nil {
		return fmt.Errorf("convert.from: %w", err)
	}
	if _, err := transcode.ParseEncoding(c.Convert.To); err != nil {
		return fmt.Errorf("convert.to: %w", err)
	}
	return nil
}

// LoadOrDefault loads the nearest configuration file above startDir, or the
// defaults when there is none.
func LoadOrDefault(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}
