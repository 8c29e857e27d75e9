// Package config loads the application configuration from a YAML file,
// filling defaults for anything unset. Credentials stay in the
// environment and never in the file.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ChunkerConfig configures how documents are split into chunks.
type ChunkerConfig struct {
	MaxChunkSize int `yaml:"max_chunk_size"`
	Overlap      int `yaml:"overlap"`
}

// SearchConfig bounds retrieval per chat turn.
type SearchConfig struct {
	MaxChunks int `yaml:"max_chunks"`
}

// ModelConfig configures the external text-generation service client.
type ModelConfig struct {
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// BadgerConfig contains the on-disk location of the embedded store.
type BadgerConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig selects the KV backend. The postgres backend reads its DSN
// from PG_* environment variables.
type StoreConfig struct {
	Type   string        `yaml:"type"` // badger|postgres|memory
	Badger *BadgerConfig `yaml:"badger,omitempty"`
}

// LoaderConfig configures the batch text-file ingest service.
type LoaderConfig struct {
	SourceDir      string `yaml:"source_dir"`
	ArchiveDir     string `yaml:"archive_dir"`
	BadDir         string `yaml:"bad_dir"`
	MonitoringSecs int    `yaml:"monitoring_secs"`
}

type AppConfig struct {
	Chunker ChunkerConfig `yaml:"chunker"`
	Search  SearchConfig  `yaml:"search"`
	Model   ModelConfig   `yaml:"model"`
	Store   StoreConfig   `yaml:"store"`
	Loader  LoaderConfig  `yaml:"loader"`
}

// Load reads a config from path. A missing file returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Chunker.MaxChunkSize == 0 {
		cfg.Chunker.MaxChunkSize = 800
	}
	if cfg.Chunker.Overlap == 0 {
		cfg.Chunker.Overlap = 100
	}
	if cfg.Search.MaxChunks == 0 {
		cfg.Search.MaxChunks = 5
	}
	if cfg.Model.Model == "" {
		cfg.Model.Model = "gemini-1.5-flash"
	}
	if cfg.Model.TimeoutSecs == 0 {
		cfg.Model.TimeoutSecs = 60
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = "badger"
	}
	if cfg.Store.Type == "badger" && cfg.Store.Badger == nil {
		cfg.Store.Badger = &BadgerConfig{Path: "data/legalmind"}
	}
	if cfg.Loader.SourceDir == "" {
		cfg.Loader.SourceDir = "incoming"
	}
	if cfg.Loader.ArchiveDir == "" {
		cfg.Loader.ArchiveDir = "archive"
	}
	if cfg.Loader.BadDir == "" {
		cfg.Loader.BadDir = "bad"
	}
	if cfg.Loader.MonitoringSecs == 0 {
		cfg.Loader.MonitoringSecs = 2
	}
}
