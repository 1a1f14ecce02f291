// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/counterprogram/pebble"
)

const (
	defaultLogDirectory = "logs"
	defaultDatabasePath = "db"
)

type Config struct {
	LogLevel                logging.Level `json:"logLevel"`
	LogDirectory            string        `json:"logDirectory"`
	DisableWriterDisplaying bool          `json:"disableWriterDisplaying"`
	DatabasePath            string        `json:"databasePath"`
	Pebble                  pebble.Config `json:"pebble"`
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel:                logging.Info,
		LogDirectory:            defaultLogDirectory,
		DisableWriterDisplaying: true,
		DatabasePath:            defaultDatabasePath,
		Pebble:                  pebble.NewDefaultConfig(),
	}
}

// New parses [b] on top of the defaults. Empty input yields the defaults.
func New(b []byte) (*Config, error) {
	c := NewDefaultConfig()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Load reads the config at [path]. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewDefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return New(b)
}

func (c *Config) GetLogLevel() logging.Level       { return c.LogLevel }
func (c *Config) GetLogDirectory() string          { return c.LogDirectory }
func (c *Config) GetDatabasePath() string          { return c.DatabasePath }
func (c *Config) GetPebbleConfig() pebble.Config   { return c.Pebble }
func (c *Config) GetDisableWriterDisplaying() bool { return c.DisableWriterDisplaying }
