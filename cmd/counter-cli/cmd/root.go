// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/counterprogram/config"
	"github.com/ava-labs/counterprogram/host"
	"github.com/ava-labs/counterprogram/pebble"
)

const (
	cliFolder      = ".counter"
	configFileName = "config.json"
)

type counterCLI struct {
	configPath             string
	logLevel               string
	dbPath                 string
	enableWriterDisplaying bool
	cleanup                bool

	log        logging.Logger
	logFactory *logFactory
	logDir     string
	db         *pebble.Database
	host       *host.Host
	gatherer   prometheus.Gatherers
}

func NewRootCmd() *cobra.Command {
	c := &counterCLI{}
	cmd := &cobra.Command{
		Use:   "counter-cli",
		Short: "Execute counter program instructions against locally persisted counters",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.Init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cobra.EnablePrefixMatching = true
	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.DisableAutoGenTag = true
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})

	cmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a JSON config file")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level")
	cmd.PersistentFlags().StringVar(&c.dbPath, "db", "", "database directory")
	cmd.PersistentFlags().BoolVar(&c.enableWriterDisplaying, "enable-writer-displaying", false, "also write logs to stderr")
	cmd.PersistentFlags().BoolVar(&c.cleanup, "cleanup", false, "remove the database and logs on exit")

	cmd.AddCommand(
		newCreateCmd(c),
		newDeleteCmd(c),
		newGetCmd(c),
		newExecCmd(c),
		newRunCmd(c),
	)

	// close databases and loggers however the command exits
	cobra.OnFinalize(c.Close)

	return cmd
}

func (c *counterCLI) Init(cmd *cobra.Command) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	basePath := filepath.Join(homeDir, cliFolder)

	configPath := c.configPath
	if configPath == "" {
		configPath = filepath.Join(basePath, configFileName)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, err = logging.ToLevel(c.logLevel)
		if err != nil {
			return err
		}
	}
	if c.dbPath != "" {
		cfg.DatabasePath = c.dbPath
	}
	if c.enableWriterDisplaying {
		cfg.DisableWriterDisplaying = false
	}

	loggingConfig := logging.Config{}
	loggingConfig.LogLevel = cfg.GetLogLevel()
	loggingConfig.DisplayLevel = cfg.GetLogLevel()
	loggingConfig.LogFormat = logging.JSON
	loggingConfig.Directory = resolve(basePath, cfg.GetLogDirectory())
	loggingConfig.DisableWriterDisplaying = cfg.GetDisableWriterDisplaying()
	loggingConfig.MaxSize = 8
	loggingConfig.MaxFiles = 4
	loggingConfig.MaxAge = 7
	c.logDir = loggingConfig.Directory

	c.logFactory = newLogFactory(loggingConfig)
	c.log, err = c.logFactory.Make("counter")
	if err != nil {
		return err
	}

	dbPath := resolve(basePath, cfg.GetDatabasePath())
	var dbRegistry *prometheus.Registry
	c.db, dbRegistry, err = pebble.New(dbPath, cfg.GetPebbleConfig(), c.log)
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	c.dbPath = dbPath

	var hostRegistry *prometheus.Registry
	c.host, hostRegistry, err = host.New(c.log, c.db)
	if err != nil {
		return err
	}
	c.gatherer = prometheus.Gatherers{hostRegistry, dbRegistry}

	c.log.Info("counter cli initialized",
		zap.Stringer("log-level", cfg.GetLogLevel()),
		zap.String("db", dbPath),
	)
	return nil
}

func (c *counterCLI) Close() {
	if c.gatherer != nil && c.log != nil {
		families, err := c.gatherer.Gather()
		if err != nil {
			c.log.Warn("failed to gather metrics", zap.Error(err))
		}
		for _, mf := range families {
			c.log.Debug("metric", zap.Stringer("family", mf))
		}
		c.gatherer = nil
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close database: %s\n", err)
		}
		c.db = nil
	}
	if c.logFactory != nil {
		c.logFactory.Close()
		c.logFactory = nil
	}
	if !c.cleanup {
		return
	}
	for _, dir := range []string{c.dbPath, c.logDir} {
		if dir == "" {
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			fmt.Fprintf(os.Stderr, "failed to remove %s: %s\n", dir, err)
		}
	}
}

func resolve(basePath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(basePath, p)
}
