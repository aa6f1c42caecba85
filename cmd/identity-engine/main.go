// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the identity-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/identity-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger emits CLI diagnostics to stderr; the pipeline itself never logs.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// rootCmd is the base command for the identity-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "identity-engine",
	Short: "Entity resolution and correlation for OSINT findings",
	Long: `identity-engine collapses raw findings from independent OSINT providers
into deduplicated account profiles and builds a correlation graph over them:
which discovered accounts likely belong to the same operator, with what
confidence, and for what reason.

Each pipeline stage is a subcommand: aggregate dedupes and scores profiles,
graph builds the correlation graph, score shows the per-signal confidence
breakdown for tuning.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./identity-engine.yaml or ~/.config/identity-engine/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("identity-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "identity-engine"))
		}
	}

	viper.SetEnvPrefix("IDENTITY_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// pipelineConfig returns the documented defaults overlaid with any values
// from the config file or environment.
func pipelineConfig() (types.PipelineConfig, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
