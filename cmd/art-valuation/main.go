// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the art-valuation CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the art-valuation CLI.
var rootCmd = &cobra.Command{
	Use:   "art-valuation",
	Short: "Convert art auction listing PDFs into a tabular dataset",
	Long: `art-valuation parses directories of auction listing PDFs (artnet sales
records) and produces a single CSV table, one row per artwork sale, with a
fixed column schema. Fields that cannot be extracted stay empty and are
reported at the end of the run instead of failing it.

Each pipeline stage is also a subcommand: convert (PDF to text), parse
(text to records), and catalog (SQLite index over parsed records). The
run command executes the whole pipeline in one pass.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./art-valuation.yaml or ~/.config/art-valuation/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("art-valuation")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "art-valuation"))
		}
	}

	viper.SetEnvPrefix("ART_VALUATION")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
