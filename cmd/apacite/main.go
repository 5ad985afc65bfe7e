// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the apacite CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/apacite/internal/cite"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the apacite CLI.
var rootCmd = &cobra.Command{
	Use:   "apacite",
	Short: "Extract structured fields from APA-style citations",
	Long: `apacite parses free-text APA-style reference-list entries into structured
records: authors, year, title, publisher, journal name, volume, issue, page
range, and DOI/URL.

Each citation is classified into one of five structural variants (journal
article, standard book, edited book, book section, book chapter-in-collection)
and handed to a variant-specific extractor. Extraction is best-effort: fields
whose patterns find no match are left empty rather than failing the record.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./apacite.yaml or ~/.config/apacite/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("apacite")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "apacite"))
		}
	}

	viper.SetDefault("parser.dashes", cite.DefaultDashes)
	viper.SetDefault("output.format", "text")

	viper.SetEnvPrefix("APACITE")
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
