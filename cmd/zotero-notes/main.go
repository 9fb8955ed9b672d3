// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the zotero-notes CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zotero-notes/internal/logger"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Config keys, shared by the config file, ZOTERO_NOTES_* environment
// variables, and the persistent flags.
const (
	keyLibraryPath  = "library_path"
	keyTemplatesDir = "templates_dir"
	keyOutputDir    = "output_dir"
	keyExtension    = "extension"
	keyCatalogPath  = "catalog_path"
	keyReportPath   = "report_path"
)

// rootCmd is the base command for the zotero-notes CLI.
var rootCmd = &cobra.Command{
	Use:   "zotero-notes",
	Short: "Generate Markdown notes from a Zotero library export",
	Long: `zotero-notes reads a Better BibTeX JSON export of a Zotero library and
writes one Markdown note per reference into a folder per resource type
(Books, Articles, Academic Papers, Youtube Videos, TED Talks), filling a
template for each type.

Every run regenerates all notes from the export: the category folders are
deleted and recreated.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./zotero-notes.yaml or ~/.config/zotero-notes/config.yaml)")
	pf.BoolP("verbose", "v", false, "print classification decisions and other diagnostics")
	pf.String("library", types.DefaultLibraryPath, "Better BibTeX JSON export to read")
	pf.String("templates", types.DefaultTemplatesDir, "directory holding Book.md, Article.md, ... templates")
	pf.String("output", types.DefaultOutputDir, "root directory for the category folders")
	pf.String("extension", types.DefaultExtension, "file extension appended to each note id")
	pf.String("catalog", types.DefaultCatalogPath, "SQLite catalog of written notes (empty disables)")

	for key, flag := range map[string]string{
		keyLibraryPath:  "library",
		keyTemplatesDir: "templates",
		keyOutputDir:    "output",
		keyExtension:    "extension",
		keyCatalogPath:  "catalog",
	} {
		if err := viper.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("zotero-notes")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "zotero-notes"))
		}
	}

	viper.SetEnvPrefix("ZOTERO_NOTES")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// notesConfig assembles the run configuration from flags, environment,
// and config file, in that order of precedence.
func notesConfig() types.NotesConfig {
	return types.NotesConfig{
		LibraryPath:  viper.GetString(keyLibraryPath),
		TemplatesDir: viper.GetString(keyTemplatesDir),
		OutputDir:    viper.GetString(keyOutputDir),
		Extension:    viper.GetString(keyExtension),
		CatalogPath:  viper.GetString(keyCatalogPath),
		ReportPath:   viper.GetString(keyReportPath),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
