// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-notes/internal/templates"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write starter templates for every resource type",
	Long: `Init writes a starter template for each resource type into the templates
directory. Existing templates are never overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := notesConfig()
		n, err := templates.WriteDefaults(cfg.TemplatesDir, os.Stdout)
		if err != nil {
			return err
		}
		fmt.Printf("%d template(s) written to %s\n", n, cfg.TemplatesDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
