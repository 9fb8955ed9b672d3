// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/zotero-notes/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate all notes from the library export",
	Long: `Generate classifies every item in the library export, recreates the
category folders under the output root, and writes one note per resource
using the category's template. Records that cannot be rendered are skipped
and listed in the summary; the command then exits non-zero.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	report, err := pipeline.Run(context.Background(), notesConfig(), os.Stdout)
	if err != nil {
		return err
	}
	if report.HasFailures() {
		return fmt.Errorf("%d record(s) failed", len(report.Failures))
	}
	return nil
}

func init() {
	generateCmd.Flags().String("report", "", "also write the run report as YAML to this path")
	if err := viper.BindPFlag(keyReportPath, generateCmd.Flags().Lookup("report")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(generateCmd)
}
