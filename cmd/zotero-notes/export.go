// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-notes/internal/export"
	"github.com/pdiddy/zotero-notes/internal/library"
	"github.com/pdiddy/zotero-notes/internal/pipeline"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export classified resources as CSL-YAML",
	Long: `Export classifies the library export and writes every classified
resource as CSL-YAML, usable as a Pandoc bibliography. Use --category to
limit the export to one resource type.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	categoryName, _ := cmd.Flags().GetString("category")

	cats := types.Categories
	if categoryName != "" {
		c, ok := types.ParseCategory(categoryName)
		if !ok {
			return fmt.Errorf("unknown category %q", categoryName)
		}
		cats = []types.Category{c}
	}

	lib, err := library.Load(notesConfig().LibraryPath)
	if err != nil {
		return err
	}
	cls, err := pipeline.ClassifyAll(context.Background(), lib)
	if err != nil {
		return err
	}
	for _, f := range cls.Failures {
		fmt.Fprintf(os.Stderr, "warning: skipping %s: %s\n", f.ID, f.Reason)
	}

	var resources []types.Resource
	for _, c := range cats {
		resources = append(resources, cls.Registry.All(c)...)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", outPath, err)
		}
		defer f.Close()
		w = f
	}
	if err := export.FormatCSL(resources, w); err != nil {
		return fmt.Errorf("writing CSL-YAML: %w", err)
	}
	if outPath != "" {
		fmt.Fprintf(os.Stderr, "Exported %d resources to %s\n", len(resources), outPath)
	}
	return nil
}

func init() {
	exportCmd.Flags().String("out", "", "output file (default: stdout)")
	exportCmd.Flags().String("category", "", "export one category: article, academic_paper, book, ted_talk, youtube_video")
	rootCmd.AddCommand(exportCmd)
}
