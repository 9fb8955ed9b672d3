// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-notes/internal/catalog"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog of generated notes",
	Long: `Search queries the catalog written by the last generate run. The query
matches note titles, tags, and note text; --category and --collection
narrow the results.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := notesConfig()
	if cfg.CatalogPath == "" {
		return fmt.Errorf("catalog is disabled: set --catalog or catalog_path")
	}
	if _, err := os.Stat(cfg.CatalogPath); err != nil {
		return fmt.Errorf("no catalog at %s: run generate first", cfg.CatalogPath)
	}

	categoryName, _ := cmd.Flags().GetString("category")
	collection, _ := cmd.Flags().GetString("collection")
	limit, _ := cmd.Flags().GetInt("limit")

	q := catalog.Query{
		Text:       strings.Join(args, " "),
		Collection: collection,
		Limit:      limit,
	}
	if categoryName != "" {
		c, ok := types.ParseCategory(categoryName)
		if !ok {
			return fmt.Errorf("unknown category %q", categoryName)
		}
		q.Category = c
	}

	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), q)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-16s  %-40s  %s\n", "Rank", "Category", "Title", "Path")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))
	for i, r := range results {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-16s  %-40s  %s\n", i+1, r.Category, title, r.Path)
	}
	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	searchCmd.Flags().String("category", "", "filter by category: article, academic_paper, book, ted_talk, youtube_video")
	searchCmd.Flags().String("collection", "", "filter by Zotero collection name")
	searchCmd.Flags().Int("limit", 0, "maximum results (0 = default of 20)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}
