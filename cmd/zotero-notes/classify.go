// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/zotero-notes/internal/classify"
	"github.com/pdiddy/zotero-notes/internal/library"
	"github.com/pdiddy/zotero-notes/internal/render"
	"github.com/pdiddy/zotero-notes/pkg/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Show how each library item would be classified (dry run)",
	Long: `Classify loads the library export and prints, for every item, the resource
type it maps to or the reason it is skipped. Nothing is written.`,
	RunE: runClassify,
}

// classifyRow is one line of the dry-run listing.
type classifyRow struct {
	ID       string `json:"id"`
	ItemType string `json:"item_type"`
	Category string `json:"category,omitempty"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := notesConfig()
	lib, err := library.Load(cfg.LibraryPath)
	if err != nil {
		return err
	}

	rows := classifyRows(lib.Items)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-16s  %-16s  %-8s  %s\n", "ID", "Item type", "Category", "Status", "Reason")
	for _, r := range rows {
		fmt.Fprintf(os.Stdout, "%-30s  %-16s  %-16s  %-8s  %s\n", truncate(r.ID, 30), r.ItemType, r.Category, r.Status, r.Reason)
	}

	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Status]++
	}
	fmt.Fprintf(os.Stdout, "\n%d items: %d classified, %d dropped, %d failed\n",
		len(rows), counts["ok"], counts["dropped"], counts["failed"])
	return nil
}

// classifyRows classifies every item and checks that the resulting resource
// renders, so a row marked ok will be written by generate.
func classifyRows(items []types.Item) []classifyRow {
	rows := make([]classifyRow, 0, len(items))
	for i := range items {
		item := &items[i]
		row := classifyRow{ID: item.ID, ItemType: item.ItemType}
		res, err := classify.Classify(item)
		switch {
		case err != nil:
			cat, _ := classify.Match(item)
			row.Category, row.Status, row.Reason = string(cat), "failed", err.Error()
		case res == nil:
			row.Status, row.Reason = "dropped", classify.DropReason(item)
		default:
			row.Category, row.Status = string(res.Category()), "ok"
			if _, err := render.Fields(res); err != nil {
				row.Status, row.Reason = "failed", strings.ReplaceAll(err.Error(), "\n", "; ")
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	classifyCmd.Flags().Bool("json", false, "output rows as JSON")
	rootCmd.AddCommand(classifyCmd)
}
