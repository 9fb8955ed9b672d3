// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library reads a Zotero library exported by Better BibTeX as
// "Better CSL JSON"/"BetterBibTeX JSON" into types.Library.
package library

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pdiddy/zotero-notes/pkg/types"
)

// Load reads and parses the library export at path.
func Load(path string) (*types.Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening library %s: %w", path, err)
	}
	defer f.Close()

	lib, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing library %s: %w", path, err)
	}
	return lib, nil
}

// Parse decodes a library export from r. Item order is preserved. Items
// without a citation key are rejected since the key names the output file.
func Parse(r io.Reader) (*types.Library, error) {
	var lib types.Library
	if err := json.NewDecoder(r).Decode(&lib); err != nil {
		return nil, err
	}
	for i, item := range lib.Items {
		if item.ID == "" {
			return nil, fmt.Errorf("item %d (%s) has no citationKey", i, item.ItemType)
		}
	}
	return &lib, nil
}

// Memberships maps each item's numeric ID to the names of the collections
// that contain it, in the order collections are listed by key.
func Memberships(lib *types.Library) map[int][]string {
	keys := make([]string, 0, len(lib.Collections))
	for k := range lib.Collections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[int][]string)
	for _, k := range keys {
		c := lib.Collections[k]
		for _, id := range c.Items {
			out[id] = append(out[id], c.Name)
		}
	}
	return out
}
