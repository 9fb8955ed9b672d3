// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strings"
)

// Default locations, relative to the working directory.
const (
	DefaultLibraryPath  = ".library/library.json"
	DefaultTemplatesDir = "Resource"
	DefaultOutputDir    = "."
	DefaultExtension    = ".md"
	DefaultCatalogPath  = ".library/notes.db"
)

// NotesConfig holds settings for a note generation run.
type NotesConfig struct {
	// LibraryPath is the Better BibTeX JSON export to read.
	LibraryPath string `json:"library_path" yaml:"library_path"`

	// TemplatesDir holds one template per category (Book.md, Article.md, ...).
	TemplatesDir string `json:"templates_dir" yaml:"templates_dir"`

	// OutputDir is the root under which category folders are recreated.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Extension is appended to each note's id. An empty extension writes
	// bare ids.
	Extension string `json:"extension" yaml:"extension"`

	// CatalogPath is the SQLite catalog rebuilt after each run. Empty
	// disables the catalog.
	CatalogPath string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`

	// ReportPath, if set, receives the run report as YAML.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// DefaultNotesConfig returns the configuration used when nothing is set.
func DefaultNotesConfig() NotesConfig {
	return NotesConfig{
		LibraryPath:  DefaultLibraryPath,
		TemplatesDir: DefaultTemplatesDir,
		OutputDir:    DefaultOutputDir,
		Extension:    DefaultExtension,
		CatalogPath:  DefaultCatalogPath,
	}
}

// Validate checks that the paths needed for a run are set and that the
// extension cannot escape the category folder.
func (c NotesConfig) Validate() error {
	if c.LibraryPath == "" {
		return fmt.Errorf("library path is required")
	}
	if c.TemplatesDir == "" {
		return fmt.Errorf("templates dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output dir is required")
	}
	if strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("extension %q must not contain a path separator", c.Extension)
	}
	return nil
}
