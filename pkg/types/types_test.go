// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatorDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		creator Creator
		want    string
		wantOK  bool
	}{
		{"first and last", Creator{FirstName: Str("Jane"), LastName: Str("Smith")}, "Jane Smith", true},
		{"single name", Creator{Name: Str("SomeChannel")}, "SomeChannel", true},
		{"pair wins over name", Creator{FirstName: Str("Jane"), LastName: Str("Smith"), Name: Str("J.S.")}, "Jane Smith", true},
		{"last name only", Creator{LastName: Str("Smith")}, "", false},
		{"empty", Creator{CreatorType: Str("author")}, "", false},
		{"blank pair", Creator{FirstName: Str(""), LastName: Str("")}, "", false},
		{"blank first falls back to name", Creator{FirstName: Str(" "), LastName: Str("Smith"), Name: Str("Smith Inc")}, "Smith Inc", true},
		{"blank name", Creator{Name: Str("  ")}, "", false},
		{"name is trimmed", Creator{Name: Str(" TED ")}, "TED", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.creator.DisplayName()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryNames(t *testing.T) {
	folders := map[string]bool{}
	for _, c := range Categories {
		assert.NotEmpty(t, c.Folder(), "folder for %s", c)
		assert.NotEmpty(t, c.TemplateName(), "template for %s", c)
		assert.False(t, folders[c.Folder()], "duplicate folder %s", c.Folder())
		folders[c.Folder()] = true

		got, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	assert.Equal(t, "Books", CategoryBook.Folder())
	assert.Equal(t, "Youtube Videos", CategoryYoutubeVideo.Folder())

	_, ok := ParseCategory("podcast")
	assert.False(t, ok)
}

func TestNotesConfigValidate(t *testing.T) {
	cfg := DefaultNotesConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Extension = "/../x"
	assert.Error(t, cfg.Validate())

	cfg = DefaultNotesConfig()
	cfg.OutputDir = ""
	assert.Error(t, cfg.Validate())
}
