// Package assets holds files compiled into the binary: the theme table and
// the prompt used for external puzzle generation.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed themes.yml prompts/*.yml
var FS embed.FS

// ThemesFile is the theme table inside FS.
const ThemesFile = "themes.yml"

// PuzzlePromptFile is the generation prompt inside FS.
const PuzzlePromptFile = "prompts/puzzle.yml"

// Read returns the contents of an embedded file.
func Read(name string) ([]byte, error) {
	return fs.ReadFile(FS, name)
}
