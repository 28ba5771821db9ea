package manifest

import (
	"path/filepath"
	"strings"
)

// Layout resolves the client resource directories under a project root.
type Layout struct {
	Root string
}

// TexturesDir is <root>/client/src/main/resources/textures.
func (l Layout) TexturesDir() string {
	return filepath.Join(l.Root, "client", "src", "main", "resources", "textures")
}

func (l Layout) BlocksDir() string { return filepath.Join(l.TexturesDir(), "blocks") }
func (l Layout) UIDir() string     { return filepath.Join(l.TexturesDir(), "ui") }
func (l Layout) SkinsDir() string  { return filepath.Join(l.TexturesDir(), "skins") }
func (l Layout) TestPath() string  { return filepath.Join(l.TexturesDir(), "test.png") }

// Rel returns path relative to the root for display, or path unchanged when
// it lies elsewhere.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
