package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase file stems to paths, so a slot named "metal" finds
// textures/metal.jpg without configuration.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir for image files. When two files share a stem the
// one whose extension comes first in Extensions wins.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	if dir == "" {
		return idx
	}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if !supported(ext) {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), ext))

		existing, exists := idx.entries[stem]
		if !exists || rank(ext) < rank(filepath.Ext(existing)) {
			idx.entries[stem] = path
		}
		return nil
	})
	return idx
}

func rank(ext string) int {
	ext = strings.ToLower(ext)
	for i, e := range Extensions {
		if e == ext {
			return i
		}
	}
	return len(Extensions)
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
func (idx *Index) ResolvePath(texName string) (string, bool) {
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
