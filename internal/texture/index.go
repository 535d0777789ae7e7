package texture

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extRank orders duplicate stems: lower wins. Formats that can carry alpha
// beat JPEG-based ones.
var extRank = map[string]int{
	".png":  0,
	".tga":  1,
	".ozt":  1,
	".webp": 2,
	".tif":  3,
	".tiff": 3,
	".bmp":  4,
	".gif":  5,
	".jpg":  6,
	".jpeg": 6,
	".ozj":  6,
}

// Index maps lowercase texture stems to filesystem paths.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for decodable textures.
// Subtrees rooted at any of the exclude paths are skipped, so a render output
// folder placed inside dir is never indexed as input.
func BuildIndex(dir string, exclude ...string) (*Index, error) {
	idx := &Index{entries: make(map[string]string)}

	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		if e != "" {
			skip[absPath(e)] = true
		}
	}

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && skip[absPath(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if !Supported(path) {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists || extRank[ext] < extRank[strings.ToLower(filepath.Ext(existing))] {
			idx.entries[stem] = path
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texture: index %s: %w", dir, err)
	}
	return idx, nil
}

// absPath normalizes p for comparison; relative and absolute spellings of the
// same directory compare equal.
func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
func (idx *Index) ResolvePath(texName string) (string, bool) {
	// Strip path prefix (e.g., "Textures\\stone.jpg" → "stone")
	texName = strings.ReplaceAll(texName, "\\", "/")
	base := filepath.Base(texName)
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Stems returns all indexed stems in sorted order.
func (idx *Index) Stems() []string {
	stems := make([]string, 0, len(idx.entries))
	for s := range idx.entries {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
