package szdb

import (
	"iter"
	"path/filepath"

	"github.com/armon/go-radix"

	"github.com/meigma/szdb/internal/pathutil"
)

// buildPathIndex maps every named entry to its index. When names repeat,
// the first entry wins.
func buildPathIndex(db *Database) *radix.Tree {
	tree := radix.New()
	for i := range db.Files {
		key := pathKey(db.Files[i].Name)
		if key == "" {
			continue
		}
		if _, exists := tree.Get(key); !exists {
			tree.Insert(key, i)
		}
	}
	return tree
}

// pathKey normalizes a path for the index. Host separators are accepted.
func pathKey(path string) string {
	return pathutil.Clean(filepath.ToSlash(path))
}

// Lookup returns the index of the entry named path. Redundant separators
// are ignored, so "/dir//x.txt" finds "dir/x.txt".
func (a *Archive) Lookup(path string) (int, bool) {
	if a.closed {
		return 0, false
	}
	v, ok := a.paths.Get(pathKey(path))
	if !ok {
		return 0, false
	}
	return v.(int), true
}

// Entries returns the indices of entries under dir in path order. An empty
// dir yields every named entry.
func (a *Archive) Entries(dir string) iter.Seq[int] {
	return func(yield func(int) bool) {
		if a.closed {
			return
		}
		prefix := pathKey(dir)
		if prefix != "" {
			prefix += "/"
		}
		a.paths.WalkPrefix(prefix, func(_ string, v any) bool {
			return !yield(v.(int))
		})
	}
}
