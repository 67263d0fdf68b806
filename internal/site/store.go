package site

import (
	"io/fs"
	"sort"
)

// Store is an asset source keyed by slash-separated logical paths.
type Store interface {
	Get(path string) ([]byte, bool)
	List() []string
}

// FSStore serves assets from any fs.FS, embedded or on disk.
type FSStore struct {
	FS fs.FS
}

func (s FSStore) Get(path string) ([]byte, bool) {
	b, err := fs.ReadFile(s.FS, path)
	if err != nil {
		return nil, false
	}
	return b, true
}

// List returns every file path in the store, sorted.
func (s FSStore) List() []string {
	var paths []string
	_ = fs.WalkDir(s.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		paths = append(paths, p)
		return nil
	})
	sort.Strings(paths)
	return paths
}
