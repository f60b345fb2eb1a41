package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"github.com/klauspost/compress/zip"
)

// VFS is the read-only search path game data is loaded from: the data
// directories given at start-up followed by any packages mounted later.
// Earlier entries shadow later ones.
type VFS struct {
	mu       sync.RWMutex
	roots    []fs.FS
	mounted  []*zip.ReadCloser
	writeDir string
}

// NewVFS builds a search path from roots. writeDir is the per-user directory
// saves and downloaded campaign packages live in.
func NewVFS(writeDir string, roots ...fs.FS) *VFS {
	return &VFS{
		roots:    roots,
		writeDir: writeDir,
	}
}

// NewDirVFS is NewVFS over plain directories on disk.
func NewDirVFS(writeDir string, dirs ...string) *VFS {
	roots := make([]fs.FS, 0, len(dirs)+1)
	for _, d := range dirs {
		roots = append(roots, os.DirFS(d))
	}
	if writeDir != "" {
		roots = append(roots, os.DirFS(writeDir))
	}
	return NewVFS(writeDir, roots...)
}

func (v *VFS) WriteDir() string {
	return v.writeDir
}

// Mount appends the zip archive at archivePath to the end of the search path.
func (v *VFS) Mount(archivePath string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("mount %s: %w", archivePath, err)
	}
	v.mu.Lock()
	v.mounted = append(v.mounted, r)
	v.roots = append(v.roots, r)
	v.mu.Unlock()
	return nil
}

// Close releases every mounted package.
func (v *VFS) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	var errs []error
	for _, r := range v.mounted {
		errs = append(errs, r.Close())
	}
	v.mounted = nil
	return errors.Join(errs...)
}

func (v *VFS) snapshot() []fs.FS {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]fs.FS(nil), v.roots...)
}

// Open implements fs.FS.
func (v *VFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	for _, root := range v.snapshot() {
		f, err := root.Open(name)
		if err == nil {
			return f, nil
		}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
}

// ReadFile implements fs.ReadFileFS.
func (v *VFS) ReadFile(name string) ([]byte, error) {
	for _, root := range v.snapshot() {
		data, err := fs.ReadFile(root, name)
		if err == nil {
			return data, nil
		}
	}
	return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
}

// ReadDir implements fs.ReadDirFS. Entries from every root are merged,
// the first root providing a name wins.
func (v *VFS) ReadDir(name string) ([]fs.DirEntry, error) {
	seen := make(map[string]bool)
	var entries []fs.DirEntry
	found := false
	for _, root := range v.snapshot() {
		list, err := fs.ReadDir(root, name)
		if err != nil {
			continue
		}
		found = true
		for _, e := range list {
			if seen[e.Name()] {
				continue
			}
			seen[e.Name()] = true
			entries = append(entries, e)
		}
	}
	if !found {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Exists reports whether name can be found anywhere on the search path.
func (v *VFS) Exists(name string) bool {
	for _, root := range v.snapshot() {
		if _, err := fs.Stat(root, name); err == nil {
			return true
		}
	}
	return false
}

// Glob returns the names in dir matching pattern, e.g. ("maps", "*.tmx").
func (v *VFS) Glob(dir, pattern string) ([]string, error) {
	entries, err := v.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := path.Match(pattern, e.Name()); ok {
			out = append(out, path.Join(dir, e.Name()))
		}
	}
	return out, nil
}
