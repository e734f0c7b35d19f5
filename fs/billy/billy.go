package billy

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/jmgilman/go/extfile/fs/core"
)

// FS adapts a billy.Filesystem to core.FS.
type FS struct {
	bfs billy.Filesystem
	typ core.FSType
}

// NewLocal creates a filesystem backed by the operating system and rooted at
// root. Paths passed to the returned FS are resolved below root; an empty
// root means "/".
func NewLocal(root string) *FS {
	if root == "" {
		root = "/"
	}
	return &FS{bfs: osfs.New(root), typ: core.FSTypeLocal}
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), typ: core.FSTypeMemory}
}

// Wrap adapts an existing billy.Filesystem. typ is reported by Type.
func Wrap(bfs billy.Filesystem, typ core.FSType) *FS {
	return &FS{bfs: bfs, typ: typ}
}

// Unwrap returns the underlying billy.Filesystem.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Type returns the filesystem type given at construction.
func (f *FS) Type() core.FSType {
	return f.typ
}

// normalize converts paths to use forward slashes consistently.
// Containment is left to billy.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// pathError attaches op and path to errors that billy returns bare, such as
// memfs returning os.ErrNotExist.
func pathError(op, name string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return err
	}
	return &fs.PathError{Op: op, Path: name, Err: err}
}

// Open opens the named file for reading.
func (f *FS) Open(name string) (fs.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// Stat returns file metadata for the named file, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := f.bfs.Stat(name)
	if err != nil {
		return nil, pathError("stat", name, err)
	}
	return info, nil
}

// Lstat returns file metadata without following a trailing symbolic link.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	name = normalize(name)
	info, err := f.bfs.Lstat(name)
	if err != nil {
		return nil, pathError("lstat", name, err)
	}
	return info, nil
}

// ReadDir returns the entries of the named directory.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	name = normalize(name)
	infos, err := f.bfs.ReadDir(name)
	if err != nil {
		return nil, pathError("readdir", name, err)
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (f *FS) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	bf, err := f.bfs.Open(name)
	if err != nil {
		return nil, pathError("open", name, err)
	}
	defer func() { _ = bf.Close() }()
	return io.ReadAll(bf)
}

// Exists reports whether the named file or directory exists.
func (f *FS) Exists(name string) (bool, error) {
	_, err := f.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (f *FS) Create(name string) (core.File, error) {
	name = normalize(name)
	bf, err := f.bfs.Create(name)
	if err != nil {
		return nil, pathError("create", name, err)
	}
	return &File{file: bf, fs: f.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (f *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	bf, err := f.bfs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return pathError("open", name, err)
	}
	defer func() { _ = bf.Close() }()
	_, err = bf.Write(data)
	return err
}

// Mkdir creates a single directory. Unlike MkdirAll it fails if the parent
// is missing or the directory already exists.
func (f *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := f.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := f.bfs.Stat(parent); err != nil {
			return pathError("mkdir", parent, err)
		}
	}
	// The parent exists, so MkdirAll creates exactly one directory.
	return f.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (f *FS) MkdirAll(path string, perm fs.FileMode) error {
	return f.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory. A symbolic link is
// removed itself, never its target.
func (f *FS) Remove(name string) error {
	name = normalize(name)
	info, err := f.bfs.Lstat(name)
	if err != nil {
		return pathError("remove", name, err)
	}
	if info.IsDir() {
		children, err := f.bfs.ReadDir(name)
		if err != nil {
			return pathError("remove", name, err)
		}
		if len(children) > 0 {
			return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
		}
	}
	if err := f.bfs.Remove(name); err != nil {
		return pathError("remove", name, err)
	}
	return nil
}

var (
	_ core.FS      = (*FS)(nil)
	_ core.LstatFS = (*FS)(nil)
)
