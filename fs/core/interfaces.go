package core

import (
	"io"
	"io/fs"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates a disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem a file reference resolves against.
// Every provider MUST implement it.
type FS interface {
	fs.FS
	ReadFS
	WriteFS
	ManageFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// ReadFS defines read-only filesystem operations.
type ReadFS interface {
	// Open opens the named file for reading. The returned file must be
	// closed by the caller.
	Open(name string) (fs.File, error)

	// Stat returns file metadata. Errors are of type *fs.PathError.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory.
	//
	// Providers may return entries in any order; callers MUST NOT depend on
	// sorted output.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists.
	// A false result with a non-nil error means existence could not be
	// determined, not that the path is missing.
	Exists(name string) (bool, error)
}

// WriteFS defines the write operations needed to build file trees.
type WriteFS interface {
	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// WriteFile writes data to the named file, creating it if necessary and
	// truncating it otherwise.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a single directory. The parent must exist and the
	// directory itself must not (ErrExist).
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// It does nothing if the directory already exists.
	MkdirAll(path string, perm fs.FileMode) error
}

// ManageFS defines single-entry removal.
type ManageFS interface {
	// Remove removes the named file or empty directory.
	//
	// Remove MUST fail when the path does not exist (ErrNotExist) and when
	// the path is a directory that still has children (ErrNotEmpty). It
	// never removes more than one entry.
	Remove(name string) error
}

// File represents an open file handle that can also be written to.
type File interface {
	fs.File
	io.Writer

	// Name returns the name of the file as provided to Open or Create.
	Name() string
}

// LstatFS is an optional capability for providers that can stat a path
// without following a trailing symbolic link.
//
//	if lfs, ok := filesystem.(core.LstatFS); ok {
//	    info, err = lfs.Lstat(name)
//	}
type LstatFS interface {
	// Lstat returns file info describing the link itself when name is a
	// symbolic link.
	Lstat(name string) (fs.FileInfo, error)
}
