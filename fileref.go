package extfile

import (
	"io"
	"io/fs"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/extfile/errors"
	"github.com/jmgilman/go/extfile/fs/billy"
	"github.com/jmgilman/go/extfile/fs/core"
)

// localFS backs FileRefs created by Local.
var localFS = billy.NewLocal("/")

// FileRef addresses one path on a filesystem. The zero value has no
// filesystem and must not be used.
type FileRef struct {
	fsys core.FS
	path string
}

// New returns a reference to name on fsys. The path is cleaned and uses
// forward slashes.
func New(fsys core.FS, name string) FileRef {
	return FileRef{fsys: fsys, path: cleanPath(name)}
}

// Join returns a reference to the entry child inside the directory parent.
func Join(fsys core.FS, parent, child string) FileRef {
	return New(fsys, path.Join(filepath.ToSlash(parent), filepath.ToSlash(child)))
}

// FromURI returns a reference for a file URI such as
// "file:///var/log/app.log". The URI must be hierarchical, use the file
// scheme, have no authority other than "localhost", no query and no
// fragment.
func FromURI(fsys core.FS, uri string) (FileRef, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return FileRef{}, errors.WithContext(errors.Wrap(err, errors.CodeInvalidInput, "malformed uri"), "uri", uri)
	}

	var problem string
	switch {
	case !strings.EqualFold(u.Scheme, "file"):
		problem = "uri scheme must be file"
	case u.Opaque != "":
		problem = "uri must be hierarchical"
	case u.Host != "" && u.Host != "localhost":
		problem = "uri must not have an authority"
	case u.RawQuery != "" || u.ForceQuery:
		problem = "uri must not have a query"
	case u.Fragment != "":
		problem = "uri must not have a fragment"
	case u.Path == "":
		problem = "uri path is empty"
	}
	if problem != "" {
		return FileRef{}, errors.WithContext(errors.New(errors.CodeInvalidInput, problem), "uri", uri)
	}
	return New(fsys, u.Path), nil
}

// Local returns a reference to name on the operating system filesystem.
// Relative names are resolved against the working directory.
func Local(name string) (FileRef, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return FileRef{}, fsError(err, "resolve", name)
	}
	return New(localFS, abs), nil
}

func cleanPath(name string) string {
	if name == "" {
		return "."
	}
	return path.Clean(filepath.ToSlash(name))
}

// Child returns a reference to the entry name inside r.
func (r FileRef) Child(name string) FileRef {
	return Join(r.fsys, r.path, name)
}

// Parent returns a reference to the directory containing r.
func (r FileRef) Parent() FileRef {
	return New(r.fsys, path.Dir(r.path))
}

// FS returns the filesystem r resolves against.
func (r FileRef) FS() core.FS { return r.fsys }

// Path returns the cleaned path.
func (r FileRef) Path() string { return r.path }

// String returns the path.
func (r FileRef) String() string { return r.path }

// Name returns the last element of the path.
func (r FileRef) Name() string { return path.Base(r.path) }

// Stat returns the entry's metadata, following symbolic links.
func (r FileRef) Stat() (fs.FileInfo, error) {
	info, err := r.fsys.Stat(r.path)
	if err != nil {
		return nil, fsError(err, "stat", r.path)
	}
	return info, nil
}

// lstat is Stat without following a trailing symbolic link, when the
// filesystem supports it.
func (r FileRef) lstat() (fs.FileInfo, error) {
	if lfs, ok := r.fsys.(core.LstatFS); ok {
		info, err := lfs.Lstat(r.path)
		if err != nil {
			return nil, fsError(err, "lstat", r.path)
		}
		return info, nil
	}
	return r.Stat()
}

// Exists reports whether the entry exists. A false result with an error
// means existence could not be determined.
func (r FileRef) Exists() (bool, error) {
	ok, err := r.fsys.Exists(r.path)
	if err != nil {
		return false, fsError(err, "stat", r.path)
	}
	return ok, nil
}

// IsDir reports whether the entry exists and is a directory.
func (r FileRef) IsDir() bool {
	info, err := r.fsys.Stat(r.path)
	return err == nil && info.IsDir()
}

// IsFile reports whether the entry exists and is a regular file.
func (r FileRef) IsFile() bool {
	info, err := r.fsys.Stat(r.path)
	return err == nil && info.Mode().IsRegular()
}

// Children returns references to the entries of the directory r.
// The order is whatever the filesystem reports.
func (r FileRef) Children() ([]FileRef, error) {
	entries, err := r.fsys.ReadDir(r.path)
	if err != nil {
		return nil, fsError(err, "list", r.path)
	}
	children := make([]FileRef, 0, len(entries))
	for _, e := range entries {
		children = append(children, r.Child(e.Name()))
	}
	return children, nil
}

// Open opens the entry for reading. The caller must close the file.
func (r FileRef) Open() (fs.File, error) {
	f, err := r.fsys.Open(r.path)
	if err != nil {
		return nil, fsError(err, "open", r.path)
	}
	return f, nil
}

// ReadAll returns the entire content of the entry.
func (r FileRef) ReadAll() ([]byte, error) {
	data, err := r.fsys.ReadFile(r.path)
	if err != nil {
		return nil, fsError(err, "read", r.path)
	}
	return data, nil
}

// withReader opens r, hands the open file to fn and closes it afterwards.
func (r FileRef) withReader(fn func(io.Reader) error) error {
	f, err := r.Open()
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}
