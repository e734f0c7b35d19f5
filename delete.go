package extfile

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/jmgilman/go/extfile/errors"
	"go.uber.org/multierr"
)

// DeleteFailure records one entry that could not be removed or listed.
type DeleteFailure struct {
	Path string
	Err  error
}

// DeletionResult reports the outcome of one deletion.
type DeletionResult struct {
	// Removed lists the removed paths in removal order.
	Removed []string
	// Failed lists entries that could not be removed or listed.
	Failed []DeleteFailure
}

// OK reports whether every entry was removed.
func (r *DeletionResult) OK() bool {
	return len(r.Failed) == 0
}

// Err combines the failure errors, or returns nil if there were none.
func (r *DeletionResult) Err() error {
	var err error
	for _, f := range r.Failed {
		err = multierr.Append(err, f.Err)
	}
	return err
}

// TreeDeleter removes files and directory trees. A failure on one entry
// does not stop the removal of its siblings. It holds only configuration
// and is safe for concurrent use.
type TreeDeleter struct {
	log logr.Logger
}

// NewTreeDeleter returns a TreeDeleter configured by opts. Only WithLogger
// applies.
func NewTreeDeleter(opts ...Option) *TreeDeleter {
	o := newOptions(opts)
	return &TreeDeleter{log: o.logger}
}

// Delete removes ref and reports whether everything was removed. A
// directory is only emptied first when recursive is set; otherwise it must
// already be empty.
func (d *TreeDeleter) Delete(ref FileRef, recursive bool) bool {
	return d.DeleteTree(ref, recursive).OK()
}

// DeleteTree is Delete with a report of every removed and failed entry.
// Directories are removed depth-first, children before their parent.
func (d *TreeDeleter) DeleteTree(ref FileRef, recursive bool) *DeletionResult {
	res := &DeletionResult{}
	info, err := ref.lstat()
	if err == nil && info.IsDir() && recursive {
		d.removeTree(ref, res)
	} else {
		d.removeEntry(ref, res)
	}

	if res.OK() {
		d.log.V(1).Info("deleted", "path", ref.path, "removed", len(res.Removed))
	}
	return res
}

func (d *TreeDeleter) removeTree(dir FileRef, res *DeletionResult) {
	entries, err := dir.fsys.ReadDir(dir.path)
	if err != nil {
		d.fail(res, dir.path, fsError(err, "list", dir.path))
	}
	for _, e := range entries {
		child := dir.Child(e.Name())
		if e.IsDir() {
			d.removeTree(child, res)
			continue
		}
		d.removeEntry(child, res)
	}
	d.removeEntry(dir, res)
}

func (d *TreeDeleter) removeEntry(ref FileRef, res *DeletionResult) {
	if err := ref.fsys.Remove(ref.path); err != nil {
		d.fail(res, ref.path, fsError(err, "remove", ref.path))
		return
	}
	d.log.V(1).Info("removed", "path", ref.path)
	res.Removed = append(res.Removed, ref.path)
}

func (d *TreeDeleter) fail(res *DeletionResult, path string, cause error) {
	err := errors.WrapWithContext(cause, errors.CodeDeleteFailed, fmt.Sprintf("failed to delete %s", path), map[string]any{
		"path": path,
	})
	d.log.Error(err, "delete failed", "path", path)
	res.Failed = append(res.Failed, DeleteFailure{Path: path, Err: err})
}

var defaultDeleter = NewTreeDeleter()

// Delete removes ref using a default TreeDeleter.
func Delete(ref FileRef, recursive bool) bool {
	return defaultDeleter.Delete(ref, recursive)
}

// DeleteTree removes ref using a default TreeDeleter and reports every
// entry.
func DeleteTree(ref FileRef, recursive bool) *DeletionResult {
	return defaultDeleter.DeleteTree(ref, recursive)
}

// Remove deletes the entry, emptying it first if it is a directory and
// recursive is set. It reports whether everything was removed.
func (r FileRef) Remove(recursive bool) bool {
	return Delete(r, recursive)
}
