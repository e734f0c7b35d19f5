// Package core defines the filesystem contract that file references in this
// module are resolved against.
//
// The contract is deliberately small: read access (Open, Stat, ReadDir,
// ReadFile, Exists), enough write access to build trees (Create, WriteFile,
// Mkdir, MkdirAll) and single-entry removal (Remove). Recursive removal is not
// part of the contract; it is implemented on top of Remove by the tree
// deleter in the root package so that per-entry failures can be observed.
//
// FS embeds fs.FS, so any provider also works with fs.WalkDir, fs.ReadFile
// and the rest of io/fs.
//
//	func Size(filesystem core.FS, name string) (int64, error) {
//	    info, err := filesystem.Stat(name)
//	    if err != nil {
//	        return 0, err
//	    }
//	    return info.Size(), nil
//	}
//
// Concrete providers live in sibling packages, for example
// github.com/jmgilman/go/extfile/fs/billy.
package core
