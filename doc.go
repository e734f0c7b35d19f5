// Package extfile adds convenience operations to files addressed through a
// core.FS: content comparison, recursive deletion, media type detection,
// digests, size formatting and name parsing.
//
// A FileRef is a (filesystem, path) pair. It holds no open handles and is
// safe to copy; every method queries the filesystem when called.
//
//	mem := billy.NewMemory()
//	a := extfile.New(mem, "reports/a.csv")
//	b := extfile.New(mem, "reports/b.csv")
//
//	same, err := extfile.EqualsExact(a, b)
//
// # Comparing content
//
// Comparator offers two strategies. EqualsByHash digests both files and
// compares the digests; it is the only option when one side is a digest
// stored earlier (EqualsDigest). EqualsExact streams both files side by side
// and stops at the first differing byte; it cannot report a false positive.
// The hash algorithm is configurable because digest strength trades against
// speed on large files; CRC32 is accepted but is not collision resistant.
//
// # Deleting trees
//
// TreeDeleter removes a file, an empty directory, or with recursive set a
// whole tree in post-order. Removal is best effort: a failed entry is
// recorded and its siblings are still removed. Delete reports a single
// boolean; DeleteTree returns a DeletionResult naming every failed entry.
// Deleting a path that does not exist is reported as a failure.
//
// # Concurrency
//
// All operations are synchronous. Comparator and TreeDeleter hold only
// configuration and may be shared between goroutines, but nothing
// coordinates concurrent deletes of overlapping trees.
package extfile
