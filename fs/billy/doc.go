// Package billy provides go-billy backed implementations of core.FS.
//
// NewLocal wraps billy's osfs rooted at a directory, NewMemory wraps memfs,
// and Wrap adapts any other billy.Filesystem:
//
//	local := billy.NewLocal("/")
//	data, err := local.ReadFile("/etc/hostname")
//
//	mem := billy.NewMemory()
//	err := mem.WriteFile("tmp/a.txt", []byte("data"), 0o644)
//
// Remove is stricter than billy's own: it reports core.ErrNotEmpty for a
// directory with children on every backend, so recursive removal can be
// built on top of it.
//
// # Thread Safety
//
// FS values are safe for concurrent use by multiple goroutines. File handles
// are not.
package billy
