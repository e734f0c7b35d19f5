package fstest

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	stdfstest "testing/fstest"

	"github.com/jmgilman/go/extfile/fs/core"
)

// Seed writes files into filesystem. Keys are slash-separated paths; a key
// ending in "/" creates an empty directory, any other key a file holding the
// value. Parent directories are created as needed.
//
//	fstest.Seed(t, mem, map[string]string{
//	    "root/a.txt":     "a",
//	    "root/sub/b.txt": "b",
//	    "root/empty/":    "",
//	})
func Seed(t testing.TB, filesystem core.FS, files map[string]string) {
	t.Helper()

	src := make(stdfstest.MapFS, len(files))
	for name, content := range files {
		if dir, ok := strings.CutSuffix(name, "/"); ok {
			src[dir] = &stdfstest.MapFile{Mode: fs.ModeDir | 0o755}
			continue
		}
		src[name] = &stdfstest.MapFile{Data: []byte(content), Mode: 0o644}
	}

	if err := core.CopyFS(src, filesystem, "."); err != nil {
		t.Fatalf("Seed: copy failed: %v", err)
	}
}

// AssertExists fails the test if any of names does not exist.
func AssertExists(t testing.TB, filesystem core.FS, names ...string) {
	t.Helper()
	for _, name := range names {
		ok, err := filesystem.Exists(name)
		if err != nil {
			t.Errorf("Exists(%q): got error %v", name, err)
			continue
		}
		if !ok {
			t.Errorf("Exists(%q): got false, want true", name)
		}
	}
}

// AssertNotExist fails the test if any of names still exists.
func AssertNotExist(t testing.TB, filesystem core.FS, names ...string) {
	t.Helper()
	for _, name := range names {
		_, err := filesystem.Stat(name)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%q): got error %v, want fs.ErrNotExist", name, err)
		}
	}
}
