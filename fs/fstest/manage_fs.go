package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/extfile/fs/core"
)

// TestManageFS tests single-entry removal. Remove must delete files and
// empty directories, and must refuse missing paths and non-empty
// directories without touching anything.
func TestManageFS(t *testing.T, filesystem core.FS) {
	t.Run("RemoveFile", func(t *testing.T) {
		if err := filesystem.WriteFile("file.txt", []byte("x"), 0o644); err != nil {
			t.Fatalf("WriteFile: setup failed: %v", err)
		}
		if err := filesystem.Remove("file.txt"); err != nil {
			t.Fatalf("Remove(file.txt): got error %v, want nil", err)
		}
		AssertNotExist(t, filesystem, "file.txt")
	})

	t.Run("RemoveEmptyDirectory", func(t *testing.T) {
		if err := filesystem.Mkdir("emptydir", 0o755); err != nil {
			t.Fatalf("Mkdir: setup failed: %v", err)
		}
		if err := filesystem.Remove("emptydir"); err != nil {
			t.Fatalf("Remove(emptydir): got error %v, want nil", err)
		}
		AssertNotExist(t, filesystem, "emptydir")
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		Seed(t, filesystem, map[string]string{
			"full/a.txt":     "a",
			"full/sub/b.txt": "b",
		})
		err := filesystem.Remove("full")
		if !errors.Is(err, core.ErrNotEmpty) {
			t.Errorf("Remove(full): got error %v, want core.ErrNotEmpty", err)
		}
		AssertExists(t, filesystem, "full", "full/a.txt", "full/sub/b.txt")
	})

	t.Run("RemoveNotExist", func(t *testing.T) {
		err := filesystem.Remove("does-not-exist")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Remove(does-not-exist): got error %v, want fs.ErrNotExist", err)
		}
	})
}
