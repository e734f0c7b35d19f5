package fstest

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/extfile/fs/core"
)

// TestWriteFS tests the write operations used to build trees: Create,
// WriteFile, Mkdir and MkdirAll.
func TestWriteFS(t *testing.T, filesystem core.FS) {
	t.Run("Create", func(t *testing.T) {
		f, err := filesystem.Create("created.txt")
		if err != nil {
			t.Fatalf("Create: got error %v", err)
		}
		if _, err := f.Write([]byte("hello")); err != nil {
			t.Fatalf("Write: got error %v", err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("Close: got error %v", err)
		}

		data, err := filesystem.ReadFile("created.txt")
		if err != nil || string(data) != "hello" {
			t.Errorf("ReadFile(created.txt): got %q, %v, want %q", data, err, "hello")
		}
	})

	t.Run("WriteFileTruncates", func(t *testing.T) {
		if err := filesystem.WriteFile("trunc.txt", []byte("long content"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v", err)
		}
		if err := filesystem.WriteFile("trunc.txt", []byte("short"), 0o644); err != nil {
			t.Fatalf("WriteFile: got error %v", err)
		}
		data, _ := filesystem.ReadFile("trunc.txt")
		if string(data) != "short" {
			t.Errorf("ReadFile(trunc.txt): got %q, want %q", data, "short")
		}
	})

	t.Run("Mkdir", func(t *testing.T) {
		if err := filesystem.Mkdir("single", 0o755); err != nil {
			t.Fatalf("Mkdir: got error %v", err)
		}
		if err := filesystem.Mkdir("single", 0o755); !errors.Is(err, fs.ErrExist) {
			t.Errorf("Mkdir(existing): got error %v, want fs.ErrExist", err)
		}
		if err := filesystem.Mkdir("missing/child", 0o755); err == nil {
			t.Error("Mkdir(missing parent): got nil error, want error")
		}
	})

	t.Run("MkdirAll", func(t *testing.T) {
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Fatalf("MkdirAll: got error %v", err)
		}
		if err := filesystem.MkdirAll("a/b/c", 0o755); err != nil {
			t.Errorf("MkdirAll(existing): got error %v, want nil", err)
		}
		info, err := filesystem.Stat("a/b/c")
		if err != nil || !info.IsDir() {
			t.Errorf("Stat(a/b/c): got %v, %v, want directory", info, err)
		}
	})
}
