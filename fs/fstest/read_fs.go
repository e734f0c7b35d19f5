package fstest

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/go/extfile/fs/core"
)

// TestReadFS tests read-only operations: Open, Stat, ReadDir, ReadFile and
// Exists.
func TestReadFS(t *testing.T, filesystem core.FS) {
	content := []byte("test file content")
	if err := filesystem.MkdirAll("testdir/sub", 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir/sub): setup failed: %v", err)
	}
	if err := filesystem.WriteFile("testdir/testfile.txt", content, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		f, err := filesystem.Open("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Open: got error %v, want nil", err)
		}
		defer func() { _ = f.Close() }()

		data, err := io.ReadAll(f)
		if err != nil {
			t.Fatalf("ReadAll: got error %v", err)
		}
		if string(data) != string(content) {
			t.Errorf("Open+ReadAll: got %q, want %q", data, content)
		}
	})

	t.Run("OpenNotExist", func(t *testing.T) {
		_, err := filesystem.Open("testdir/missing.txt")
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(missing): got error %v, want fs.ErrNotExist", err)
		}
	})

	t.Run("StatFile", func(t *testing.T) {
		info, err := filesystem.Stat("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("Stat: got error %v", err)
		}
		if info.IsDir() {
			t.Error("Stat(file).IsDir(): got true, want false")
		}
		if info.Size() != int64(len(content)) {
			t.Errorf("Stat(file).Size(): got %d, want %d", info.Size(), len(content))
		}
	})

	t.Run("StatDir", func(t *testing.T) {
		info, err := filesystem.Stat("testdir")
		if err != nil {
			t.Fatalf("Stat: got error %v", err)
		}
		if !info.IsDir() {
			t.Error("Stat(dir).IsDir(): got false, want true")
		}
	})

	t.Run("ReadDir", func(t *testing.T) {
		entries, err := filesystem.ReadDir("testdir")
		if err != nil {
			t.Fatalf("ReadDir: got error %v", err)
		}
		// Order is provider-defined, so compare as a set.
		got := make(map[string]bool, len(entries))
		for _, e := range entries {
			got[e.Name()] = e.IsDir()
		}
		want := map[string]bool{"sub": true, "testfile.txt": false}
		if len(got) != len(want) {
			t.Fatalf("ReadDir: got %v, want %v", got, want)
		}
		for name, isDir := range want {
			if gotDir, ok := got[name]; !ok || gotDir != isDir {
				t.Errorf("ReadDir: entry %q isDir=%v present=%v, want isDir=%v", name, gotDir, ok, isDir)
			}
		}
	})

	t.Run("ReadFile", func(t *testing.T) {
		data, err := filesystem.ReadFile("testdir/testfile.txt")
		if err != nil {
			t.Fatalf("ReadFile: got error %v", err)
		}
		if string(data) != string(content) {
			t.Errorf("ReadFile: got %q, want %q", data, content)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		for name, want := range map[string]bool{
			"testdir":              true,
			"testdir/testfile.txt": true,
			"testdir/missing.txt":  false,
		} {
			got, err := filesystem.Exists(name)
			if err != nil {
				t.Errorf("Exists(%q): got error %v", name, err)
				continue
			}
			if got != want {
				t.Errorf("Exists(%q): got %v, want %v", name, got, want)
			}
		}
	})
}
