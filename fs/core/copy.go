package core

import (
	"io/fs"
	"path"
	"strings"
)

// CopyFS copies the tree rooted at srcRoot in src into dst, preserving
// directory structure and file permissions. Directories, including empty
// ones, are created with MkdirAll. Use "." to copy all of src.
//
// It is mostly used to seed test filesystems from a testing/fstest.MapFS:
//
//	err := core.CopyFS(fstest.MapFS{
//	    "root/a.txt":     {Data: []byte("a")},
//	    "root/sub/b.txt": {Data: []byte("b")},
//	}, memFS, ".")
func CopyFS(src fs.FS, dst FS, srcRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		dstPath := filePath
		if srcRoot != "." && srcRoot != "" {
			dstPath = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		if dstPath == "" {
			dstPath = "."
		}

		if d.IsDir() {
			if dstPath == "." {
				return nil
			}
			return dst.MkdirAll(dstPath, 0o755)
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}

		if dir := path.Dir(dstPath); dir != "." {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		return dst.WriteFile(dstPath, data, info.Mode().Perm())
	})
}
