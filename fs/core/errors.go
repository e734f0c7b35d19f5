package core

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrNotEmpty is returned, wrapped in an *fs.PathError, when Remove is
	// called on a directory that still has children.
	ErrNotEmpty = errors.New("directory not empty")
)
