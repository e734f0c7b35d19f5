// Package fstest provides test support for core.FS providers and for code
// that operates on them.
//
// TestSuite checks a provider against the contract file references rely on:
// reads, tree construction, and single-entry removal that refuses non-empty
// directories. Seed, AssertExists and AssertNotExist build and inspect
// fixture trees in other packages' tests.
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/go/extfile/fs/core"
)

// TestSuite runs all conformance tests against a filesystem.
// newFS must return a fresh, empty filesystem on every call because each
// group mutates the tree it is given.
func TestSuite(t *testing.T, newFS func() core.FS) {
	t.Run("ReadFS", func(t *testing.T) {
		TestReadFS(t, newFS())
	})
	t.Run("WriteFS", func(t *testing.T) {
		TestWriteFS(t, newFS())
	})
	t.Run("ManageFS", func(t *testing.T) {
		TestManageFS(t, newFS())
	})
}
