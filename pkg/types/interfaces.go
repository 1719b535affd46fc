package types

import (
	"io/fs"
)

// FS is the filesystem interface required for idswap operations.
// Walkers never touch the os package directly so traversal can run
// against an in-memory fixture.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
