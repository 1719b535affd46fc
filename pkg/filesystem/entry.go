package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/idswap/pkg/types"
)

// EntryType reports the type bits of a listing entry with symlinks
// followed. A dangling link keeps fs.ModeSymlink.
func EntryType(fsys types.FS, path string, entry fs.DirEntry) fs.FileMode {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type()
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return entry.Type()
	}
	return info.Mode().Type()
}

// IsLinkedDir reports whether entry is a symlink resolving to a directory.
// The walkers do not descend through these.
func IsLinkedDir(fsys types.FS, path string, entry fs.DirEntry) bool {
	return entry.Type()&fs.ModeSymlink != 0 && EntryType(fsys, path, entry).IsDir()
}
