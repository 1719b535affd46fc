package rename

import (
	"path/filepath"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
)

// Directories renames every directory below root whose name is an old
// identifier and keeps descending under the new name. root itself is
// never renamed. Files are not touched. A symlink to a directory is renamed
// like one but not followed.
func Directories(fs types.FS, root string, m *idmap.Map) ([]types.ChangeRecord, error) {
	w := &dirWalker{fs: fs, m: m}
	err := w.walk(root)
	return w.changes, err
}

type dirWalker struct {
	fs      types.FS
	m       *idmap.Map
	changes []types.ChangeRecord
}

func (w *dirWalker) walk(dir string) error {
	logger := logging.GetLogger("rename.dirs")

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrDirRead, "cannot list directory").
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		linked := filesystem.IsLinkedDir(w.fs, path, entry)
		if !entry.IsDir() && !linked {
			continue
		}

		if repl, ok := w.m.Lookup(entry.Name()); ok {
			newPath := filepath.Join(dir, repl)
			if err := w.fs.Rename(path, newPath); err != nil {
				return errors.Wrap(err, errors.ErrRenameFailed, "cannot rename directory").
					WithDetail("from", path).
					WithDetail("to", newPath)
			}

			logger.Debug().Str("from", path).Str("to", newPath).Msg("Renamed directory")
			w.changes = append(w.changes, types.ChangeRecord{Path: newPath, Kind: types.ChangeDirRename})
			path = newPath
		}

		if linked {
			continue
		}
		if err := w.walk(path); err != nil {
			return err
		}
	}
	return nil
}
