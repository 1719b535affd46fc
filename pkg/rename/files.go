package rename

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
)

// FileStems renames every file under root whose stem is an old identifier.
// Symlinks to directories are neither renamed nor followed.
// On error the changes made so far are returned with it.
func FileStems(fs types.FS, root string, m *idmap.Map) ([]types.ChangeRecord, error) {
	w := &stemWalker{fs: fs, m: m}
	err := w.walk(root)
	return w.changes, err
}

// SplitStem splits a file name at its final extension.
// "Steve.dat" -> ("Steve", ".dat"), "Steve" -> ("Steve", "").
func SplitStem(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	return strings.TrimSuffix(name, ext), ext
}

type stemWalker struct {
	fs      types.FS
	m       *idmap.Map
	changes []types.ChangeRecord
}

func (w *stemWalker) walk(dir string) error {
	logger := logging.GetLogger("rename.files")

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, errors.ErrDirRead, "cannot list directory").
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := w.walk(path); err != nil {
				return err
			}
			continue
		}
		if filesystem.IsLinkedDir(w.fs, path, entry) {
			continue
		}

		stem, ext := SplitStem(entry.Name())
		repl, ok := w.m.Lookup(stem)
		if !ok {
			continue
		}

		newPath := filepath.Join(dir, repl+ext)
		if err := w.fs.Rename(path, newPath); err != nil {
			return errors.Wrap(err, errors.ErrRenameFailed, "cannot rename file").
				WithDetail("from", path).
				WithDetail("to", newPath)
		}

		logger.Debug().Str("from", path).Str("to", newPath).Msg("Renamed file")
		w.changes = append(w.changes, types.ChangeRecord{Path: newPath, Kind: types.ChangeFileRename})
	}
	return nil
}
