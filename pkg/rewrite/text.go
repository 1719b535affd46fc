// Package rewrite implements the in-place text substitution pass.
package rewrite

import (
	"path/filepath"
	"unicode/utf8"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
)

// TextContents rewrites every text file under root that mentions an old
// identifier. Only regular files are read: linked directories are not
// followed and pipes or sockets are left alone. Files that are not valid UTF-8 are treated as binary and
// left alone; that is not an error. Files mentioning no identifier are
// not written. On error the rewrites made so far are returned with it.
func TextContents(fs types.FS, root string, m *idmap.Map) ([]types.ChangeRecord, error) {
	w := &textWalker{fs: fs, m: m}
	err := w.walk(root)
	return w.changes, err
}

// IsText reports whether data decodes as text
func IsText(data []byte) bool {
	return utf8.Valid(data)
}

type textWalker struct {
	fs      types.FS
	m       *idmap.Map
	changes []types.ChangeRecord
}

func (w *textWalker) walk(dir string) error {
	logger := logging.GetLogger("rewrite.text")

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
		if !filesystem.EntryType(w.fs, path, entry).IsRegular() {
			logger.Trace().Str("path", path).Msg("Not a regular file, skipping")
			continue
		}
		if err := w.rewrite(path); err != nil {
			return err
		}
	}
	return nil
}

func (w *textWalker) rewrite(path string) error {
	logger := logging.GetLogger("rewrite.text")

	data, err := w.fs.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "cannot read file").
			WithDetail("path", path)
	}
	if !IsText(data) {
		logger.Trace().Str("path", path).Msg("Not a text file, skipping")
		return nil
	}

	content := string(data)
	if !w.m.ContainsAny(content) {
		return nil
	}

	info, err := w.fs.Stat(path)
	if err != nil {
		return errors.Wrap(err, errors.ErrFileRead, "cannot stat file").
			WithDetail("path", path)
	}

	if err := w.fs.WriteFile(path, []byte(w.m.Replace(content)), info.Mode().Perm()); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write file").
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Msg("Rewrote file")
	w.changes = append(w.changes, types.ChangeRecord{Path: path, Kind: types.ChangeTextRewrite})
	return nil
}
