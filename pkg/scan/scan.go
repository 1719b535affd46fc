// Package scan discovers conversion roots under a base directory.
//
// World roots are immediate children of the base holding the marker file
// (level.dat). Plugin roots are the immediate child directories of the
// plugins folder. Problems probing a single child drop that child and
// are reported as a types.Skip; failing to list the directory being
// scanned fails the whole scan.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
)

const (
	// DefaultWorldMarker identifies a world root
	DefaultWorldMarker = "level.dat"
	// DefaultPluginsDir holds plugin roots
	DefaultPluginsDir = "plugins"
)

// Layout names the marker file and plugins folder a Scanner looks for
type Layout struct {
	WorldMarker string
	PluginsDir  string
}

// DefaultLayout is the standard server layout
var DefaultLayout = Layout{WorldMarker: DefaultWorldMarker, PluginsDir: DefaultPluginsDir}

// Result lists discovered roots in listing order plus dropped children
type Result struct {
	Roots   []types.Root
	Skipped []types.Skip
}

// Scanner finds roots on a filesystem
type Scanner struct {
	fs     types.FS
	layout Layout
}

// New creates a Scanner. Empty layout fields fall back to the defaults.
func New(fs types.FS, layout Layout) *Scanner {
	if layout.WorldMarker == "" {
		layout.WorldMarker = DefaultWorldMarker
	}
	if layout.PluginsDir == "" {
		layout.PluginsDir = DefaultPluginsDir
	}
	return &Scanner{fs: fs, layout: layout}
}

// ScanWorlds finds world roots under base using the default layout
func ScanWorlds(fs types.FS, base string) (Result, error) {
	return New(fs, DefaultLayout).Worlds(base)
}

// ScanPlugins finds plugin roots under base using the default layout
func ScanPlugins(fs types.FS, base string) (Result, error) {
	return New(fs, DefaultLayout).Plugins(base)
}

// Worlds returns the immediate children of base that contain the marker file
func (s *Scanner) Worlds(base string) (Result, error) {
	logger := logging.GetLogger("scan.worlds")
	logger.Trace().Str("base", base).Msg("Scanning for world roots")

	entries, err := s.fs.ReadDir(base)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrScanFailed, "cannot list base directory").
			WithDetail("path", base)
	}

	var result Result
	for _, entry := range entries {
		child := filepath.Join(base, entry.Name())

		isDir, err := s.isDir(child, entry)
		if err != nil {
			result.skip(child, err)
			continue
		}
		if !isDir {
			continue
		}

		marker := filepath.Join(child, s.layout.WorldMarker)
		if _, err := s.fs.Stat(marker); err != nil {
			if !os.IsNotExist(err) {
				result.skip(child, err)
			}
			continue
		}

		result.Roots = append(result.Roots, types.Root{Path: child, Kind: types.RootWorld})
		logger.Trace().Str("path", child).Msg("Found world root")
	}

	logger.Info().
		Int("roots", len(result.Roots)).
		Int("skipped", len(result.Skipped)).
		Str("base", base).
		Msg("Scanned for world roots")
	return result, nil
}

// Plugins returns the immediate child directories of base/<plugins>
func (s *Scanner) Plugins(base string) (Result, error) {
	logger := logging.GetLogger("scan.plugins")
	pluginsDir := filepath.Join(base, s.layout.PluginsDir)
	logger.Trace().Str("dir", pluginsDir).Msg("Scanning for plugin roots")

	entries, err := s.fs.ReadDir(pluginsDir)
	if err != nil {
		return Result{}, errors.Wrap(err, errors.ErrScanFailed, "cannot list plugins directory").
			WithDetail("path", pluginsDir)
	}

	var result Result
	for _, entry := range entries {
		child := filepath.Join(pluginsDir, entry.Name())

		isDir, err := s.isDir(child, entry)
		if err != nil {
			result.skip(child, err)
			continue
		}
		if !isDir {
			continue
		}

		result.Roots = append(result.Roots, types.Root{Path: child, Kind: types.RootPlugin})
		logger.Trace().Str("path", child).Msg("Found plugin root")
	}

	logger.Info().
		Int("roots", len(result.Roots)).
		Int("skipped", len(result.Skipped)).
		Str("dir", pluginsDir).
		Msg("Scanned for plugin roots")
	return result, nil
}

// isDir classifies a listing entry. Symlinks are resolved with Stat so a
// linked world folder still counts; a dangling link is a probe failure.
func (s *Scanner) isDir(path string, entry fs.DirEntry) (bool, error) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := s.fs.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (r *Result) skip(path string, err error) {
	logger := logging.GetLogger("scan")
	logger.Debug().Err(err).Str("path", path).Msg("Skipping entry that could not be probed")
	r.Skipped = append(r.Skipped, types.Skip{Path: path, Reason: types.SkipProbeFailed, Err: err})
}
