package testutil

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// Tree describes a fixture: relative path -> file content.
// A path ending in "/" creates an empty directory.
type Tree map[string]string

// WriteTree materializes tree under base
func WriteTree(t *testing.T, fs types.FS, base string, tree Tree) {
	t.Helper()

	for rel, content := range tree {
		full := filepath.Join(base, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fs.MkdirAll(full, 0755))
			continue
		}
		require.NoError(t, fs.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, fs.WriteFile(full, []byte(content), 0644))
	}
}

// ListFiles returns every file under base as slash-separated relative paths, sorted
func ListFiles(t *testing.T, fs types.FS, base string) []string {
	t.Helper()

	var out []string
	var walk func(dir string)
	walk = func(dir string) {
		entries, err := fs.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			full := filepath.Join(dir, e.Name())
			if e.IsDir() {
				walk(full)
				continue
			}
			rel, err := filepath.Rel(base, full)
			require.NoError(t, err)
			out = append(out, filepath.ToSlash(rel))
		}
	}
	walk(base)
	sort.Strings(out)
	return out
}

// ReadString reads a fixture file
func ReadString(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
