// pkg/rename/links_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real FS (t.TempDir), symlinks
// PURPOSE: Linked directories are renamed as directories and never followed

package rename_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/idswap/pkg/filesystem"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/rename"
	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkedTree builds <dir>/outside/Steve.dat and <dir>/w/Steve -> ../outside
func linkedTree(t *testing.T) (dir string) {
	t.Helper()
	dir = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "outside"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "w"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "outside", "Steve.dat"), []byte("nbt"), 0644))
	require.NoError(t, os.Symlink(filepath.Join(dir, "outside"), filepath.Join(dir, "w", "Steve")))
	return dir
}

func TestFileStems_LinkedDirectory(t *testing.T) {
	dir := linkedTree(t)
	m := idmap.MustNew(map[string]string{"Steve": "1234"})

	changes, err := rename.FileStems(filesystem.NewOS(), filepath.Join(dir, "w"), m)
	require.NoError(t, err)
	assert.Empty(t, changes)

	_, err = os.Lstat(filepath.Join(dir, "w", "Steve"))
	assert.NoError(t, err, "link must not be renamed as a file")
	_, err = os.Stat(filepath.Join(dir, "outside", "Steve.dat"))
	assert.NoError(t, err, "link target must not be walked")
}

func TestDirectories_LinkedDirectory(t *testing.T) {
	dir := linkedTree(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "outside", "Steve"), 0755))
	m := idmap.MustNew(map[string]string{"Steve": "1234"})

	changes, err := rename.Directories(filesystem.NewOS(), filepath.Join(dir, "w"), m)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "w", "1234")}, types.Paths(changes))

	info, err := os.Lstat(filepath.Join(dir, "w", "1234"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	_, err = os.Stat(filepath.Join(dir, "outside", "Steve"))
	assert.NoError(t, err, "link target must not be walked")
}
