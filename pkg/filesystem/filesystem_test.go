// pkg/filesystem/filesystem_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir) and afero MemMapFs
// PURPOSE: Both FS implementations behave the same for the operations the walkers use

package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	impls := map[string]func(t *testing.T) (types.FS, string){
		"os": func(t *testing.T) (types.FS, string) {
			return NewOS(), t.TempDir()
		},
		"afero": func(t *testing.T) (types.FS, string) {
			return NewMemory(), "/base"
		},
	}

	for name, setup := range impls {
		t.Run(name, func(t *testing.T) {
			fs, base := setup(t)

			subDir := filepath.Join(base, "world", "playerdata")
			require.NoError(t, fs.MkdirAll(subDir, 0755))

			file := filepath.Join(subDir, "Steve.dat")
			require.NoError(t, fs.WriteFile(file, []byte("nbt"), 0644))

			info, err := fs.Stat(file)
			require.NoError(t, err)
			assert.Equal(t, "Steve.dat", info.Name())
			assert.Equal(t, int64(3), info.Size())

			content, err := fs.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, []byte("nbt"), content)

			_, err = fs.ReadFile(subDir)
			assert.Error(t, err, "reading a directory must fail")

			renamed := filepath.Join(subDir, "abcd.dat")
			require.NoError(t, fs.Rename(file, renamed))
			_, err = fs.Stat(file)
			assert.True(t, os.IsNotExist(err))

			require.NoError(t, fs.WriteFile(filepath.Join(subDir, "Alex.dat"), nil, 0644))
			entries, err := fs.ReadDir(subDir)
			require.NoError(t, err)
			require.Len(t, entries, 2)
			assert.Equal(t, "Alex.dat", entries[0].Name())
			assert.Equal(t, "abcd.dat", entries[1].Name())
			assert.False(t, entries[0].IsDir())

			entries, err = fs.ReadDir(base)
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.True(t, entries[0].IsDir())

			require.NoError(t, fs.Remove(renamed))
			_, err = fs.Stat(renamed)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestReadDirMissing(t *testing.T) {
	_, err := NewMemory().ReadDir("/nope")
	assert.Error(t, err)

	_, err = NewOS().ReadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
