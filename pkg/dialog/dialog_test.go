// pkg/dialog/dialog_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Memory FS, scripted prompter
// PURPOSE: Folder prompt validation and cancel handling

package dialog

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scripted struct {
	answer string
	err    error
	asked  string
}

func (s *scripted) Ask(question string) (string, error) {
	s.asked = question
	return s.answer, s.err
}

func TestOpenDir(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteTree(t, fs, "/srv", testutil.Tree{
		"server/":   "",
		"notes.txt": "x",
	})

	tests := []struct {
		name    string
		prompt  *scripted
		want    string
		errCode errors.ErrorCode
	}{
		{name: "existing folder", prompt: &scripted{answer: " /srv/server/ "}, want: "/srv/server"},
		{name: "cancelled", prompt: &scripted{answer: ""}, want: ""},
		{name: "missing folder", prompt: &scripted{answer: "/srv/none"}, errCode: errors.ErrNotFound},
		{name: "a file", prompt: &scripted{answer: "/srv/notes.txt"}, errCode: errors.ErrInvalidInput},
		{name: "prompt failure", prompt: &scripted{err: fmt.Errorf("interrupted")}, errCode: errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OpenDir(fs, tt.prompt, "Server folder")
			assert.Equal(t, "Server folder", tt.prompt.asked)
			if tt.errCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.errCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
