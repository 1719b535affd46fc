// Package dialog asks the user for a server folder when none was given
// on the command line.
package dialog

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/pterm/pterm"
)

// Prompter asks one question and returns the raw answer
type Prompter interface {
	Ask(question string) (string, error)
}

// PtermPrompter reads the answer with pterm's interactive text input
type PtermPrompter struct{}

// Ask shows question and waits for a line of input
func (PtermPrompter) Ask(question string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(question)
}

// OpenDir asks for a directory. An empty answer means the user cancelled
// and returns "". Answers that are not existing directories are an error.
func OpenDir(fs types.FS, p Prompter, question string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "cannot read answer")
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", nil
	}
	dir := filepath.Clean(answer)

	info, err := fs.Stat(dir)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "folder does not exist").WithDetail("path", dir)
	}
	if !info.IsDir() {
		return "", errors.New(errors.ErrInvalidInput, "not a folder").WithDetail("path", dir)
	}
	return dir, nil
}
