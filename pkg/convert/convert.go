// Package convert drives a conversion run: it scans for roots for each
// requested option and applies the rename and rewrite passes to them.
//
// A failing root is isolated by default for every option: its partial
// changes stay on disk and in the result, the root is reported in
// Result.Skipped, and the remaining roots are still processed. Strict
// mode turns any root failure into a fatal error.
package convert

import (
	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/rename"
	"github.com/arthur-debert/idswap/pkg/rewrite"
	"github.com/arthur-debert/idswap/pkg/scan"
	"github.com/arthur-debert/idswap/pkg/types"
)

const (
	// OptionWorld renames file stems and directories in every world root
	OptionWorld = "world"
	// OptionPluginText renames and rewrites text in every plugin root
	OptionPluginText = "plugin_text"
)

// Options lists the recognized convert options
var Options = []string{OptionWorld, OptionPluginText}

// Request is one conversion run
type Request struct {
	RootDir string
	Options []string
	Uuids   *idmap.Map
	Strict  bool
	Layout  scan.Layout
}

// Result aggregates a run
type Result struct {
	Changes []types.ChangeRecord `json:"changes" yaml:"changes"`
	Skipped []types.Skip         `json:"skipped" yaml:"skipped"`
}

// Paths returns the changed paths in processing order
func (r *Result) Paths() []string {
	return types.Paths(r.Changes)
}

// Pass is one walker applied to a root
type Pass struct {
	Name string
	Run  func(fs types.FS, root string, m *idmap.Map) ([]types.ChangeRecord, error)
}

var (
	fileStemPass = Pass{Name: "file_stems", Run: rename.FileStems}
	dirPass      = Pass{Name: "directories", Run: rename.Directories}
	textPass     = Pass{Name: "text", Run: rewrite.TextContents}
)

// plan describes how an option finds its roots and which passes it runs
type plan struct {
	scan   func(s *scan.Scanner, base string) (scan.Result, error)
	passes []Pass
}

var plans = map[string]plan{
	OptionWorld: {
		scan:   (*scan.Scanner).Worlds,
		passes: []Pass{fileStemPass, dirPass},
	},
	OptionPluginText: {
		scan:   (*scan.Scanner).Plugins,
		passes: []Pass{fileStemPass, dirPass, textPass},
	},
}

// IsOption reports whether name is a recognized convert option
func IsOption(name string) bool {
	_, ok := plans[name]
	return ok
}

// Convert runs req against fs. On a fatal error it returns nil and the
// error; changes already applied are not undone.
func Convert(fs types.FS, req Request) (*Result, error) {
	logger := logging.GetLogger("convert")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	if req.RootDir == "" {
		return nil, errors.New(errors.ErrInvalidInput, "root directory is required")
	}
	if req.Uuids == nil {
		return nil, errors.New(errors.ErrInvalidInput, "identifier map is required")
	}

	scanner := scan.New(fs, req.Layout)
	result := &Result{}

	for _, option := range req.Options {
		p, ok := plans[option]
		if !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown convert option %q", option).
				WithDetail("option", option)
		}

		logger.Info().Str("option", option).Str("root", req.RootDir).Msg("Processing option")

		found, err := p.scan(scanner, req.RootDir)
		if err != nil {
			return nil, err
		}
		result.Skipped = append(result.Skipped, found.Skipped...)

		for _, root := range found.Roots {
			changes, err := runPasses(fs, root, p.passes, req.Uuids)
			result.Changes = append(result.Changes, changes...)
			if err == nil {
				continue
			}

			if req.Strict {
				return nil, errors.Wrap(err, errors.ErrRootFailed, "conversion root failed").
					WithDetail("root", root.Path).
					WithDetail("option", option)
			}

			logger.Warn().Err(err).Str("root", root.Path).Str("option", option).
				Msg("Root failed, continuing with the next one")
			result.Skipped = append(result.Skipped, types.Skip{
				Path:   root.Path,
				Reason: types.SkipRootFailed,
				Err:    err,
			})
		}
	}

	logger.Info().
		Int("changes", len(result.Changes)).
		Int("skipped", len(result.Skipped)).
		Msg("Conversion finished")
	return result, nil
}

// runPasses applies passes to root in order and stops at the first failure
func runPasses(fs types.FS, root types.Root, passes []Pass, m *idmap.Map) ([]types.ChangeRecord, error) {
	logger := logging.GetLogger("convert").With().Str("root", root.Path).Logger()

	var all []types.ChangeRecord
	for _, pass := range passes {
		done := logging.LogOperationStart(logger, pass.Name)
		changes, err := pass.Run(fs, root.Path, m)
		done()

		all = append(all, changes...)
		if err != nil {
			return all, err
		}
	}
	return all, nil
}
