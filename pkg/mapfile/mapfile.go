// Package mapfile loads and saves identifier maps.
//
// The format follows the file extension: .toml, .yaml/.yml or .json.
// A file holds either a flat old -> new table or the same table nested
// under a top-level "uuids" key.
package mapfile

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// TableKey is the optional table wrapping the pairs
const TableKey = "uuids"

type codec struct {
	unmarshal func([]byte, interface{}) error
	marshal   func(interface{}) ([]byte, error)
}

var codecs = map[string]codec{
	".toml": {unmarshal: toml.Unmarshal, marshal: toml.Marshal},
	".yaml": {unmarshal: yaml.Unmarshal, marshal: yaml.Marshal},
	".yml":  {unmarshal: yaml.Unmarshal, marshal: yaml.Marshal},
	".json": {unmarshal: json.Unmarshal, marshal: func(v interface{}) ([]byte, error) {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}},
}

func codecFor(path string) (codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	c, ok := codecs[ext]
	if !ok {
		return codec{}, errors.Newf(errors.ErrInvalidInput, "unsupported map file type %q", ext).
			WithDetail("path", path)
	}
	return c, nil
}

// Load reads path into an identifier map
func Load(fs types.FS, path string) (*idmap.Map, error) {
	c, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMapLoad, "cannot read map file").WithDetail("path", path)
	}

	var raw map[string]interface{}
	if err := c.unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrMapLoad, "cannot parse map file").WithDetail("path", path)
	}

	if nested, ok := raw[TableKey].(map[string]interface{}); ok && len(raw) == 1 {
		raw = nested
	}

	pairs := make(map[string]string, len(raw))
	for k, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrMapLoad, "value for %q is not a string", k).
				WithDetail("path", path).
				WithDetail("type", fmt.Sprintf("%T", v))
		}
		pairs[k] = s
	}

	m, err := idmap.New(pairs)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrMapLoad, "invalid map file").WithDetail("path", path)
	}

	logger := logging.GetLogger("mapfile")
	logger.Debug().Str("path", path).Int("entries", m.Len()).Msg("Loaded map file")
	return m, nil
}

// Save writes m to path under the "uuids" table
func Save(fs types.FS, path string, m *idmap.Map) error {
	c, err := codecFor(path)
	if err != nil {
		return err
	}

	data, err := c.marshal(map[string]map[string]string{TableKey: m.Pairs()})
	if err != nil {
		return errors.Wrap(err, errors.ErrMapSave, "cannot encode map").WithDetail("path", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, errors.ErrMapSave, "cannot create directory").WithDetail("path", dir)
		}
	}
	if err := fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrMapSave, "cannot write map file").WithDetail("path", path)
	}

	logger := logging.GetLogger("mapfile")
	logger.Info().Str("path", path).Int("entries", m.Len()).Msg("Saved map file")
	return nil
}

// Extensions lists the supported file extensions, sorted
func Extensions() []string {
	out := make([]string, 0, len(codecs))
	for ext := range codecs {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}
