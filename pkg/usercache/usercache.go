// Package usercache reads the server's usercache.json, the list of
// players that have joined together with their UUIDs.
package usercache

import (
	"encoding/json"
	"path/filepath"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/types"
)

// FileName is the cache file looked up in the server root
const FileName = "usercache.json"

// Entry is one cached player
type Entry struct {
	Name      string `json:"name" yaml:"name"`
	UUID      string `json:"uuid" yaml:"uuid"`
	ExpiresOn string `json:"expiresOn" yaml:"expiresOn"`
}

// Read parses rootDir/usercache.json
func Read(fs types.FS, rootDir string) ([]Entry, error) {
	path := filepath.Join(rootDir, FileName)

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrUsercacheRead, "cannot read user cache").
			WithDetail("path", path)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, errors.ErrUsercacheParse, "malformed user cache").
			WithDetail("path", path)
	}

	logger := logging.GetLogger("usercache")
	logger.Debug().
		Str("path", path).
		Int("entries", len(entries)).
		Msg("Read user cache")
	return entries, nil
}
