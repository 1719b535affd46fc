// Package players reconciles the user cache against both UUID schemes
// and turns the result into an identifier map for a conversion run.
package players

import (
	"sort"
	"strings"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/idmap"
	"github.com/arthur-debert/idswap/pkg/logging"
	"github.com/arthur-debert/idswap/pkg/usercache"
	"github.com/arthur-debert/idswap/pkg/uuidgen"
)

// Direction selects which identifier is replaced by which
type Direction string

const (
	NameToOnline    Direction = "name-to-online"
	NameToOffline   Direction = "name-to-offline"
	OfflineToOnline Direction = "offline-to-online"
	OnlineToOffline Direction = "online-to-offline"
)

// Directions lists every supported direction
var Directions = []Direction{NameToOnline, NameToOffline, OfflineToOnline, OnlineToOffline}

// ParseDirection validates s
func ParseDirection(s string) (Direction, error) {
	for _, d := range Directions {
		if string(d) == strings.ToLower(strings.TrimSpace(s)) {
			return d, nil
		}
	}
	names := make([]string, len(Directions))
	for i, d := range Directions {
		names[i] = string(d)
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown direction %q (want one of %s)", s, strings.Join(names, ", ")).
		WithDetail("direction", s)
}

// NeedsOnline reports whether d requires online UUIDs
func (d Direction) NeedsOnline() bool {
	return d != NameToOffline
}

// Resolver looks up online UUIDs by player name. *mojang.Client satisfies it.
type Resolver interface {
	LookupUUIDs(names []string) (map[string]string, error)
}

// PlayerData is one player with both of their UUIDs. OnlineUUID is empty
// when the player could not be resolved.
type PlayerData struct {
	Name        string `json:"name" yaml:"name"`
	OnlineUUID  string `json:"online_uuid,omitempty" yaml:"online_uuid,omitempty"`
	OfflineUUID string `json:"offline_uuid" yaml:"offline_uuid"`
}

// FromUsercache builds one record per distinct name, sorted by name.
// Offline UUIDs are derived locally.
func FromUsercache(entries []usercache.Entry) []PlayerData {
	seen := make(map[string]bool, len(entries))
	var out []PlayerData
	for _, e := range entries {
		if e.Name == "" || seen[e.Name] {
			continue
		}
		seen[e.Name] = true
		out = append(out, PlayerData{
			Name:        e.Name,
			OfflineUUID: uuidgen.OfflinePlayerUUID(e.Name),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve fills OnlineUUID for every player the resolver knows
func Resolve(players []PlayerData, r Resolver) error {
	if len(players) == 0 {
		return nil
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}

	found, err := r.LookupUUIDs(names)
	if err != nil {
		return err
	}
	for i := range players {
		players[i].OnlineUUID = found[players[i].Name]
	}

	logger := logging.GetLogger("players")
	logger.Info().
		Int("players", len(players)).
		Int("resolved", len(found)).
		Msg("Resolved online UUIDs")
	return nil
}

// BuildMap produces the identifier map for d. Players missing an
// identifier d needs are returned as unresolved instead of mapped.
func BuildMap(players []PlayerData, d Direction) (*idmap.Map, []PlayerData, error) {
	pairs := make(map[string]string, len(players))
	var unresolved []PlayerData

	for _, p := range players {
		if d.NeedsOnline() && p.OnlineUUID == "" {
			unresolved = append(unresolved, p)
			continue
		}
		var old, repl string
		switch d {
		case NameToOnline:
			old, repl = p.Name, p.OnlineUUID
		case NameToOffline:
			old, repl = p.Name, p.OfflineUUID
		case OfflineToOnline:
			old, repl = p.OfflineUUID, p.OnlineUUID
		case OnlineToOffline:
			old, repl = p.OnlineUUID, p.OfflineUUID
		default:
			return nil, nil, errors.Newf(errors.ErrInvalidInput, "unknown direction %q", d)
		}
		if old == repl {
			continue
		}
		pairs[old] = repl
	}

	m, err := idmap.New(pairs)
	if err != nil {
		return nil, nil, err
	}
	return m, unresolved, nil
}
