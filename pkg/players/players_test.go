// pkg/players/players_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (fake resolver)
// PURPOSE: Player reconciliation and map building per direction

package players

import (
	"testing"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/arthur-debert/idswap/pkg/usercache"
	"github.com/arthur-debert/idswap/pkg/uuidgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notchOnline = "069a79f4-44e9-4726-a5be-fca90e38aaf5"

type fakeResolver struct {
	known map[string]string
	err   error
	asked []string
}

func (f *fakeResolver) LookupUUIDs(names []string) (map[string]string, error) {
	f.asked = append(f.asked, names...)
	if f.err != nil {
		return nil, f.err
	}
	out := map[string]string{}
	for _, n := range names {
		if id, ok := f.known[n]; ok {
			out[n] = id
		}
	}
	return out, nil
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Name-To-Online ")
	require.NoError(t, err)
	assert.Equal(t, NameToOnline, d)

	_, err = ParseDirection("sideways")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestFromUsercache(t *testing.T) {
	entries := []usercache.Entry{
		{Name: "Steve", UUID: "x"},
		{Name: "Notch", UUID: "y"},
		{Name: "Steve", UUID: "z"},
		{Name: ""},
	}

	got := FromUsercache(entries)
	require.Len(t, got, 2)
	assert.Equal(t, "Notch", got[0].Name)
	assert.Equal(t, "b50ad385-829d-3141-a216-7e7d7539ba7f", got[0].OfflineUUID)
	assert.Equal(t, "Steve", got[1].Name)
	assert.Equal(t, uuidgen.OfflinePlayerUUID("Steve"), got[1].OfflineUUID)
	assert.Empty(t, got[0].OnlineUUID)
}

func TestResolve(t *testing.T) {
	players := FromUsercache([]usercache.Entry{{Name: "Notch"}, {Name: "Ghost"}})
	r := &fakeResolver{known: map[string]string{"Notch": notchOnline}}

	require.NoError(t, Resolve(players, r))
	assert.ElementsMatch(t, []string{"Notch", "Ghost"}, r.asked)
	assert.Equal(t, "", players[0].OnlineUUID)
	assert.Equal(t, notchOnline, players[1].OnlineUUID)

	failing := &fakeResolver{err: errors.New(errors.ErrHTTPRequest, "offline")}
	err := Resolve(players, failing)
	assert.True(t, errors.IsErrorCode(err, errors.ErrHTTPRequest))

	assert.NoError(t, Resolve(nil, failing))
}

func TestBuildMap(t *testing.T) {
	notchOffline := uuidgen.OfflinePlayerUUID("Notch")
	ghostOffline := uuidgen.OfflinePlayerUUID("Ghost")
	players := []PlayerData{
		{Name: "Ghost", OfflineUUID: ghostOffline},
		{Name: "Notch", OnlineUUID: notchOnline, OfflineUUID: notchOffline},
	}

	tests := []struct {
		name       string
		direction  Direction
		want       map[string]string
		unresolved []string
	}{
		{
			name:       "name to online",
			direction:  NameToOnline,
			want:       map[string]string{"Notch": notchOnline},
			unresolved: []string{"Ghost"},
		},
		{
			name:      "name to offline",
			direction: NameToOffline,
			want:      map[string]string{"Notch": notchOffline, "Ghost": ghostOffline},
		},
		{
			name:       "offline to online",
			direction:  OfflineToOnline,
			want:       map[string]string{notchOffline: notchOnline},
			unresolved: []string{"Ghost"},
		},
		{
			name:       "online to offline",
			direction:  OnlineToOffline,
			want:       map[string]string{notchOnline: notchOffline},
			unresolved: []string{"Ghost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, unresolved, err := BuildMap(players, tt.direction)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Pairs())

			var names []string
			for _, p := range unresolved {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.unresolved, names)
		})
	}
}

func TestBuildMap_UnknownDirection(t *testing.T) {
	_, _, err := BuildMap([]PlayerData{{Name: "a", OnlineUUID: "b", OfflineUUID: "c"}}, Direction("up"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
