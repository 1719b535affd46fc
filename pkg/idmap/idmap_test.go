package idmap

import (
	"strings"
	"testing"

	"github.com/arthur-debert/idswap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmptyKey(t *testing.T) {
	_, err := New(map[string]string{"": "x", "Steve": "abcd"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestLookup(t *testing.T) {
	m := MustNew(map[string]string{"Steve": "1234-uuid"})

	got, ok := m.Lookup("Steve")
	assert.True(t, ok)
	assert.Equal(t, "1234-uuid", got)

	_, ok = m.Lookup("Steve2")
	assert.False(t, ok, "lookup is exact")
	_, ok = m.Lookup("steve")
	assert.False(t, ok, "lookup is case sensitive")
	assert.Equal(t, 1, m.Len())
}

func TestKeys_PriorityOrder(t *testing.T) {
	m := MustNew(map[string]string{"b": "1", "Steve": "2", "a": "3", "Steve2": "4"})
	assert.Equal(t, []string{"Steve2", "Steve", "a", "b"}, m.Keys())
}

func TestPairs_IsCopy(t *testing.T) {
	m := MustNew(map[string]string{"Steve": "abcd"})
	p := m.Pairs()
	p["Alex"] = "x"
	assert.Equal(t, 1, m.Len())
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name  string
		pairs map[string]string
		in    string
		want  string
	}{
		{
			name:  "every occurrence",
			pairs: map[string]string{"Steve": "abcd"},
			in:    "owner: Steve\nfriends: [Steve, Alex]",
			want:  "owner: abcd\nfriends: [abcd, Alex]",
		},
		{
			name:  "longest key wins at a position",
			pairs: map[string]string{"Steve": "A", "Steve2": "B"},
			in:    "Steve2 Steve",
			want:  "B A",
		},
		{
			name:  "replacement output is not rescanned",
			pairs: map[string]string{"a": "b", "b": "c"},
			in:    "ab",
			want:  "bc",
		},
		{
			name:  "no keys present",
			pairs: map[string]string{"Steve": "abcd"},
			in:    "nothing here",
			want:  "nothing here",
		},
		{
			name:  "empty map",
			pairs: map[string]string{},
			in:    "Steve",
			want:  "Steve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := MustNew(tt.pairs)
			assert.Equal(t, tt.want, m.Replace(tt.in))
		})
	}
}

func TestReplace_Totality(t *testing.T) {
	m := MustNew(map[string]string{"Steve": "uuid-1", "Alex": "uuid-2"})
	in := "Steve Alex Steve\nAlex"
	out := m.Replace(in)

	for _, k := range m.Keys() {
		assert.NotContains(t, out, k)
		repl, _ := m.Lookup(k)
		assert.GreaterOrEqual(t, strings.Count(out, repl), strings.Count(in, k))
	}
}

func TestContainsAny(t *testing.T) {
	m := MustNew(map[string]string{"Steve": "abcd", "Alex": "efgh"})
	assert.True(t, m.ContainsAny("hello Alex"))
	assert.True(t, m.ContainsAny("xSteveX"))
	assert.False(t, m.ContainsAny("hello world"))
	assert.False(t, MustNew(nil).ContainsAny("anything"))
}
