// Package idmap holds the identifier map driving a conversion run.
//
// A Map is immutable once built. The renamers look keys up by exact
// equality; the text pass uses Replace, which substitutes every key in a
// single left-to-right scan. At any position the longest matching key
// wins, and keys of equal length are tried in lexical order, so the
// output does not depend on map iteration order.
package idmap

import (
	"sort"
	"strings"

	"github.com/arthur-debert/idswap/pkg/errors"
)

// Map is an immutable old identifier -> new identifier mapping
type Map struct {
	pairs    map[string]string
	keys     []string
	replacer *strings.Replacer
}

// New validates pairs and builds a Map. Empty keys are rejected
// because an empty literal matches everywhere.
func New(pairs map[string]string) (*Map, error) {
	m := &Map{pairs: make(map[string]string, len(pairs))}
	for old, repl := range pairs {
		if old == "" {
			return nil, errors.New(errors.ErrInvalidInput, "identifier map contains an empty key").
				WithDetail("value", repl)
		}
		m.pairs[old] = repl
		m.keys = append(m.keys, old)
	}

	sort.Slice(m.keys, func(i, j int) bool {
		if len(m.keys[i]) != len(m.keys[j]) {
			return len(m.keys[i]) > len(m.keys[j])
		}
		return m.keys[i] < m.keys[j]
	})

	oldnew := make([]string, 0, 2*len(m.keys))
	for _, k := range m.keys {
		oldnew = append(oldnew, k, m.pairs[k])
	}
	m.replacer = strings.NewReplacer(oldnew...)
	return m, nil
}

// MustNew is New for literals known to be valid
func MustNew(pairs map[string]string) *Map {
	m, err := New(pairs)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the new identifier for an exact old identifier
func (m *Map) Lookup(old string) (string, bool) {
	repl, ok := m.pairs[old]
	return repl, ok
}

// Len returns the number of entries
func (m *Map) Len() int {
	return len(m.pairs)
}

// Keys returns the old identifiers in replacement priority order
func (m *Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Pairs returns a copy of the mapping
func (m *Map) Pairs() map[string]string {
	out := make(map[string]string, len(m.pairs))
	for k, v := range m.pairs {
		out[k] = v
	}
	return out
}

// ContainsAny reports whether any old identifier occurs in s
func (m *Map) ContainsAny(s string) bool {
	for _, k := range m.keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Replace substitutes every occurrence of every key in s
func (m *Map) Replace(s string) string {
	if len(m.keys) == 0 {
		return s
	}
	return m.replacer.Replace(s)
}
