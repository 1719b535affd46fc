// Package uuidgen derives name-based player UUIDs.
//
// NameUUIDFromBytes follows the Java UUID.nameUUIDFromBytes algorithm the
// game server uses for offline-mode players: an MD5 of the raw bytes with
// the version nibble forced to 3 and the IETF variant bits set. No
// namespace is prepended, which is why uuid.NewMD5 cannot be used.
package uuidgen

import (
	"crypto/md5"
	"strings"

	"github.com/google/uuid"
)

// OfflinePrefix is prepended to a player name for offline-mode UUIDs
const OfflinePrefix = "OfflinePlayer:"

// NameUUIDFromBytes returns the hyphenated lowercase v3 UUID for name
func NameUUIDFromBytes(name []byte) string {
	sum := md5.Sum(name)
	sum[6] &= 0x0f
	sum[6] |= 0x30
	sum[8] &= 0x3f
	sum[8] |= 0x80
	return uuid.UUID(sum).String()
}

// NameUUIDFromString is NameUUIDFromBytes over the UTF-8 bytes of name
func NameUUIDFromString(name string) string {
	return NameUUIDFromBytes([]byte(name))
}

// OfflinePlayerUUID returns the UUID an offline-mode server assigns to name
func OfflinePlayerUUID(name string) string {
	return NameUUIDFromString(OfflinePrefix + name)
}

// Normalize parses s in either hyphenated or 32 hex digit form and
// returns the canonical hyphenated lowercase form
func Normalize(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
