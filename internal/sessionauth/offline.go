// Package sessionauth implements the two session-identity concerns a
// limbo connection needs: deriving an offline UUID when the client
// doesn't supply one, and fetching a player's profile (skin textures)
// from Mojang's public session server for clients that do have a real
// account.
package sessionauth

import (
	"crypto/md5"

	"github.com/go-mclib/limbo/internal/netio"
)

// OfflineUUID derives a player's UUID the way vanilla does when running
// without Mojang authentication: a version-3 (name-based) UUID computed
// as MD5("OfflinePlayer:" + username), with no namespace prefix - this
// is Java's UUID.nameUUIDFromBytes, not the namespaced RFC 4122 v3
// algorithm google/uuid.NewMD5 implements, so the version/variant bits
// are set by hand here instead of going through that helper.
func OfflineUUID(username string) netio.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + username))
	sum[6] = (sum[6] & 0x0F) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3F) | 0x80 // RFC 4122 variant
	return netio.UUID(sum)
}
