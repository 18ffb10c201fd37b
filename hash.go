package sponsorblock

import (
	"crypto/sha256"
	"encoding/hex"
)

// Bounds for Config.HashPrefixLength. The service accepts prefixes between
// 4 and 32 hex characters; shorter prefixes give stronger anonymity at the
// cost of larger responses.
const (
	MinHashPrefixLength = 4
	MaxHashPrefixLength = 32
)

// HashVideoID returns the lowercase hex SHA-256 digest of a video ID.
// Private searches send only a prefix of this digest, so the server can
// narrow the lookup to a bucket of colliding IDs without learning which
// video was asked for.
func HashVideoID(videoID string) string {
	sum := sha256.Sum256([]byte(videoID))
	return hex.EncodeToString(sum[:])
}
