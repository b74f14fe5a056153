package render

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"github.com/hasbyte1/go-shaping-utils/shape"
)

// Digest returns the hex-encoded BLAKE2b-256 sum of data.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestGroups renders groups as JSON and digests the result. Two group
// results with equal keys, names, nesting and members yield the same
// digest.
func DigestGroups[T any](groups []shape.Group[T], opts ...Option) (string, error) {
	b, err := JSON(groups, opts...)
	if err != nil {
		return "", err
	}
	return Digest(b), nil
}
