package domain

import (
	"crypto/sha1" //nolint:gosec // Content addressing only, not a security boundary
	"encoding/hex"
)

// DigestLen is the length of a hex encoded value digest.
const DigestLen = 40

// ComputeDigest returns the 40 character hex SHA-1 digest of value.
func ComputeDigest(value string) string {
	sum := sha1.Sum([]byte(value)) //nolint:gosec // Content addressing only
	return hex.EncodeToString(sum[:])
}

// IsDigest reports whether s has the shape of a value digest:
// exactly 40 hexadecimal characters of either case.
func IsDigest(s string) bool {
	if len(s) != DigestLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
