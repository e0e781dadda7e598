package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// New returns a 36-character hyphenated identifier with RFC 4122 v4 layout
// (version and variant bits set) generated from a fast, non-cryptographic
// PRNG. Suitable for log correlation, cache keys and test fixtures; use
// NewSecure for anything security-sensitive.
func New() string {
	var b [16]byte
	binary.BigEndian.PutUint64(b[0:8], rand.Uint64())
	binary.BigEndian.PutUint64(b[8:16], rand.Uint64())

	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // RFC 4122 variant

	var buf [36]byte
	hex.Encode(buf[0:8], b[0:4])
	buf[8] = '-'
	hex.Encode(buf[9:13], b[4:6])
	buf[13] = '-'
	hex.Encode(buf[14:18], b[6:8])
	buf[18] = '-'
	hex.Encode(buf[19:23], b[8:10])
	buf[23] = '-'
	hex.Encode(buf[24:36], b[10:16])
	return string(buf[:])
}

// NewSecure returns a cryptographically random RFC 4122 v4 UUID string.
func NewSecure() string {
	return uuid.NewString()
}

// NewPrefixed returns prefix followed by hexLength random lowercase hex
// characters, e.g. NewPrefixed("req_", 16). A non-positive hexLength
// returns the prefix alone.
func NewPrefixed(prefix string, hexLength int) string {
	if hexLength <= 0 {
		return prefix
	}

	const hexChars = "0123456789abcdef"
	var b strings.Builder
	b.Grow(len(prefix) + hexLength)
	b.WriteString(prefix)
	for i := 0; i < hexLength; i++ {
		b.WriteByte(hexChars[rand.IntN(16)])
	}
	return b.String()
}

// Valid reports whether s has the canonical 8-4-4-4-12 hyphenated UUID
// form. Cheap structural checks reject obvious mismatches before parsing.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}
