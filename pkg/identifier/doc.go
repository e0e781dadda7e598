// Package identifier generates random string identifiers.
//
// New produces UUID-shaped identifiers from a fast non-cryptographic PRNG,
// NewSecure produces real RFC 4122 v4 UUIDs from crypto/rand, and
// NewPrefixed produces short prefixed hex IDs ("req_a1b2...") for logs and
// traces. Valid checks the canonical hyphenated UUID shape.
package identifier
