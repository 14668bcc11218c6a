package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// ShortSHA produces a truncated hex encoding of the SHA-256 sum of the
// provided input, optionally prefixed with a salt. It is used for hashing
// administrator credentials so that lookups remain exact-match queries.
func ShortSHA(salt, input string) string {
	if salt != "" {
		input = fmt.Sprintf("%s:%s", salt, input)
	}
	sum := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", sum)[0:54]
}

// NewToken returns a URL-safe opaque token carrying the specified number of
// bits of cryptographically secure entropy. bits is rounded down to the
// nearest multiple of 8.
func NewToken(bits int) string {
	b := make([]byte, bits/8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the platform's entropy source is broken.
		// There is no sensible way to continue issuing credentials.
		panic(fmt.Sprintf("error reading from system entropy source: %s", err))
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
