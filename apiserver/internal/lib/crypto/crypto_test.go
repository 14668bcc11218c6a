package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShortSHA(t *testing.T) {
	const input = "s3cr3t"
	unsalted := ShortSHA("", input)
	require.Len(t, unsalted, 54)
	// Deterministic
	require.Equal(t, unsalted, ShortSHA("", input))
	// Salt must change the digest
	require.NotEqual(t, unsalted, ShortSHA("alice", input))
}

func TestNewToken(t *testing.T) {
	token := NewToken(256)
	// 256 bits, base64url, unpadded
	require.Len(t, token, 43)
	for _, r := range token {
		require.NotContains(t, "+/=", string(r))
	}
	require.NotEqual(t, token, NewToken(256))
}
