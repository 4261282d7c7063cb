package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.True(t, Verify("s3cret", hash))
}

func TestVerifyRejectsWrongPassword(t *testing.T) {
	hash, err := Hash("s3cret")
	require.NoError(t, err)
	require.False(t, Verify("wrong", hash))
	require.False(t, Verify("", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("same-password")
	require.NoError(t, err)
	second, err := Hash("same-password")
	require.NoError(t, err)

	// bcrypt embeds a fresh salt, so equal inputs yield distinct hashes of
	// fixed length.
	require.NotEqual(t, first, second)
	require.Len(t, first, 60)
	require.Len(t, second, 60)
}

func TestVerifyRejectsGarbageHash(t *testing.T) {
	require.False(t, Verify("s3cret", "not-a-bcrypt-hash"))
}
