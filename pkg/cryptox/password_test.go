package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.True(t, VerifyPassword("correct horse battery staple", hash))
	require.False(t, VerifyPassword("wrong password", hash))
}

func TestHashPasswordIsSalted(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	h1, err := HashPassword("pw1")
	require.NoError(t, err)
	h2, err := HashPassword("pw1")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "two hashes of the same plaintext must differ")
	require.True(t, VerifyPassword("pw1", h1))
	require.True(t, VerifyPassword("pw1", h2))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	SetPepperPath(t.TempDir() + "/pepper")

	malformed := []string{
		"",
		"plaintext",
		"$argon2id$v=19$m=19456,t=2,p=1$short", // missing hash segment
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=what$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
	}
	for _, h := range malformed {
		require.False(t, VerifyPassword("anything", h), "hash %q must verify false", h)
	}
}

func TestGenerateToken(t *testing.T) {
	tok, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, tok, 43)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, tok, other)

	_, err = GenerateToken(0)
	require.Error(t, err)
	_, err = GenerateToken(-1)
	require.Error(t, err)
}

func TestFingerprintTokenDeterministic(t *testing.T) {
	fp1 := FingerprintToken("session-token")
	fp2 := FingerprintToken("session-token")
	require.Equal(t, fp1, fp2)
	require.Len(t, fp1, 43)
	require.NotEqual(t, fp1, FingerprintToken("other-token"))
}
