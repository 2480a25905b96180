package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec("test-secret", "HS256", time.Hour)
	require.NoError(t, err)

	token, err := codec.Encode("user-42", time.Minute)
	require.NoError(t, err)

	subject, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", subject)
}

func TestCodecZeroLifetimeUsesDefault(t *testing.T) {
	codec, err := NewCodec("test-secret", "", 2*time.Hour)
	require.NoError(t, err)
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	codec.now = func() time.Time { return fixed }

	token, err := codec.Encode("u1", 0)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(2*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestCodecRejectsExpired(t *testing.T) {
	codec, err := NewCodec("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	past := time.Now().Add(-2 * time.Hour)
	codec.now = func() time.Time { return past }
	token, err := codec.Encode("u1", time.Minute)
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewCodec("secret-a", "HS256", time.Hour)
	verifier, _ := NewCodec("secret-b", "HS256", time.Hour)

	token, err := issuer.Encode("u1", time.Minute)
	require.NoError(t, err)

	_, err = verifier.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsMalformedAndUnsigned(t *testing.T) {
	codec, _ := NewCodec("test-secret", "HS256", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "u1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = codec.Decode(none)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRequiresSubjectAndExpiry(t *testing.T) {
	codec, _ := NewCodec("test-secret", "HS256", time.Hour)

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = codec.Decode(noSub)
	assert.ErrorIs(t, err, ErrInvalidToken)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "u1",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = codec.Decode(noExp)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCodecRejectsOtherHMACAlgorithm(t *testing.T) {
	codec, _ := NewCodec("test-secret", "HS256", time.Hour)
	other, _ := NewCodec("test-secret", "HS512", time.Hour)

	token, err := other.Encode("u1", time.Minute)
	require.NoError(t, err)
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewCodecValidation(t *testing.T) {
	_, err := NewCodec("", "HS256", time.Hour)
	assert.Error(t, err)
	_, err = NewCodec("s", "RS256", time.Hour)
	assert.Error(t, err)

	codec, _ := NewCodec("s", "HS256", time.Hour)
	_, err = codec.Encode("", time.Minute)
	assert.Error(t, err)
}
