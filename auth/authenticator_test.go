package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
)

// countingHasher records how many hash verifications were run.
type countingHasher struct {
	verifies int
	decoys   int
	inner    PasswordHasher
}

func (h *countingHasher) Hash(plain string) (string, error) { return h.inner.Hash(plain) }

func (h *countingHasher) Verify(plain, hash string) (bool, error) {
	h.verifies++
	return h.inner.Verify(plain, hash)
}

func (h *countingHasher) VerifyDecoy(plain string) {
	h.decoys++
	h.inner.VerifyDecoy(plain)
}

func (h *countingHasher) total() int { return h.verifies + h.decoys }

type stubUsers struct {
	users map[string]*model.User
	err   error
}

func (s *stubUsers) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, quill_errors.ErrUserNotFound
}

func newFixture(t *testing.T) (*Authenticator, *countingHasher) {
	t.Helper()
	bh, err := NewBcryptHasher(4)
	require.NoError(t, err)
	hash, err := bh.Hash("correct horse")
	require.NoError(t, err)

	users := &stubUsers{users: map[string]*model.User{
		"active@example.com":   {ID: "u1", Email: "active@example.com", PasswordHash: hash, IsActive: true},
		"inactive@example.com": {ID: "u2", Email: "inactive@example.com", PasswordHash: hash, IsActive: false},
	}}
	counter := &countingHasher{inner: bh}
	return NewAuthenticator(users, counter), counter
}

func reasonOf(t *testing.T, err error) string {
	t.Helper()
	var rej *RejectionError
	require.True(t, errors.As(err, &rej))
	return rej.Reason
}

func TestAuthenticateAccepts(t *testing.T) {
	a, counter := newFixture(t)
	user, err := a.Authenticate(context.Background(), "active@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, counter.total())
}

func TestAuthenticateUnknownLoginRunsDecoy(t *testing.T) {
	a, counter := newFixture(t)
	_, err := a.Authenticate(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, ReasonUnknownLogin, reasonOf(t, err))
	assert.Equal(t, 1, counter.decoys)
	assert.Equal(t, 1, counter.total())
}

func TestAuthenticateWrongPassword(t *testing.T) {
	a, counter := newFixture(t)
	_, err := a.Authenticate(context.Background(), "active@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, ReasonBadPassword, reasonOf(t, err))
	assert.Equal(t, 1, counter.total())
}

func TestAuthenticateInactiveUser(t *testing.T) {
	a, _ := newFixture(t)
	_, err := a.Authenticate(context.Background(), "inactive@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, ReasonInactive, reasonOf(t, err))
}

func TestAuthenticateOversizedSkipsHashing(t *testing.T) {
	a, counter := newFixture(t)
	_, err := a.Authenticate(context.Background(), "active@example.com", strings.Repeat("x", MaxPasswordLength+1))
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, ReasonOversized, reasonOf(t, err))
	assert.Equal(t, 0, counter.total())
}

func TestAuthenticateLengthCountsCharacters(t *testing.T) {
	a, counter := newFixture(t)
	// 1024 multi-byte characters are within the limit
	_, err := a.Authenticate(context.Background(), "active@example.com", strings.Repeat("é", MaxPasswordLength))
	assert.Equal(t, ReasonBadPassword, reasonOf(t, err))
	assert.Equal(t, 1, counter.total())
}

func TestAuthenticateLookupFailureIsNotCredentialsError(t *testing.T) {
	bh, err := NewBcryptHasher(4)
	require.NoError(t, err)
	boom := errors.New("connection refused")
	a := NewAuthenticator(&stubUsers{err: boom}, bh)

	_, err = a.Authenticate(context.Background(), "active@example.com", "pw")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestBcryptHasherRejectsOversizedHash(t *testing.T) {
	bh, err := NewBcryptHasher(4)
	require.NoError(t, err)
	_, err = bh.Hash(strings.Repeat("x", MaxPasswordLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
