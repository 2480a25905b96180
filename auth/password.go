// auth/password.go
package auth

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength bounds submitted secrets, counted in characters.
// Longer input is refused before it reaches the hashing primitive.
const MaxPasswordLength = 1024

const decoyPlaceholder = "quill-decoy-password-placeholder"

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
	// VerifyDecoy spends the same work as Verify against a fixed hash.
	VerifyDecoy(plain string)
}

type BcryptHasher struct {
	cost      int
	decoyHash []byte
}

var _ PasswordHasher = &BcryptHasher{}

func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	decoy, err := bcrypt.GenerateFromPassword([]byte(decoyPlaceholder), cost)
	if err != nil {
		return nil, err
	}
	return &BcryptHasher{cost: cost, decoyHash: decoy}, nil
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	if ExceedsMaxLength(plain) {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch err {
	case nil:
		return true, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, err
	}
}

func (h *BcryptHasher) VerifyDecoy(plain string) {
	_ = bcrypt.CompareHashAndPassword(h.decoyHash, []byte(plain))
}

// ExceedsMaxLength reports whether s is longer than MaxPasswordLength characters.
func ExceedsMaxLength(s string) bool {
	// a string of n bytes has at most n runes
	if len(s) <= MaxPasswordLength {
		return false
	}
	return utf8.RuneCountInString(s) > MaxPasswordLength
}
