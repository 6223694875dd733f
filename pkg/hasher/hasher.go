package hasher

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost 12 keeps hashing deliberately slow against offline brute force.
const BcryptCost = 12

type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
	IsHashed(value string) bool
}

type bcryptHasher struct {
	cost int
}

func NewHasher() Hasher {
	return &bcryptHasher{
		cost: BcryptCost,
	}
}

func (hasher *bcryptHasher) Hash(plaintext string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(plaintext), hasher.cost)
	if err != nil {
		return "", err
	}

	return string(hashedPassword), nil
}

// Verify returns false on any malformed hash instead of an error.
func (hasher *bcryptHasher) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	return err == nil
}

// IsHashed reports whether the value already carries the bcrypt format marker,
// so an update path never hashes an already-hashed value twice.
func (hasher *bcryptHasher) IsHashed(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
