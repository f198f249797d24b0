// Package password derives and verifies salted password hashes with Argon2id.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dtroode/tasktracker-server/internal/model"
)

var _ model.PasswordHasher = (*Argon2)(nil)

// Params contains Argon2id cost parameters.
type Params struct {
	Time    uint32
	MemKiB  uint32
	Par     uint8
	KeyLen  uint32
	SaltLen int
}

var encoding = base64.RawStdEncoding

// Argon2 hashes passwords with a caller-provided, base64-encoded salt.
type Argon2 struct {
	params Params
}

// NewArgon2 creates an Argon2id hasher with the given parameters.
func NewArgon2(params Params) *Argon2 {
	return &Argon2{params: params}
}

// GenerateSalt returns SaltLen fresh random bytes, base64-encoded.
func (a *Argon2) GenerateSalt() string {
	salt := make([]byte, a.params.SaltLen)
	// crypto/rand.Read never returns an error and always fills the buffer.
	_, _ = rand.Read(salt)
	return encoding.EncodeToString(salt)
}

// Hash derives the password hash for salt. The same inputs always produce the
// same output.
func (a *Argon2) Hash(password, salt string) (string, error) {
	key, err := a.derive(password, salt)
	if err != nil {
		return "", err
	}
	return encoding.EncodeToString(key), nil
}

// Verify recomputes the hash and compares it with expectedHash in constant time.
func (a *Argon2) Verify(password, salt, expectedHash string) bool {
	expected, err := encoding.DecodeString(expectedHash)
	if err != nil {
		return false
	}

	key, err := a.derive(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(key, expected) == 1
}

func (a *Argon2) derive(password, salt string) ([]byte, error) {
	rawSalt, err := encoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}
	return argon2.IDKey([]byte(password), rawSalt, a.params.Time, a.params.MemKiB, a.params.Par, a.params.KeyLen), nil
}
