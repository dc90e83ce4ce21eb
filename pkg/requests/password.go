package requests

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
)

// SaltLength is the salt size used by the broker's password hashing modules.
const SaltLength = 4

// HashAlgorithm selects the broker password hashing module.
type HashAlgorithm int

const (
	// SHA256 matches rabbit_password_hashing_sha256, the broker default.
	SHA256 HashAlgorithm = iota
	// SHA512 matches rabbit_password_hashing_sha512.
	SHA512
)

// HashPassword returns a salted SHA-256 hash suitable for UserParams.PasswordHash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return SaltedPasswordHash(SHA256, salt, password)
}

// SaltedPasswordHash computes base64(salt ++ H(salt ++ password)).
func SaltedPasswordHash(alg HashAlgorithm, salt []byte, password string) (string, error) {
	var h hash.Hash
	switch alg {
	case SHA256:
		h = sha256.New()
	case SHA512:
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm %d", alg)
	}
	h.Write(salt)
	h.Write([]byte(password))

	out := make([]byte, 0, len(salt)+h.Size())
	out = append(out, salt...)
	out = h.Sum(out)
	return base64.StdEncoding.EncodeToString(out), nil
}
