package password

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/bcrypt"
)

// cost 10 keeps parity with the hashes already in the Users table
const hashCost = bcrypt.DefaultCost

// Hash runs the plaintext through bcrypt. bcrypt draws a fresh random salt
// on every call, so two hashes of the same plaintext never match.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), hashCost)
	if err != nil {
		return "", errors.Wrap(err, "Failed to hash password")
	}

	return string(digest), nil
}

// Compare reports whether the plaintext matches the stored digest.
func Compare(plaintext string, digest string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	return err == nil
}
