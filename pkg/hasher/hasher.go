// Package hasher turns plaintext passwords into opaque stored blobs and
// verifies them later. The facade treats the blob as opaque; nothing outside
// this package depends on the algorithm.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the credential-hashing collaborator used by the facade.
type Hasher interface {
	// Hash turns a plaintext password into an opaque blob safe to store.
	Hash(plaintext string) (string, error)
	// Verify reports whether the plaintext matches the stored blob.
	Verify(plaintext, blob string) bool
}

// Bcrypt implements Hasher with golang.org/x/crypto/bcrypt.
type Bcrypt struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

// NewBcrypt returns a bcrypt hasher with the given cost; cost <= 0 falls back
// to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{Cost: cost}
}

// Hash derives a bcrypt blob from the plaintext.
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.Cost)
	if err != nil {
		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(out), nil
}

// Verify reports whether the plaintext matches the blob.
func (b *Bcrypt) Verify(plaintext, blob string) bool {
	return bcrypt.CompareHashAndPassword([]byte(blob), []byte(plaintext)) == nil
}
