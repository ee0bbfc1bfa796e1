package facade

import (
	"stays/pkg/hasher"
	"stays/pkg/storage"
)

// facade is the concrete implementation of the Facade interface. It is
// written against the storage contract only and works unmodified with either
// backend. Repositories and collaborators are injected at construction; there
// is no package-level state.
type facade struct {
	// storage is the persistence layer holding all four entity collections.
	storage storage.Storage
	// hasher turns plaintext passwords into opaque stored blobs.
	hasher hasher.Hasher
}

// New creates a new Facade backed by the provided storage and credential
// hasher.
func New(storage storage.Storage, hasher hasher.Hasher) Facade {
	return &facade{
		storage: storage,
		hasher:  hasher,
	}
}
