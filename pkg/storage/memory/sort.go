package memory

import (
	"sort"
	"time"
)

// creationKey orders entities by creation time, breaking ties on the textual
// id so ListAll results are stable across calls.
type creationKey struct {
	at time.Time
	id string
}

func (k creationKey) less(other creationKey) bool {
	if !k.at.Equal(other.at) {
		return k.at.Before(other.at)
	}

	return k.id < other.id
}

func sortByCreation[T any](items []T, key func(T) creationKey) {
	sort.Slice(items, func(i, j int) bool {
		return key(items[i]).less(key(items[j]))
	})
}
