package entity

import "github.com/google/uuid"

// UniqueName returns prefix followed by a random suffix, for entities that
// are spawned many times from one template.
func UniqueName(prefix string) string {
	id := uuid.NewString()
	return prefix + "-" + id[:8]
}
