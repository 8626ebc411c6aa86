// Package id generates identifiers for new records.
package id

import "github.com/google/uuid"

// New returns a collision-resistant identifier for a fresh record. The value
// combines a wall-clock component with a random component (UUIDv7), so ids
// created in sequence sort roughly by creation time. Uniqueness is
// probabilistic; no registry is consulted.
func New() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
