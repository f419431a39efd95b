// Package tool holds small helpers shared across services.
package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered UUID. Primary keys use it so
// index inserts stay append-mostly.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
