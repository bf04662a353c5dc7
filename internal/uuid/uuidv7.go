// Package uuid generates and validates the UUID strings used as primary keys.
package uuid

import googleuuid "github.com/google/uuid"

// New generates a new UUIDv7 string. UUIDv7 is time-ordered and suitable
// for use as a database primary key. Falls back to UUIDv4 if the system
// random source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
