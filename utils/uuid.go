package utils

import "github.com/google/uuid"

// GenerateUUID returns a new random (version 4) UUID in its canonical
// 36-character textual form.
func GenerateUUID() string {
	return uuid.NewString()
}
