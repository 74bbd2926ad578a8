package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken generates a random hex token of the specified length.
func GenerateRandomToken(length int) string {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return ""
	}
	return hex.EncodeToString(bytes)[:length]
}
