package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
)

// GenerateRandomKey returns the JWT signing key: JWT_SECRET when set,
// otherwise a fresh random key (tokens then die with the process).
func GenerateRandomKey() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		Logger.Fatal("Failed to generate JWT key")
	}
	return hex.EncodeToString(b)
}
