package utils

import (
	"crypto/sha512"
	"encoding/base64"
)

// HashPassword digests the raw UTF-8 password with SHA-512 and renders it as
// standard base64. The format is frozen: it must match the digests already
// stored by the legacy desktop client, otherwise existing users could no
// longer log in.
func HashPassword(password string) string {
	sum := sha512.Sum512([]byte(password))
	return base64.StdEncoding.EncodeToString(sum[:])
}
