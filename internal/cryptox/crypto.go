// Package cryptox holds the key derivation used to encode stored credentials.
package cryptox

import (
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing any of them invalidates every stored credential.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	keyLen       = 32
)

// DeriveKey runs Argon2id over password with the given salt.
// The same inputs always produce the same key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, keyLen)
}

// DeriveKeyHex is DeriveKey encoded as lowercase hex, suitable for a TEXT column.
func DeriveKeyHex(password []byte, salt []byte) string {
	return hex.EncodeToString(DeriveKey(password, salt))
}
