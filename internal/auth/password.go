package auth

import "crypto/subtle"

// ComparePassword reports whether the supplied password matches the stored secret.
func ComparePassword(stored, plain string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}
