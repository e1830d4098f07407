package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashSecret turns a plaintext secret into a salted bcrypt hash. This and
// CompareSecret are the only places the module touches plaintext secrets;
// every write path for the secret column goes through here first.
func HashSecret(secret string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CompareSecret checks a candidate secret against a stored hash, using the
// salt and cost embedded in the hash. Returns nil on match.
func CompareSecret(hash, secret string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(secret))
}
