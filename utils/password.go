package utils

import (
	"fmt"
	"unicode/utf8"

	"github.com/matthewhartstonge/argon2"
)

// MinPasswordLength applies to registration and password changes.
const MinPasswordLength = 6

var passwordConfig = argon2.DefaultConfig()

func PasswordLongEnough(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// HashPassword returns an encoded argon2id hash carrying its own salt and
// parameters.
func HashPassword(password string) (string, error) {
	encoded, err := passwordConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches encodedHash. An account
// without a stored hash never matches.
func VerifyPassword(encodedHash, password string) (bool, error) {
	if encodedHash == "" {
		return false, nil
	}
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, fmt.Errorf("verify password: %w", err)
	}
	return ok, nil
}
