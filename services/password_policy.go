package services

import (
	"fmt"
	"strings"
)

// commonPasswords are rejected for admin accounts regardless of length
var commonPasswords = map[string]bool{
	"secure123":   true,
	"password":    true,
	"password1":   true,
	"password123": true,
	"12345678":    true,
	"123456789":   true,
	"qwertyuiop":  true,
	"admin123":    true,
	"adminadmin":  true,
	"iloveyou":    true,
}

// ValidatePassword checks an admin password:
// - At least MinPasswordLength characters
// - Not made of a single repeated character
// - Not a well-known password
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}

	if strings.Count(password, password[:1]) == len(password) {
		return fmt.Errorf("password must not repeat a single character")
	}

	if commonPasswords[strings.ToLower(password)] {
		return fmt.Errorf("password is too common")
	}

	return nil
}
