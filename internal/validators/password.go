package validators

import "unicode"

const MinPasswordLength = 10

// PasswordIsStrong applies the staff password rule: at least 10 characters
// with at least one letter and one digit.
func PasswordIsStrong(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	return hasLetter && hasDigit
}
