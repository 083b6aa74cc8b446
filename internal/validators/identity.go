package validators

import (
	"strings"

	"github.com/crownbraids/salon-scheduler/internal/models"
)

// FieldError points at the request field a caller has to fix.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validLocations = map[string]bool{"A": true, "B": true}

// ValidateIdentity applies the role-keyed field rules: staff accounts need a
// strong password and a location, client accounts need neither.
func ValidateIdentity(role, location, password string, hasPassword bool) []FieldError {
	var errs []FieldError

	switch role {
	case models.RoleClient, models.RoleEmployee, models.RoleAdmin:
	default:
		errs = append(errs, FieldError{Field: "role", Message: "must be client, employee or admin"})
		return errs
	}

	staff := role == models.RoleEmployee || role == models.RoleAdmin

	if staff {
		if !hasPassword {
			errs = append(errs, FieldError{Field: "password", Message: "required for staff accounts"})
		} else if !PasswordIsStrong(password) {
			errs = append(errs, FieldError{Field: "password", Message: "must be at least 10 characters with a letter and a digit"})
		}

		if !validLocations[location] {
			errs = append(errs, FieldError{Field: "location", Message: "must be A or B"})
		}
	} else if hasPassword && !PasswordIsStrong(password) {
		errs = append(errs, FieldError{Field: "password", Message: "must be at least 10 characters with a letter and a digit"})
	}

	return errs
}

// EmailLooksValid is a syntactic check only. Deliverability is the mail
// provider's problem, not the request path's.
func EmailLooksValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}
