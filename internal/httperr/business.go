package httperr

import "errors"

// BusinessError carries a stable machine-readable code across the usecase
// boundary. Handlers map codes to HTTP statuses.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code from a BusinessError, or "" when err is not
// one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}

// Codes shared between usecases and handlers.
const (
	CodeSlotTaken          = "slot_taken"
	CodeInvalidStatus      = "invalid_status"
	CodeInvalidTransition  = "invalid_transition"
	CodeInsufficientPoints = "insufficient_points"
	CodeNotFound           = "not_found"
	CodeForbidden          = "forbidden"
	CodeInvalidDateOrTime  = "invalid_date_or_time"
	CodeWeakPassword       = "weak_password"
	CodeEmailTaken         = "email_taken"
	CodeUsernameTaken      = "username_taken"
	CodeInvalidCredentials = "invalid_credentials"
	CodePasswordRequired   = "password_required"
)
