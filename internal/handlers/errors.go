package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	ucAppointment "github.com/crownbraids/salon-scheduler/internal/usecase/appointment"
)

// writeBusinessError maps usecase error codes onto the transport. Anything
// without a mapping is an internal failure.
func writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case httperr.CodeSlotTaken:
		httperr.Conflict(c, code, "That time slot is already booked.")
	case httperr.CodeEmailTaken:
		httperr.Conflict(c, code, "Email is already registered.")
	case httperr.CodeUsernameTaken:
		httperr.Conflict(c, code, "Username is already taken.")
	case httperr.CodeInsufficientPoints:
		httperr.Unprocessable(c, code, "Not enough points.")
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, "Not found.")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "You do not have access to this resource.")
	case httperr.CodeInvalidCredentials:
		httperr.Unauthorized(c, code, "Invalid credentials.")
	case httperr.CodeInvalidStatus, httperr.CodeInvalidTransition,
		httperr.CodeInvalidDateOrTime, httperr.CodeWeakPassword,
		httperr.CodePasswordRequired:
		httperr.BadRequest(c, code, "Invalid request.")
	case "":
		if httperr.IsUnavailable(err) {
			httperr.Unavailable(c, "service_unavailable", "Service is temporarily unavailable, try again.")
			return
		}
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}

func actorFromContext(c *gin.Context) ucAppointment.Actor {
	id, ok := middleware.CallerID(c)
	if !ok {
		return ucAppointment.Actor{}
	}
	return ucAppointment.Actor{
		ID:            id,
		Role:          c.GetString(middleware.ContextUserRole),
		BraiderID:     c.GetString(middleware.ContextBraiderID),
		Authenticated: true,
	}
}
