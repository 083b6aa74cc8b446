package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crownbraids/salon-scheduler/internal/timeslot"
	ucAppointment "github.com/crownbraids/salon-scheduler/internal/usecase/appointment"
)

type PublicHandler struct {
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(availability *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{availability: availability}
}

// Availability returns the free slot labels for a braider on a day.
func (h *PublicHandler) Availability(c *gin.Context) {
	braiderID := c.Query("braider_id")
	date := c.Query("date")

	slots, err := h.availability.Execute(c.Request.Context(), braiderID, date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"braider_id": braiderID,
		"date":       date,
		"slots":      slots,
	})
}

// Slots returns the canonical bookable grid.
func (h *PublicHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"slots": timeslot.DaySlots()})
}
