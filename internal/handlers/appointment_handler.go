package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crownbraids/salon-scheduler/internal/dto"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/httpresp"
	"github.com/crownbraids/salon-scheduler/internal/payments"
	ucAppointment "github.com/crownbraids/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	get          *ucAppointment.GetAppointment
	listHistory  *ucAppointment.ListHistory
	listDay      *ucAppointment.ListDay
	updateStatus *ucAppointment.UpdateStatus
	cancel       *ucAppointment.CancelAppointment

	deposits *payments.DepositLinker
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	get *ucAppointment.GetAppointment,
	listHistory *ucAppointment.ListHistory,
	listDay *ucAppointment.ListDay,
	updateStatus *ucAppointment.UpdateStatus,
	cancel *ucAppointment.CancelAppointment,
	deposits *payments.DepositLinker,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		get:          get,
		listHistory:  listHistory,
		listDay:      listDay,
		updateStatus: updateStatus,
		cancel:       cancel,
		deposits:     deposits,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	BraiderID   string `json:"braider_id" binding:"required"`
	BraiderName string `json:"braider_name"`

	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"time_slot" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`

	ServiceName  string `json:"service_name"`
	ServicePrice int    `json:"service_price"`
	Notes        string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (guest allowed)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BraiderID:   req.BraiderID,
		BraiderName: req.BraiderName,

		Date:     req.Date,
		TimeSlot: req.TimeSlot,

		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,

		ServiceName:  req.ServiceName,
		ServicePrice: req.ServicePrice,
		Notes:        req.Notes,

		Actor: actorFromContext(c),
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func filtersFromQuery(c *gin.Context) ucAppointment.ListFilters {
	return ucAppointment.ListFilters{
		Status:    c.Query("status"),
		Date:      c.Query("date"),
		BraiderID: c.Query("braider_id"),
	}
}

// ListHistory returns the caller-visible bookings newest first.
func (h *AppointmentHandler) ListHistory(c *gin.Context) {
	aps, err := h.listHistory.Execute(c.Request.Context(), actorFromContext(c), filtersFromQuery(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ListDay returns a chronological calendar day; date is required.
func (h *AppointmentHandler) ListDay(c *gin.Context) {
	aps, err := h.listDay.Execute(c.Request.Context(), actorFromContext(c), filtersFromQuery(c))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// GET
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE STATUS (staff)
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Target status is required.")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), actorFromContext(c), id, req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DEPOSIT PAYMENT LINK
// ======================================================

func (h *AppointmentHandler) PaymentLink(c *gin.Context) {
	if h.deposits == nil {
		httperr.Unavailable(c, "payments_disabled", "Deposit payments are not configured.")
		return
	}

	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	link, err := h.deposits.LinkFor(c.Request.Context(), ap)
	if err != nil {
		if httperr.IsBusiness(err, "no_deposit_required") {
			writeBusinessError(c, err)
			return
		}
		httperr.Unavailable(c, "payment_provider_error", "Could not create payment link.")
		return
	}

	httpresp.OK(c, gin.H{
		"payment_link": link,
		"deposit":      payments.DepositAmount(ap.ServicePrice),
	})
}
