package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/httpresp"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	ucRewards "github.com/crownbraids/salon-scheduler/internal/usecase/rewards"
)

// ======================================================
// HANDLER
// ======================================================

type RewardsHandler struct {
	balance *ucRewards.GetBalance
	redeem  *ucRewards.RedeemPoints
	adjust  *ucRewards.AdjustPoints
}

func NewRewardsHandler(
	balance *ucRewards.GetBalance,
	redeem *ucRewards.RedeemPoints,
	adjust *ucRewards.AdjustPoints,
) *RewardsHandler {
	return &RewardsHandler{
		balance: balance,
		redeem:  redeem,
		adjust:  adjust,
	}
}

func clientIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid client id.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// SELF VIEW (client)
// ======================================================

func (h *RewardsHandler) MyRewards(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	view, err := h.balance.Execute(c.Request.Context(), userID, c.Query("history") == "true")
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// CLIENT VIEW (staff)
// ======================================================

func (h *RewardsHandler) ClientRewards(c *gin.Context) {
	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	view, err := h.balance.Execute(c.Request.Context(), clientID, true)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// REDEEM (client)
// ======================================================

type RedeemRequest struct {
	Points int    `json:"points" binding:"required"`
	Reason string `json:"reason"`
}

func (h *RewardsHandler) Redeem(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Points are required.")
		return
	}

	reason := req.Reason
	if reason == "" {
		reason = "reward redemption"
	}

	entry, err := h.redeem.Execute(c.Request.Context(), userID, req.Points, reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, entry)
}

// ======================================================
// ADJUST (staff)
// ======================================================

type AdjustRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

func (h *RewardsHandler) Adjust(c *gin.Context) {
	staffID, _ := middleware.CallerID(c)

	clientID, ok := clientIDParam(c)
	if !ok {
		return
	}

	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Delta and reason are required.")
		return
	}

	entry, err := h.adjust.Execute(c.Request.Context(), staffID, clientID, req.Delta, req.Reason)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, entry)
}
