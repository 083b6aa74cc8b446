package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	"github.com/crownbraids/salon-scheduler/internal/models"
	ucIdentity "github.com/crownbraids/salon-scheduler/internal/usecase/identity"
)

type MeHandler struct {
	db             *gorm.DB
	changePassword *ucIdentity.ChangePassword
}

func NewMeHandler(db *gorm.DB, changePassword *ucIdentity.ChangePassword) *MeHandler {
	return &MeHandler{db: db, changePassword: changePassword}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (h *MeHandler) UpdateProfile(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid profile data.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_profile", "Could not save profile.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	userID, _ := middleware.CallerID(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "New password is required.")
		return
	}

	if err := h.changePassword.Execute(
		c.Request.Context(),
		userID,
		req.CurrentPassword,
		req.NewPassword,
	); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "password_changed"})
}
