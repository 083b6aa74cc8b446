package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	"github.com/crownbraids/salon-scheduler/internal/models"
	ucIdentity "github.com/crownbraids/salon-scheduler/internal/usecase/identity"
)

// ======================================================
// HANDLER
// ======================================================

type AdminUsersHandler struct {
	db       *gorm.DB
	register *ucIdentity.Register
	audit    *audit.Dispatcher
}

func NewAdminUsersHandler(
	db *gorm.DB,
	register *ucIdentity.Register,
	auditDispatcher *audit.Dispatcher,
) *AdminUsersHandler {
	return &AdminUsersHandler{
		db:       db,
		register: register,
		audit:    auditDispatcher,
	}
}

// tempPassword builds a random credential that satisfies the strength rule.
func tempPassword() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "reset-me-1234"
	}
	return "t1" + hex.EncodeToString(buf)
}

// ======================================================
// LIST
// ======================================================

func (h *AdminUsersHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}
	if location := c.Query("location"); location != "" {
		q = q.Where("location = ?", location)
	}

	var users []models.User
	if err := q.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Could not list accounts.")
		return
	}

	c.JSON(http.StatusOK, users)
}

// ======================================================
// CREATE
// ======================================================

type AdminCreateUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role" binding:"required"`
	Location  string `json:"location"`
	BraiderID string `json:"braider_id"`
}

func (h *AdminUsersHandler) Create(c *gin.Context) {
	adminID, _ := middleware.CallerID(c)

	var req AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// Provisioned staff without an explicit password get a temporary one
	// and must change it on first login.
	password := req.Password
	generated := ""
	force := false
	if password == "" && req.Role != models.RoleClient {
		generated = tempPassword()
		password = generated
		force = true
	}

	user, err := h.register.Execute(c.Request.Context(), ucIdentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
		Password: password,
		Role:     req.Role,
		Location: req.Location,

		ForcePasswordChange: force,
		BraiderID:           req.BraiderID,
	})
	if err != nil {
		var invalid ucIdentity.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error_code": "invalid_input",
				"fields":     invalid.Fields,
			})
			return
		}
		writeBusinessError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	resp := gin.H{"user": userView(user)}
	if generated != "" {
		resp["temporary_password"] = generated
	}
	c.JSON(http.StatusCreated, resp)
}

// ======================================================
// UPDATE
// ======================================================

type AdminUpdateUserRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	Location  *string `json:"location"`
	BraiderID *string `json:"braider_id"`
	IsActive  *bool   `json:"is_active"`
}

func (h *AdminUsersHandler) Update(c *gin.Context) {
	adminID, _ := middleware.CallerID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid account id.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid account data.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.BraiderID != nil {
		user.BraiderID = *req.BraiderID
	}
	if req.IsActive != nil {
		// Accounts are never deleted; deactivation ends their access.
		user.IsActive = *req.IsActive
	}

	if user.IsStaff() {
		if user.PasswordHash == "" {
			httperr.BadRequest(c, "password_required", "Staff accounts need a password; reset one first.")
			return
		}
		if user.Location != "A" && user.Location != "B" {
			httperr.BadRequest(c, "invalid_location", "Staff accounts need location A or B.")
			return
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Could not save account.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"user": userView(&user)})
}

// ======================================================
// RESET PASSWORD
// ======================================================

func (h *AdminUsersHandler) ResetPassword(c *gin.Context) {
	adminID, _ := middleware.CallerID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid account id.")
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Account not found.")
		return
	}

	generated := tempPassword()
	hashed, err := bcrypt.GenerateFromPassword([]byte(generated), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Could not reset password.")
		return
	}

	user.PasswordHash = string(hashed)
	user.ForcePasswordChange = true

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_reset_password", "Could not reset password.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "password_reset",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{"temporary_password": generated})
}
