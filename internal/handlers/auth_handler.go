package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/crownbraids/salon-scheduler/internal/config"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/models"
	ucIdentity "github.com/crownbraids/salon-scheduler/internal/usecase/identity"
)

const tokenLifetime = 7 * 24 * time.Hour

type AuthHandler struct {
	register     *ucIdentity.Register
	authenticate *ucIdentity.Authenticate
	config       *config.Config
}

func NewAuthHandler(
	register *ucIdentity.Register,
	authenticate *ucIdentity.Authenticate,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		register:     register,
		authenticate: authenticate,
		config:       cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"`
}

// --------- Handlers ---------

// Register creates a client account. Staff accounts go through the admin
// surface only.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucIdentity.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     models.RoleClient,
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

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userView(user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.authenticate.Execute(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not issue session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":                  userView(user),
		"token":                 token,
		"force_password_change": user.ForcePasswordChange,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"role":      user.Role,
		"braiderId": user.BraiderID,
		"exp":       time.Now().Add(tokenLifetime).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userView(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"username":   user.Username,
		"phone":      user.Phone,
		"role":       user.Role,
		"location":   user.Location,
		"braider_id": user.BraiderID,
	}
}
