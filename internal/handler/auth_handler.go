package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/radianceacademy/radiance-backend/internal/middleware"
	"github.com/radianceacademy/radiance-backend/internal/model"
	"github.com/radianceacademy/radiance-backend/internal/response"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

// AuthHandler handles admin authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/auth/login
// Validates email + password and returns the admin profile with a fresh token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	admin, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
		case errors.Is(err, service.ErrAccountDeactivated):
			response.Fail(c, http.StatusUnauthorized, response.MsgAccountDeactivated)
		default:
			response.Fail(c, http.StatusInternalServerError, "Server error during login")
		}
		return
	}

	response.OKWithMessage(c, "Login successful", gin.H{
		"token": token,
		"admin": admin,
	})
}

// Verify godoc
// GET /api/auth/verify
// Confirms the bearer token and returns the admin it resolves to.
func (h *AuthHandler) Verify(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgNoToken)
		return
	}
	response.OK(c, gin.H{"admin": admin})
}

// ChangePassword godoc
// PUT /api/auth/change-password
// Verifies the current password before storing the new one.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	admin := middleware.GetAdmin(c)
	if admin == nil {
		response.Fail(c, http.StatusUnauthorized, response.MsgNoToken)
		return
	}

	var req model.ChangePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithErrors(c, response.MsgValidationFailed, fields)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(), admin.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCurrentPasswd):
			response.Fail(c, http.StatusBadRequest, "Current password is incorrect")
		case errors.Is(err, service.ErrAdminNotFound):
			response.Fail(c, http.StatusUnauthorized, response.MsgAdminNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, "Server error while changing password")
		}
		return
	}

	response.OKWithMessage(c, "Password changed successfully", nil)
}
