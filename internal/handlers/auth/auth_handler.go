// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "rentsmart-service/internal/domain/auth"
	"rentsmart-service/internal/middleware"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/response"
	service "rentsmart-service/internal/service/auth"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Login authenticates against the fixed identity table and returns the
// session token. A credential mismatch is a 401 with no session
// established.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "login failed", err)
			return
		}
		h.logger.Error("login fault", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "login failed", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout clears the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, ok := middleware.GetJTI(c)
	if !ok {
		response.Unauthorized(c, "no active session")
		return
	}
	if err := h.authService.Logout(c.Request.Context(), jti); err != nil {
		response.Error(c, http.StatusInternalServerError, "logout failed", err)
		return
	}
	response.Success(c, http.StatusOK, "logged out", nil)
}

// Me returns the resolved session identity.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, "no active session")
		return
	}
	response.Success(c, http.StatusOK, "session resolved", user)
}
