package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/internal/domain/entity"
	"github.com/taskhub/go-task-manager/internal/interface/middleware"
	"github.com/taskhub/go-task-manager/pkg/helpers"
	"github.com/taskhub/go-task-manager/pkg/response"
	"github.com/taskhub/go-task-manager/pkg/validation"
)

// AuthHandler serves registration, login, logout, and the current-user probe.
// Successful register/login set the HTTP-only session cookie.
type AuthHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger, cookies *helpers.Manager) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}

	token, exp, err := h.Svc.IssueToken(u)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	h.Cookies.Set(c, token, exp)
	response.Success(c, http.StatusCreated, u, "registered")
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Logger.WithField("ip", c.GetString("real_ip")).Info("failed login attempt")
		writeServiceError(c, h.Logger, err)
		return
	}

	token, exp, err := h.Svc.IssueToken(u)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	h.Cookies.Set(c, token, exp)
	response.Success(c, http.StatusOK, u, "login successful")
}

// Logout POST /api/auth/logout
// Clears the cookie only; a previously issued token stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true}, "logged out")
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, u, "current user")
}
