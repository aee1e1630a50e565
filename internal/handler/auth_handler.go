package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/handler/dto"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	"github.com/yourusername/eduquiz-api/internal/middleware"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/internal/service"
)

// SessionCookie описывает cookie, в которой хранится токен сессии
type SessionCookie struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler обрабатывает регистрацию, вход и выход
type AuthHandler struct {
	authService *service.AuthService
	cookie      SessionCookie
	logger      *zap.Logger
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService, cookie SessionCookie, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
		logger:      logger,
	}
}

// RegisterRequest — данные формы регистрации (JSON или form-urlencoded)
type RegisterRequest struct {
	Username        string `json:"username" form:"username"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"password" form:"password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Role            string `json:"role" form:"role"`
}

// LoginRequest — данные формы входа
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Next     string `json:"next" form:"next"`
}

// DashboardPath возвращает главную страницу роли
func DashboardPath(role string) string {
	switch role {
	case entity.RoleStudent:
		return "/student/dashboard"
	case entity.RoleTeacher:
		return "/teacher/dashboard"
	case entity.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/login"
	}
}

// safeNext допускает только локальные пути вида "/..."
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	return next
}

// Index отдает приветствие анониму или перенаправляет пользователя на его дашборд
// GET /
func (h *AuthHandler) Index(c *gin.Context) {
	if identity, ok := middleware.CurrentIdentity(c); ok {
		helper.Redirect(c, DashboardPath(identity.Role), helper.FlashInfo, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to EduQuiz",
		"links": gin.H{
			"login":    "/login",
			"register": "/register",
		},
	})
}

// RegisterForm описывает поля формы регистрации
// GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	if _, ok := middleware.CurrentIdentity(c); ok {
		helper.Redirect(c, "/", helper.FlashInfo, "")
		return
	}
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: "/register",
		Method: http.MethodPost,
		Fields: []dto.FormField{
			{Name: "username", Type: "text", Required: true},
			{Name: "email", Type: "email", Required: true},
			{Name: "password", Type: "password", Required: true},
			{Name: "confirm_password", Type: "password", Required: true},
			{Name: "role", Type: "select", Required: true, Options: []string{entity.RoleStudent, entity.RoleTeacher}},
		},
	})
}

// Register создает учетную запись и отправляет на страницу входа
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := middleware.CurrentIdentity(c); ok {
		helper.Redirect(c, "/", helper.FlashInfo, "")
		return
	}

	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            req.Role,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	helper.Redirect(c, "/login", helper.FlashSuccess,
		fmt.Sprintf("Account created successfully for %s!", user.Username))
}

// LoginForm описывает поля формы входа
// GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if _, ok := middleware.CurrentIdentity(c); ok {
		helper.Redirect(c, "/", helper.FlashInfo, "")
		return
	}
	action := "/login"
	if next := safeNext(c.Query("next")); next != "" {
		action = "/login?next=" + url.QueryEscape(next)
	}
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: action,
		Method: http.MethodPost,
		Fields: []dto.FormField{
			{Name: "username", Type: "text", Required: true},
			{Name: "password", Type: "password", Required: true},
		},
	})
}

// Login проверяет учетные данные и устанавливает cookie сессии
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	if _, ok := middleware.CurrentIdentity(c); ok {
		helper.Redirect(c, "/", helper.FlashInfo, "")
		return
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		handleError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, result.Token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)

	location := safeNext(c.Query("next"))
	if location == "" {
		location = safeNext(req.Next)
	}
	if location == "" {
		location = DashboardPath(result.User.Role)
	}
	helper.Redirect(c, location, helper.FlashSuccess, fmt.Sprintf("Welcome %s!", result.User.Username))
}

// Logout удаляет cookie сессии
// GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	helper.Redirect(c, "/", helper.FlashInfo, "You have been logged out")
}
