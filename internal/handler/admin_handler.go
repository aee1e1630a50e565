package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/handler/dto"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/internal/service"
)

const adminUsersPath = "/admin/users"

// AdminHandler обрабатывает запросы администратора
type AdminHandler struct {
	adminService *service.AdminService
	logger       *zap.Logger
}

// NewAdminHandler создает новый обработчик администратора
func NewAdminHandler(adminService *service.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{adminService: adminService, logger: logger}
}

// Dashboard отдает сводку по пользователям и активностям
// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminService.Dashboard(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminDashboardResponse(dashboard))
}

// Users отдает всех пользователей
// GET /admin/users
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.NewUserResponses(users)})
}

// DeleteUser удаляет пользователя вместе с его данными
// POST /admin/user/:id/delete
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	userID := c.MustGet("userID").(uint)

	user, err := h.adminService.DeleteUser(c.Request.Context(), identity.UserID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSelfDeletion) {
			helper.Deny(c, adminUsersPath, "You cannot delete your own account")
			return
		}
		handleError(c, h.logger, err)
		return
	}

	helper.Redirect(c, adminUsersPath, helper.FlashSuccess, fmt.Sprintf("User %s deleted successfully", user.Username))
}
