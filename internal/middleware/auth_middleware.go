package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/pkg/auth"
)

const identityKey = "identity"

// MsgPermissionDenied — предупреждение при попытке открыть чужой раздел
const MsgPermissionDenied = "You do not have permission to access this page"

// MsgLoginRequired — сообщение при обращении анонима к закрытой странице
const MsgLoginRequired = "Please log in to access this page"

// Identity — аутентифицированный пользователь текущего запроса
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// SessionParser проверяет сессионный токен
type SessionParser interface {
	Parse(token string) (*auth.SessionClaims, error)
}

// AuthMiddleware восстанавливает личность пользователя из сессии и проверяет роли
type AuthMiddleware struct {
	sessions   SessionParser
	users      repository.UserRepository
	cookieName string
	logger     *zap.Logger
}

// NewAuthMiddleware создает middleware аутентификации.
// Если users не nil, пользователь из токена сверяется с базой и роль берется оттуда.
func NewAuthMiddleware(sessions SessionParser, users repository.UserRepository, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		sessions:   sessions,
		users:      users,
		cookieName: cookieName,
		logger:     logger,
	}
}

// SetIdentity сохраняет личность в контексте запроса
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity возвращает личность текущего запроса
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// tokenFromRequest берет токен из cookie, затем из заголовка Authorization: Bearer
func (m *AuthMiddleware) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// LoadIdentity разбирает сессию, если она есть. Запрос без сессии или с
// недействительной сессией продолжает обработку как анонимный.
func (m *AuthMiddleware) LoadIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.sessions.Parse(token)
		if err != nil {
			m.logger.Debug("Ignoring invalid session", zap.Error(err))
			c.Next()
			return
		}

		identity := Identity{UserID: claims.UserID, Username: claims.Username, Role: claims.Role}

		if m.users != nil {
			user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				// Учетная запись удалена, сессия больше не действует
				c.Next()
				return
			case err != nil:
				m.logger.Error("Failed to load session user", zap.Uint("user_id", claims.UserID), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				return
			}
			identity.Username = user.Username
			identity.Role = user.Role
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// RequireAuth перенаправляет анонимных пользователей на страницу входа
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			location := "/login?next=" + url.QueryEscape(c.Request.URL.RequestURI())
			helper.Redirect(c, location, helper.FlashInfo, MsgLoginRequired)
			return
		}
		c.Next()
	}
}

// RequireRole пропускает только пользователей с указанной ролью,
// остальных перенаправляет на главную с предупреждением
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok || identity.Role != role {
			helper.Deny(c, "/", MsgPermissionDenied)
			return
		}
		c.Next()
	}
}
