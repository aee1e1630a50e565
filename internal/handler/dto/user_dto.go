package dto

import (
	"time"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// UserResponse — пользователь в ответе клиенту, без хеша пароля
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse преобразует пользователя в ответ
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserResponses преобразует список пользователей
func NewUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = NewUserResponse(&users[i])
	}
	return out
}

// AdminDashboardResponse — сводка администратора
type AdminDashboardResponse struct {
	TotalUsers      int64          `json:"total_users"`
	TotalStudents   int64          `json:"total_students"`
	TotalTeachers   int64          `json:"total_teachers"`
	TotalActivities int64          `json:"total_activities"`
	RecentUsers     []UserResponse `json:"recent_users"`
}

// FormField описывает поле формы для клиента
type FormField struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// FormResponse описывает форму, которую клиент должен отправить
type FormResponse struct {
	Action string      `json:"action"`
	Method string      `json:"method"`
	Fields []FormField `json:"fields"`
}
