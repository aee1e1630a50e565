package repository

import (
	"context"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByIDs возвращает найденных пользователей, отсутствующие ID пропускаются
	GetByIDs(ctx context.Context, ids []uint) ([]entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListRecent(ctx context.Context, limit int) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	Delete(ctx context.Context, id uint) error
}
