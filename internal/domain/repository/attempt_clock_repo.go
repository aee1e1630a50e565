package repository

import (
	"context"
	"time"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// AttemptClockRepository хранит время начала текущей попытки студента.
// На пользователя хранится одна запись, каждый новый старт ее перезаписывает.
type AttemptClockRepository interface {
	SetStart(ctx context.Context, studentID uint, start entity.AttemptStart, ttl time.Duration) error
	// GetStart возвращает apperrors.ErrNotFound, если запись отсутствует или истекла
	GetStart(ctx context.Context, studentID uint) (*entity.AttemptStart, error)
	Clear(ctx context.Context, studentID uint) error
}
