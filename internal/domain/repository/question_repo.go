package repository

import (
	"context"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	ListByActivity(ctx context.Context, activityID uint) ([]entity.Question, error)
	DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error
}
