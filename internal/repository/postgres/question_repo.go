package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

// ListByActivity возвращает вопросы активности в порядке добавления
func (r *QuestionRepo) ListByActivity(ctx context.Context, activityID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}

// DeleteByActivityIDs удаляет вопросы указанных активностей
func (r *QuestionRepo) DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error {
	if len(activityIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("activity_id IN ?", activityIDs).Delete(&entity.Question{}).Error
}
