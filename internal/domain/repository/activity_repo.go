package repository

import (
	"context"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// ActivityRepository определяет методы для работы с активностями
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByID(ctx context.Context, id uint) (*entity.Activity, error)
	ListActive(ctx context.Context) ([]entity.Activity, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]entity.Activity, error)
	ListIDsByTeacher(ctx context.Context, teacherID uint) ([]uint, error)
	Count(ctx context.Context) (int64, error)
	// DeleteByTeacher удаляет активности преподавателя; вопросы удаляются каскадом FK,
	// результаты должны быть удалены заранее через ResultRepository
	DeleteByTeacher(ctx context.Context, teacherID uint) error
}
