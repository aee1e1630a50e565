package repository

import (
	"context"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// ResultRepository определяет методы для работы с результатами.
// Все списки упорядочены по completed_at по убыванию.
type ResultRepository interface {
	Create(ctx context.Context, result *entity.Result) error
	ListByStudent(ctx context.Context, studentID uint) ([]entity.Result, error)
	ListByStudents(ctx context.Context, studentIDs []uint) ([]entity.Result, error)
	ListByActivity(ctx context.Context, activityID uint) ([]entity.Result, error)
	ListByActivities(ctx context.Context, activityIDs []uint) ([]entity.Result, error)
	CountByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error)
	DeleteByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error)
	DeleteByStudent(ctx context.Context, studentID uint) error
	DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error
}
