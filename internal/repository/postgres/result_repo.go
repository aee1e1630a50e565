package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

const resultOrder = "completed_at DESC, id DESC"

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Create сохраняет результат; процент пересчитывается хуком BeforeSave
func (r *ResultRepo) Create(ctx context.Context, result *entity.Result) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// ListByStudent возвращает все результаты студента
func (r *ResultRepo) ListByStudent(ctx context.Context, studentID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).Order(resultOrder).Find(&results).Error
	return results, err
}

// ListByStudents возвращает все результаты набора студентов
func (r *ResultRepo) ListByStudents(ctx context.Context, studentIDs []uint) ([]entity.Result, error) {
	var results []entity.Result
	if len(studentIDs) == 0 {
		return results, nil
	}
	err := r.db.WithContext(ctx).Where("student_id IN ?", studentIDs).Order(resultOrder).Find(&results).Error
	return results, err
}

// ListByActivity возвращает все результаты по активности
func (r *ResultRepo) ListByActivity(ctx context.Context, activityID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.WithContext(ctx).Where("activity_id = ?", activityID).Order(resultOrder).Find(&results).Error
	return results, err
}

// ListByActivities возвращает все результаты по набору активностей
func (r *ResultRepo) ListByActivities(ctx context.Context, activityIDs []uint) ([]entity.Result, error) {
	var results []entity.Result
	if len(activityIDs) == 0 {
		return results, nil
	}
	err := r.db.WithContext(ctx).Where("activity_id IN ?", activityIDs).Order(resultOrder).Find(&results).Error
	return results, err
}

// CountByStudentAndActivity возвращает число сохраненных попыток студента по активности
func (r *ResultRepo) CountByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Result{}).
		Where("student_id = ? AND activity_id = ?", studentID, activityID).
		Count(&count).Error
	return count, err
}

// DeleteByStudentAndActivity удаляет предыдущие попытки студента по активности
func (r *ResultRepo) DeleteByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND activity_id = ?", studentID, activityID).
		Delete(&entity.Result{})
	return result.RowsAffected, result.Error
}

// DeleteByStudent удаляет все результаты студента
func (r *ResultRepo) DeleteByStudent(ctx context.Context, studentID uint) error {
	return r.db.WithContext(ctx).Where("student_id = ?", studentID).Delete(&entity.Result{}).Error
}

// DeleteByActivityIDs удаляет все результаты указанных активностей
func (r *ResultRepo) DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error {
	if len(activityIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("activity_id IN ?", activityIDs).Delete(&entity.Result{}).Error
}
