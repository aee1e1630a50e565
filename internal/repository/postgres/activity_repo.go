package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// ActivityRepo реализует repository.ActivityRepository
type ActivityRepo struct {
	db *gorm.DB
}

// NewActivityRepo создает новый репозиторий активностей
func NewActivityRepo(db *gorm.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

// Create создает новую активность (без вопросов)
func (r *ActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Omit("Questions").Create(activity).Error
}

// GetByID возвращает активность по ID
func (r *ActivityRepo) GetByID(ctx context.Context, id uint) (*entity.Activity, error) {
	var activity entity.Activity
	if err := r.db.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &activity, nil
}

// ListActive возвращает все активные активности, новые первыми
func (r *ActivityRepo) ListActive(ctx context.Context) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&activities).Error
	return activities, err
}

// ListByTeacher возвращает активности преподавателя, новые первыми
func (r *ActivityRepo) ListByTeacher(ctx context.Context, teacherID uint) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC, id DESC").
		Find(&activities).Error
	return activities, err
}

// ListIDsByTeacher возвращает ID активностей преподавателя
func (r *ActivityRepo) ListIDsByTeacher(ctx context.Context, teacherID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.Activity{}).
		Where("teacher_id = ?", teacherID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// Count возвращает общее число активностей
func (r *ActivityRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Activity{}).Count(&count).Error
	return count, err
}

// DeleteByTeacher удаляет все активности преподавателя
func (r *ActivityRepo) DeleteByTeacher(ctx context.Context, teacherID uint) error {
	return r.db.WithContext(ctx).Where("teacher_id = ?", teacherID).Delete(&entity.Activity{}).Error
}
