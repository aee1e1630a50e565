package entity

import (
	"time"

	"gorm.io/gorm"
)

// Result хранит итог одной попытки прохождения активности
type Result struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StudentID   uint      `gorm:"not null;index" json:"student_id"`
	ActivityID  uint      `gorm:"not null;index" json:"activity_id"`
	Score       float64   `gorm:"not null;default:0" json:"score"`
	MaxScore    float64   `gorm:"not null;default:0" json:"max_score"`
	Percentage  float64   `gorm:"not null;default:0" json:"percentage"`
	TimeSpent   *int      `json:"time_spent,omitempty"` // секунды, NULL если неизвестно
	Attempts    int       `gorm:"not null;default:1" json:"attempts"`
	CompletedAt time.Time `gorm:"not null;index" json:"completed_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}

// CalculatePercentage возвращает score/maxScore*100, либо 0 при maxScore <= 0
func CalculatePercentage(score, maxScore float64) float64 {
	if maxScore <= 0 {
		return 0
	}
	return score / maxScore * 100
}

// Recalculate пересчитывает процент из набранных и максимальных баллов
func (r *Result) Recalculate() {
	r.Percentage = CalculatePercentage(r.Score, r.MaxScore)
}

// BeforeSave гарантирует, что процент всегда выводится из баллов
func (r *Result) BeforeSave(tx *gorm.DB) error {
	r.Recalculate()
	return nil
}

// HasTimeSpent сообщает, известна ли длительность попытки
func (r *Result) HasTimeSpent() bool {
	return r.TimeSpent != nil
}
