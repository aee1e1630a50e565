package entity

import (
	"time"
)

// Уровни сложности активности
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Difficulties перечисляет допустимые уровни сложности в порядке возрастания
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Activity представляет учебную активность (тест) преподавателя
type Activity struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Difficulty  string     `gorm:"size:20;not null;default:'medium'" json:"difficulty"`
	Subject     string     `gorm:"size:100" json:"subject"`
	TeacherID   uint       `gorm:"not null;index" json:"teacher_id"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	Questions   []Question `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Activity) TableName() string {
	return "activities"
}

// IsOwnedBy сообщает, является ли преподаватель автором активности
func (a *Activity) IsOwnedBy(teacherID uint) bool {
	return a.TeacherID == teacherID
}

// IsValidDifficulty проверяет, что уровень сложности допустим
func IsValidDifficulty(difficulty string) bool {
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}
