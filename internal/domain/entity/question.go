package entity

import (
	"strings"
)

// AnswerTags перечисляет метки вариантов ответа
var AnswerTags = []string{"a", "b", "c", "d"}

// Question представляет вопрос с четырьмя вариантами ответа
type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ActivityID    uint   `gorm:"not null;index" json:"activity_id"`
	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	OptionA       string `gorm:"size:200;not null" json:"option_a"`
	OptionB       string `gorm:"size:200;not null" json:"option_b"`
	OptionC       string `gorm:"size:200;not null" json:"option_c"`
	OptionD       string `gorm:"size:200;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"-"` // Скрыто от клиента
	Points        int    `gorm:"not null;default:1" json:"points"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsCorrect сравнивает ответ с правильной меткой без учета регистра.
// Пустой ответ всегда неверен.
func (q *Question) IsCorrect(answer string) bool {
	return answer != "" && strings.EqualFold(answer, q.CorrectAnswer)
}

// Option возвращает текст варианта по метке (a-d)
func (q *Question) Option(tag string) (string, bool) {
	switch strings.ToLower(tag) {
	case "a":
		return q.OptionA, true
	case "b":
		return q.OptionB, true
	case "c":
		return q.OptionC, true
	case "d":
		return q.OptionD, true
	}
	return "", false
}

// IsValidAnswerTag проверяет, что метка входит в множество a-d (без учета регистра)
func IsValidAnswerTag(tag string) bool {
	lower := strings.ToLower(tag)
	for _, t := range AnswerTags {
		if t == lower {
			return true
		}
	}
	return false
}
