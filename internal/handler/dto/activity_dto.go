package dto

import (
	"time"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// ActivityResponse — активность в ответе клиенту
type ActivityResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Difficulty    string    `json:"difficulty"`
	Subject       string    `json:"subject"`
	TeacherID     uint      `json:"teacher_id"`
	IsActive      bool      `json:"is_active"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewActivityResponse преобразует активность в ответ
func NewActivityResponse(a *entity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		Difficulty:    a.Difficulty,
		Subject:       a.Subject,
		TeacherID:     a.TeacherID,
		IsActive:      a.IsActive,
		QuestionCount: len(a.Questions),
		CreatedAt:     a.CreatedAt,
	}
}

// NewActivityResponses преобразует список активностей
func NewActivityResponses(activities []entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(activities))
	for i := range activities {
		out[i] = NewActivityResponse(&activities[i])
	}
	return out
}

// OptionResponse — вариант ответа с меткой a-d
type OptionResponse struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// QuestionResponse — вопрос для студента, без правильного ответа
type QuestionResponse struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	Options      []OptionResponse `json:"options"`
	Points       int              `json:"points"`
}

// AuthoredQuestionResponse — вопрос для автора активности, с правильным ответом
type AuthoredQuestionResponse struct {
	QuestionResponse
	CorrectAnswer string `json:"correct_answer"`
}

func options(q *entity.Question) []OptionResponse {
	out := make([]OptionResponse, 0, len(entity.AnswerTags))
	for _, tag := range entity.AnswerTags {
		text, _ := q.Option(tag)
		out = append(out, OptionResponse{Tag: tag, Text: text})
	}
	return out
}

// NewQuestionResponses преобразует вопросы для прохождения
func NewQuestionResponses(questions []entity.Question) []QuestionResponse {
	out := make([]QuestionResponse, len(questions))
	for i := range questions {
		q := &questions[i]
		out[i] = QuestionResponse{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      options(q),
			Points:       q.Points,
		}
	}
	return out
}

// NewAuthoredQuestionResponses преобразует вопросы для владельца активности
func NewAuthoredQuestionResponses(questions []entity.Question) []AuthoredQuestionResponse {
	base := NewQuestionResponses(questions)
	out := make([]AuthoredQuestionResponse, len(questions))
	for i := range questions {
		out[i] = AuthoredQuestionResponse{QuestionResponse: base[i], CorrectAnswer: questions[i].CorrectAnswer}
	}
	return out
}

// AttemptResponse — активность, открытая для прохождения
type AttemptResponse struct {
	Activity  ActivityResponse   `json:"activity"`
	Questions []QuestionResponse `json:"questions"`
}

// ResultResponse — результат прохождения
type ResultResponse struct {
	ID          uint      `json:"id"`
	StudentID   uint      `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	ActivityID  uint      `json:"activity_id"`
	Score       float64   `json:"score"`
	MaxScore    float64   `json:"max_score"`
	Percentage  float64   `json:"percentage"`
	TimeSpent   *int      `json:"time_spent"`
	Attempts    int       `json:"attempts"`
	CompletedAt time.Time `json:"completed_at"`
}

// NewResultResponse преобразует результат, округляя процент
func NewResultResponse(r *entity.Result, studentName string) ResultResponse {
	return ResultResponse{
		ID:          r.ID,
		StudentID:   r.StudentID,
		StudentName: studentName,
		ActivityID:  r.ActivityID,
		Score:       r.Score,
		MaxScore:    r.MaxScore,
		Percentage:  Round2(r.Percentage),
		TimeSpent:   r.TimeSpent,
		Attempts:    r.Attempts,
		CompletedAt: r.CompletedAt,
	}
}
