package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

// CreateActivityInput — данные формы создания активности
type CreateActivityInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	Subject     string `json:"subject" validate:"required,max=100"`
}

// AddQuestionInput — данные формы добавления вопроса
type AddQuestionInput struct {
	QuestionText  string `json:"question_text" validate:"required"`
	OptionA       string `json:"option_a" validate:"required,max=200"`
	OptionB       string `json:"option_b" validate:"required,max=200"`
	OptionC       string `json:"option_c" validate:"required,max=200"`
	OptionD       string `json:"option_d" validate:"required,max=200"`
	CorrectAnswer string `json:"correct_answer" validate:"required,oneof=a b c d"`
	Points        int    `json:"points" validate:"required,min=1"`
}

// ActivityService отвечает за создание активностей и вопросов
type ActivityService struct {
	activityRepo repository.ActivityRepository
	questionRepo repository.QuestionRepository
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewActivityService создает новый сервис активностей
func NewActivityService(
	activityRepo repository.ActivityRepository,
	questionRepo repository.QuestionRepository,
	logger *zap.Logger,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		questionRepo: questionRepo,
		validate:     newValidator(),
		logger:       logger,
	}
}

// CreateActivity создает активную активность, автор — teacherID
func (s *ActivityService) CreateActivity(ctx context.Context, teacherID uint, input CreateActivityInput) (*entity.Activity, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Difficulty = strings.ToLower(strings.TrimSpace(input.Difficulty))

	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	activity := &entity.Activity{
		Title:       input.Title,
		Description: input.Description,
		Difficulty:  input.Difficulty,
		Subject:     input.Subject,
		TeacherID:   teacherID,
		IsActive:    true,
	}
	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.logger.Info("Activity created",
		zap.Uint("activity_id", activity.ID), zap.Uint("teacher_id", teacherID), zap.String("title", activity.Title))
	return activity, nil
}

// GetActivity возвращает активность по ID
func (s *ActivityService) GetActivity(ctx context.Context, activityID uint) (*entity.Activity, error) {
	return s.activityRepo.GetByID(ctx, activityID)
}

// GetOwnedActivity возвращает активность, если teacherID — ее автор, иначе ErrForbidden
func (s *ActivityService) GetOwnedActivity(ctx context.Context, teacherID, activityID uint) (*entity.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !activity.IsOwnedBy(teacherID) {
		return nil, fmt.Errorf("%w: activity %d belongs to another teacher", apperrors.ErrForbidden, activityID)
	}
	return activity, nil
}

// GetActivityWithQuestions возвращает собственную активность преподавателя вместе с вопросами
func (s *ActivityService) GetActivityWithQuestions(ctx context.Context, teacherID, activityID uint) (*entity.Activity, error) {
	activity, err := s.GetOwnedActivity(ctx, teacherID, activityID)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	activity.Questions = questions
	return activity, nil
}

// AddQuestion добавляет вопрос в активность. Только автор активности может
// добавлять вопросы; при отказе ничего не сохраняется.
func (s *ActivityService) AddQuestion(ctx context.Context, teacherID, activityID uint, input AddQuestionInput) (*entity.Question, error) {
	if _, err := s.GetOwnedActivity(ctx, teacherID, activityID); err != nil {
		return nil, err
	}

	input.QuestionText = strings.TrimSpace(input.QuestionText)
	input.CorrectAnswer = strings.ToLower(strings.TrimSpace(input.CorrectAnswer))
	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	question := &entity.Question{
		ActivityID:    activityID,
		QuestionText:  input.QuestionText,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: input.CorrectAnswer,
		Points:        input.Points,
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info("Question added", zap.Uint("activity_id", activityID), zap.Uint("question_id", question.ID))
	return question, nil
}

// ListActive возвращает активности, доступные студентам
func (s *ActivityService) ListActive(ctx context.Context) ([]entity.Activity, error) {
	return s.activityRepo.ListActive(ctx)
}

// ListByTeacher возвращает активности преподавателя
func (s *ActivityService) ListByTeacher(ctx context.Context, teacherID uint) ([]entity.Activity, error) {
	return s.activityRepo.ListByTeacher(ctx, teacherID)
}
