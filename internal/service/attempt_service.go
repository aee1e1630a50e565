package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

// AttemptConfig задает поведение попыток
type AttemptConfig struct {
	// OverwritePrevious удаляет прежние результаты студента по активности перед сохранением нового
	OverwritePrevious bool
	// StartTTL ограничивает хранение времени начала попытки; 0 означает без срока
	StartTTL time.Duration
}

// AttemptService проводит студента через прохождение активности и подсчет баллов
type AttemptService struct {
	activityRepo repository.ActivityRepository
	questionRepo repository.QuestionRepository
	clock        repository.AttemptClockRepository
	tx           repository.Transactor
	config       AttemptConfig
	now          func() time.Time
	logger       *zap.Logger
}

// NewAttemptService создает новый сервис попыток
func NewAttemptService(
	activityRepo repository.ActivityRepository,
	questionRepo repository.QuestionRepository,
	clock repository.AttemptClockRepository,
	tx repository.Transactor,
	config AttemptConfig,
	logger *zap.Logger,
) *AttemptService {
	if config.StartTTL < 0 {
		config.StartTTL = 0
	}
	return &AttemptService{
		activityRepo: activityRepo,
		questionRepo: questionRepo,
		clock:        clock,
		tx:           tx,
		config:       config,
		now:          time.Now,
		logger:       logger,
	}
}

// ScoreAnswers суммирует баллы: max — сумма баллов всех вопросов, score — сумма
// баллов вопросов с верным ответом. Вопросы без ответа дают 0.
func ScoreAnswers(questions []entity.Question, answers map[uint]string) (score, maxScore float64) {
	for _, q := range questions {
		maxScore += float64(q.Points)
		if answer, ok := answers[q.ID]; ok && q.IsCorrect(answer) {
			score += float64(q.Points)
		}
	}
	return score, maxScore
}

// Start открывает активность для студента и запоминает серверное время начала.
// Возвращает активность и ее вопросы.
func (s *AttemptService) Start(ctx context.Context, studentID, activityID uint) (*entity.Activity, []entity.Question, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, nil, err
	}

	questions, err := s.questionRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load questions: %w", err)
	}

	start := entity.AttemptStart{ActivityID: activityID, StartedAt: s.now().UTC()}
	if err := s.clock.SetStart(ctx, studentID, start, s.config.StartTTL); err != nil {
		return nil, nil, fmt.Errorf("failed to record attempt start: %w", err)
	}

	return activity, questions, nil
}

// startedAt возвращает время начала попытки; если его нет или оно записано
// для другой активности, попытка считается начатой сейчас.
func (s *AttemptService) startedAt(ctx context.Context, studentID, activityID uint, now time.Time) time.Time {
	start, err := s.clock.GetStart(ctx, studentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Failed to read attempt start, assuming zero duration",
				zap.Uint("student_id", studentID), zap.Error(err))
		}
		return now
	}
	if start.ActivityID != activityID {
		return now
	}
	return start.StartedAt
}

// elapsedSeconds возвращает целые секунды между start и now без верхней границы.
// Старт в будущем (расхождение часов между инстансами) дает 0.
func elapsedSeconds(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	return int(now.Sub(start) / time.Second)
}

// Submit оценивает ответы и сохраняет результат. Загрузка вопросов, подсчет
// номера попытки и запись результата выполняются в одной транзакции.
func (s *AttemptService) Submit(ctx context.Context, studentID, activityID uint, answers map[uint]string) (*entity.Result, error) {
	now := s.now().UTC()
	startedAt := s.startedAt(ctx, studentID, activityID, now)
	timeSpent := elapsedSeconds(startedAt, now)

	var result *entity.Result
	err := s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Activities.GetByID(ctx, activityID); err != nil {
			return err
		}

		questions, err := repos.Questions.ListByActivity(ctx, activityID)
		if err != nil {
			return fmt.Errorf("failed to load questions: %w", err)
		}
		score, maxScore := ScoreAnswers(questions, answers)

		previous, err := repos.Results.CountByStudentAndActivity(ctx, studentID, activityID)
		if err != nil {
			return fmt.Errorf("failed to count previous attempts: %w", err)
		}

		if s.config.OverwritePrevious && previous > 0 {
			if _, err := repos.Results.DeleteByStudentAndActivity(ctx, studentID, activityID); err != nil {
				return fmt.Errorf("failed to delete previous attempts: %w", err)
			}
		}

		result = &entity.Result{
			StudentID:   studentID,
			ActivityID:  activityID,
			Score:       score,
			MaxScore:    maxScore,
			TimeSpent:   &timeSpent,
			Attempts:    int(previous) + 1,
			CompletedAt: now,
		}
		result.Recalculate()

		if err := repos.Results.Create(ctx, result); err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.clock.Clear(ctx, studentID); err != nil {
		s.logger.Warn("Failed to clear attempt start", zap.Uint("student_id", studentID), zap.Error(err))
	}

	s.logger.Info("Activity submitted",
		zap.Uint("student_id", studentID),
		zap.Uint("activity_id", activityID),
		zap.Float64("score", result.Score),
		zap.Float64("max_score", result.MaxScore),
		zap.Int("attempt", result.Attempts),
	)
	return result, nil
}
