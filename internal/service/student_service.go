package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	"github.com/yourusername/eduquiz-api/internal/service/analytics"
)

// StudentDashboard — данные главной страницы студента
type StudentDashboard struct {
	Activities           []entity.Activity
	CompletedActivityIDs []uint
	Average              float64
	PerformanceLevel     string
	Recommendations      []string
	SuggestedDifficulty  string
	TotalCompleted       int
}

// StudentService собирает персональную статистику студента
type StudentService struct {
	activityRepo repository.ActivityRepository
	resultRepo   repository.ResultRepository
	logger       *zap.Logger
}

// NewStudentService создает новый сервис студента
func NewStudentService(
	activityRepo repository.ActivityRepository,
	resultRepo repository.ResultRepository,
	logger *zap.Logger,
) *StudentService {
	return &StudentService{
		activityRepo: activityRepo,
		resultRepo:   resultRepo,
		logger:       logger,
	}
}

// Dashboard возвращает активные активности и аналитику по результатам студента
func (s *StudentService) Dashboard(ctx context.Context, studentID uint) (*StudentDashboard, error) {
	activities, err := s.activityRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	results, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	avg, level := analytics.StudentPerformance(results)
	return &StudentDashboard{
		Activities:           activities,
		CompletedActivityIDs: completedActivityIDs(results),
		Average:              avg,
		PerformanceLevel:     level,
		Recommendations:      analytics.Recommendations(results),
		SuggestedDifficulty:  analytics.SuggestDifficulty(results),
		TotalCompleted:       len(results),
	}, nil
}

func completedActivityIDs(results []entity.Result) []uint {
	seen := make(map[uint]struct{}, len(results))
	ids := make([]uint, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.ActivityID]; ok {
			continue
		}
		seen[r.ActivityID] = struct{}{}
		ids = append(ids, r.ActivityID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
