package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/internal/service/analytics"
)

// StrugglingStudentView — отстающий студент вместе с учетной записью
type StrugglingStudentView struct {
	Student entity.User
	Average float64
	Status  string
}

// TeacherDashboard — данные главной страницы преподавателя
type TeacherDashboard struct {
	Activities         []entity.Activity
	Overview           analytics.TeacherOverview
	StrugglingStudents []StrugglingStudentView
}

// StudentSummary — строка списка студентов преподавателя
type StudentSummary struct {
	Student          entity.User
	Average          float64
	TotalActivities  int
	PerformanceLevel string
}

// ActivityResultRow — результат с именем студента
type ActivityResultRow struct {
	Result      entity.Result
	StudentName string
}

// ActivityReport — статистика и результаты одной активности
type ActivityReport struct {
	Activity entity.Activity
	Stats    analytics.ActivityStats
	Results  []ActivityResultRow
}

// TeacherService собирает аналитику по активностям преподавателя
type TeacherService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	resultRepo   repository.ResultRepository
	logger       *zap.Logger
}

// NewTeacherService создает новый сервис преподавателя
func NewTeacherService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	resultRepo repository.ResultRepository,
	logger *zap.Logger,
) *TeacherService {
	return &TeacherService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		resultRepo:   resultRepo,
		logger:       logger,
	}
}

// teacherScope — активности преподавателя, результаты по ним и студенты с этими результатами
type teacherScope struct {
	activities []entity.Activity
	results    []entity.Result
	students   []entity.User
}

func (s *TeacherService) loadScope(ctx context.Context, teacherID uint) (*teacherScope, error) {
	activities, err := s.activityRepo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher activities: %w", err)
	}

	ids := make([]uint, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}

	scope := &teacherScope{activities: activities}
	if len(ids) == 0 {
		return scope, nil
	}

	scope.results, err = s.resultRepo.ListByActivities(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity results: %w", err)
	}

	studentIDs := analytics.DistinctStudentIDs(scope.results)
	if len(studentIDs) == 0 {
		return scope, nil
	}

	users, err := s.userRepo.GetByIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load students: %w", err)
	}
	for _, u := range users {
		if u.IsStudent() {
			scope.students = append(scope.students, u)
		}
	}
	return scope, nil
}

// strugglingAmong считает отстающих среди студентов по всем их результатам,
// а не только по активностям этого преподавателя
func (s *TeacherService) strugglingAmong(ctx context.Context, students []entity.User) ([]StrugglingStudentView, error) {
	if len(students) == 0 {
		return []StrugglingStudentView{}, nil
	}

	byID := make(map[uint]entity.User, len(students))
	ids := make([]uint, len(students))
	for i, u := range students {
		byID[u.ID] = u
		ids[i] = u.ID
	}

	allResults, err := s.resultRepo.ListByStudents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list student results: %w", err)
	}

	flagged := analytics.StrugglingStudents(analytics.GroupByStudent(allResults))
	views := make([]StrugglingStudentView, 0, len(flagged))
	for _, f := range flagged {
		views = append(views, StrugglingStudentView{
			Student: byID[f.StudentID],
			Average: f.Average,
			Status:  f.Status,
		})
	}
	return views, nil
}

// DetectStrugglingStudents возвращает студентов преподавателя со средним ниже порога
func (s *TeacherService) DetectStrugglingStudents(ctx context.Context, teacherID uint) ([]StrugglingStudentView, error) {
	scope, err := s.loadScope(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	return s.strugglingAmong(ctx, scope.students)
}

// Dashboard возвращает активности, сводку и отстающих студентов
func (s *TeacherService) Dashboard(ctx context.Context, teacherID uint) (*TeacherDashboard, error) {
	scope, err := s.loadScope(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	struggling, err := s.strugglingAmong(ctx, scope.students)
	if err != nil {
		return nil, err
	}

	return &TeacherDashboard{
		Activities:         scope.activities,
		Overview:           analytics.ComputeTeacherOverview(len(scope.activities), scope.results, len(struggling)),
		StrugglingStudents: struggling,
	}, nil
}

// Students возвращает по каждому студенту преподавателя общий средний процент
// и число его результатов по активностям этого преподавателя
func (s *TeacherService) Students(ctx context.Context, teacherID uint) ([]StudentSummary, error) {
	scope, err := s.loadScope(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if len(scope.students) == 0 {
		return []StudentSummary{}, nil
	}

	ids := make([]uint, len(scope.students))
	for i, u := range scope.students {
		ids[i] = u.ID
	}
	allResults, err := s.resultRepo.ListByStudents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list student results: %w", err)
	}
	overall := analytics.GroupByStudent(allResults)
	local := analytics.GroupByStudent(scope.results)

	summaries := make([]StudentSummary, 0, len(scope.students))
	for _, student := range scope.students {
		avg, level := analytics.StudentPerformance(overall[student.ID])
		summaries = append(summaries, StudentSummary{
			Student:          student,
			Average:          avg,
			TotalActivities:  len(local[student.ID]),
			PerformanceLevel: level,
		})
	}
	return summaries, nil
}

// ActivityReport возвращает статистику и результаты активности; только для автора
func (s *TeacherService) ActivityReport(ctx context.Context, teacherID, activityID uint) (*ActivityReport, error) {
	activity, err := s.activityRepo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !activity.IsOwnedBy(teacherID) {
		return nil, fmt.Errorf("%w: activity %d belongs to another teacher", apperrors.ErrForbidden, activityID)
	}

	results, err := s.resultRepo.ListByActivity(ctx, activityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity results: %w", err)
	}

	names := make(map[uint]string)
	if ids := analytics.DistinctStudentIDs(results); len(ids) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load students: %w", err)
		}
		for _, u := range users {
			names[u.ID] = u.Username
		}
	}

	rows := make([]ActivityResultRow, len(results))
	for i, r := range results {
		rows[i] = ActivityResultRow{Result: r, StudentName: names[r.StudentID]}
	}

	return &ActivityReport{
		Activity: *activity,
		Stats:    analytics.ComputeActivityStats(results),
		Results:  rows,
	}, nil
}
