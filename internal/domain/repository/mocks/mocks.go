// Package mocks содержит testify-моки репозиториев для тестов сервисов и обработчиков.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
)

// ============================================================================
// UserRepository
// ============================================================================

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]entity.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) ListRecent(ctx context.Context, limit int) ([]entity.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ============================================================================
// ActivityRepository
// ============================================================================

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockActivityRepository) GetByID(ctx context.Context, id uint) (*entity.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListActive(ctx context.Context) ([]entity.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListByTeacher(ctx context.Context, teacherID uint) ([]entity.Activity, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Activity), args.Error(1)
}

func (m *MockActivityRepository) ListIDsByTeacher(ctx context.Context, teacherID uint) ([]uint, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockActivityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) DeleteByTeacher(ctx context.Context, teacherID uint) error {
	args := m.Called(ctx, teacherID)
	return args.Error(0)
}

// ============================================================================
// QuestionRepository
// ============================================================================

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, question *entity.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuestionRepository) ListByActivity(ctx context.Context, activityID uint) ([]entity.Question, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Question), args.Error(1)
}

func (m *MockQuestionRepository) DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error {
	args := m.Called(ctx, activityIDs)
	return args.Error(0)
}

// ============================================================================
// ResultRepository
// ============================================================================

type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) Create(ctx context.Context, result *entity.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) ListByStudent(ctx context.Context, studentID uint) ([]entity.Result, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepository) ListByStudents(ctx context.Context, studentIDs []uint) ([]entity.Result, error) {
	args := m.Called(ctx, studentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepository) ListByActivity(ctx context.Context, activityID uint) ([]entity.Result, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepository) ListByActivities(ctx context.Context, activityIDs []uint) ([]entity.Result, error) {
	args := m.Called(ctx, activityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepository) CountByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error) {
	args := m.Called(ctx, studentID, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultRepository) DeleteByStudentAndActivity(ctx context.Context, studentID, activityID uint) (int64, error) {
	args := m.Called(ctx, studentID, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResultRepository) DeleteByStudent(ctx context.Context, studentID uint) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

func (m *MockResultRepository) DeleteByActivityIDs(ctx context.Context, activityIDs []uint) error {
	args := m.Called(ctx, activityIDs)
	return args.Error(0)
}

// ============================================================================
// AttemptClockRepository
// ============================================================================

type MockAttemptClockRepository struct {
	mock.Mock
}

func (m *MockAttemptClockRepository) SetStart(ctx context.Context, studentID uint, start entity.AttemptStart, ttl time.Duration) error {
	args := m.Called(ctx, studentID, start, ttl)
	return args.Error(0)
}

func (m *MockAttemptClockRepository) GetStart(ctx context.Context, studentID uint) (*entity.AttemptStart, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AttemptStart), args.Error(1)
}

func (m *MockAttemptClockRepository) Clear(ctx context.Context, studentID uint) error {
	args := m.Called(ctx, studentID)
	return args.Error(0)
}

// ============================================================================
// Transactor
// ============================================================================

// FakeTransactor передает в fn заранее заданные репозитории.
// Committed/RolledBack фиксируют исход последнего вызова.
type FakeTransactor struct {
	Repos      repository.Repositories
	Calls      int
	Committed  bool
	RolledBack bool
}

// NewFakeTransactor создает FakeTransactor поверх переданных моков
func NewFakeTransactor(users *MockUserRepository, activities *MockActivityRepository, questions *MockQuestionRepository, results *MockResultRepository) *FakeTransactor {
	return &FakeTransactor{Repos: repository.Repositories{
		Users:      users,
		Activities: activities,
		Questions:  questions,
		Results:    results,
	}}
}

func (t *FakeTransactor) WithinTransaction(ctx context.Context, fn func(repos repository.Repositories) error) error {
	t.Calls++
	if err := fn(t.Repos); err != nil {
		t.RolledBack = true
		t.Committed = false
		return err
	}
	t.Committed = true
	t.RolledBack = false
	return nil
}
