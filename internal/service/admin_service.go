package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

const recentUsersLimit = 10

// AdminDashboard — сводка для администратора
type AdminDashboard struct {
	TotalUsers      int64
	TotalStudents   int64
	TotalTeachers   int64
	TotalActivities int64
	RecentUsers     []entity.User
}

// AdminService управляет пользователями
type AdminService struct {
	userRepo     repository.UserRepository
	activityRepo repository.ActivityRepository
	tx           repository.Transactor
	logger       *zap.Logger
}

// NewAdminService создает новый сервис администратора
func NewAdminService(
	userRepo repository.UserRepository,
	activityRepo repository.ActivityRepository,
	tx repository.Transactor,
	logger *zap.Logger,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		tx:           tx,
		logger:       logger,
	}
}

// Dashboard возвращает счетчики пользователей и активностей и последних зарегистрированных
func (s *AdminService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	totalUsers, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalStudents, err := s.userRepo.CountByRole(ctx, entity.RoleStudent)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}
	totalTeachers, err := s.userRepo.CountByRole(ctx, entity.RoleTeacher)
	if err != nil {
		return nil, fmt.Errorf("failed to count teachers: %w", err)
	}
	totalActivities, err := s.activityRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count activities: %w", err)
	}
	recent, err := s.userRepo.ListRecent(ctx, recentUsersLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}

	return &AdminDashboard{
		TotalUsers:      totalUsers,
		TotalStudents:   totalStudents,
		TotalTeachers:   totalTeachers,
		TotalActivities: totalActivities,
		RecentUsers:     recent,
	}, nil
}

// ListUsers возвращает всех пользователей по возрастанию ID
func (s *AdminService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// DeleteUser удаляет пользователя вместе с его результатами и созданными им
// активностями (их вопросами и результатами) в одной транзакции.
// Администратор не может удалить самого себя.
func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID uint) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.ID == actorID {
		return nil, apperrors.ErrSelfDeletion
	}

	err = s.tx.WithinTransaction(ctx, func(repos repository.Repositories) error {
		activityIDs, err := repos.Activities.ListIDsByTeacher(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to list authored activities: %w", err)
		}
		if err := repos.Results.DeleteByActivityIDs(ctx, activityIDs); err != nil {
			return fmt.Errorf("failed to delete results of authored activities: %w", err)
		}
		if err := repos.Questions.DeleteByActivityIDs(ctx, activityIDs); err != nil {
			return fmt.Errorf("failed to delete questions of authored activities: %w", err)
		}
		if err := repos.Activities.DeleteByTeacher(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to delete authored activities: %w", err)
		}
		if err := repos.Results.DeleteByStudent(ctx, user.ID); err != nil {
			return fmt.Errorf("failed to delete user results: %w", err)
		}
		return repos.Users.Delete(ctx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User deleted",
		zap.Uint("user_id", user.ID), zap.String("username", user.Username), zap.Uint("deleted_by", actorID))
	return user, nil
}
