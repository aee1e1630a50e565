package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yourusername/eduquiz-api/internal/config"
	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	pgRepo "github.com/yourusername/eduquiz-api/internal/repository/postgres"
	"github.com/yourusername/eduquiz-api/pkg/database"
	applogger "github.com/yourusername/eduquiz-api/pkg/logger"
)

// Заполняет базу демонстрационными пользователями, активностями и результатами.
// С -admin-only создает только администратора, если его еще нет.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	adminOnly := flag.Bool("admin-only", false, "create only the admin account")
	reset := flag.Bool("reset", false, "delete all existing data before seeding")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := applogger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), false)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	ctx := context.Background()

	if *reset {
		if err := db.WithContext(ctx).Exec("TRUNCATE results, questions, activities, users RESTART IDENTITY").Error; err != nil {
			logger.Fatal("Failed to reset data", zap.Error(err))
		}
		logger.Info("Existing data deleted")
	}

	if *adminOnly {
		if err := ensureAdmin(ctx, pgRepo.NewUserRepo(db), logger); err != nil {
			logger.Fatal("Failed to create admin", zap.Error(err))
		}
		fmt.Printf("\nAdmin credentials:\n  username: %s\n  password: %s\n", adminUser.username, adminUser.password)
		return
	}

	if err := seedDemo(ctx, db, logger); err != nil {
		logger.Fatal("Failed to seed demo data", zap.Error(err))
	}
	printCredentials()
}

func ensureAdmin(ctx context.Context, users repository.UserRepository, logger *zap.Logger) error {
	_, err := users.GetByUsername(ctx, adminUser.username)
	switch {
	case err == nil:
		logger.Info("Admin account already exists")
		return nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return err
	}

	admin := &entity.User{
		Username: adminUser.username,
		Email:    adminUser.email,
		Password: adminUser.password,
		Role:     adminUser.role,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info("Admin account created", zap.Uint("user_id", admin.ID))
	return nil
}

func seedDemo(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	count, err := pgRepo.NewUserRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("database already contains %d users, run with -reset to reseed", count)
	}

	return pgRepo.NewTransactor(db).WithinTransaction(ctx, func(repos repository.Repositories) error {
		usersByName := make(map[string]*entity.User)
		for _, u := range append([]seedUser{adminUser}, demoUsers...) {
			user := &entity.User{Username: u.username, Email: u.email, Password: u.password, Role: u.role}
			if err := repos.Users.Create(ctx, user); err != nil {
				return fmt.Errorf("create user %s: %w", u.username, err)
			}
			usersByName[u.username] = user
		}

		activities := make([]*entity.Activity, len(demoActivities))
		questionCount := 0
		for i, a := range demoActivities {
			activity := &entity.Activity{
				Title:       a.title,
				Description: a.description,
				Difficulty:  a.difficulty,
				Subject:     a.subject,
				TeacherID:   usersByName[a.teacher].ID,
				IsActive:    true,
			}
			if err := repos.Activities.Create(ctx, activity); err != nil {
				return fmt.Errorf("create activity %q: %w", a.title, err)
			}
			activities[i] = activity

			for _, q := range a.questions {
				question := &entity.Question{
					ActivityID:    activity.ID,
					QuestionText:  q.text,
					OptionA:       q.a,
					OptionB:       q.b,
					OptionC:       q.c,
					OptionD:       q.d,
					CorrectAnswer: q.correct,
					Points:        q.points,
				}
				if err := repos.Questions.Create(ctx, question); err != nil {
					return fmt.Errorf("create question for %q: %w", a.title, err)
				}
				questionCount++
			}
		}

		// Результаты разнесены по времени, чтобы порядок "последних" был детерминирован
		base := time.Now().UTC().Add(-time.Duration(len(demoResults)) * time.Hour)
		for i, r := range demoResults {
			timeSpent := r.timeSpent
			result := &entity.Result{
				StudentID:   usersByName[r.student].ID,
				ActivityID:  activities[r.activity].ID,
				Score:       r.score,
				MaxScore:    r.maxScore,
				TimeSpent:   &timeSpent,
				Attempts:    1,
				CompletedAt: base.Add(time.Duration(i) * time.Hour),
			}
			if err := repos.Results.Create(ctx, result); err != nil {
				return fmt.Errorf("create result for %s: %w", r.student, err)
			}
		}

		logger.Info("Demo data created",
			zap.Int("users", len(usersByName)),
			zap.Int("activities", len(activities)),
			zap.Int("questions", questionCount),
			zap.Int("results", len(demoResults)),
		)
		return nil
	})
}

func printCredentials() {
	fmt.Println("\nDemo credentials:")
	for _, u := range append([]seedUser{adminUser}, demoUsers...) {
		fmt.Printf("  %-8s %-18s %s\n", u.role, u.username, u.password)
	}
}
