package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

const welcomeMailTimeout = 10 * time.Second

// SessionIssuer выпускает подписанные токены сессии
type SessionIssuer interface {
	Issue(userID uint, username, role string) (string, time.Time, error)
}

// RegisterInput — данные формы регистрации
type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3,max=80"`
	Email           string `json:"email" validate:"required,email,max=120"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required,oneof=student teacher"`
}

// LoginResult — результат успешного входа
type LoginResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// AuthService отвечает за регистрацию и аутентификацию пользователей
type AuthService struct {
	userRepo repository.UserRepository
	sessions SessionIssuer
	mailer   EmailService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewAuthService создает новый сервис аутентификации
func NewAuthService(
	userRepo repository.UserRepository,
	sessions SessionIssuer,
	mailer EmailService,
	logger *zap.Logger,
) (*AuthService, error) {
	if userRepo == nil || sessions == nil {
		return nil, fmt.Errorf("user repository and session issuer are required for AuthService")
	}
	if mailer == nil {
		mailer = NewNoopEmailService(logger)
	}
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
		mailer:   mailer,
		validate: newValidator(),
		logger:   logger,
	}, nil
}

// Register создает нового студента или преподавателя.
// Повторный username или email — ошибка валидации, пользователь не создается.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)

	if err := validateInput(s.validate, input); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, input.Username, input.Email); err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password, // хешируется в BeforeSave
		Role:     input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			// гонка с параллельной регистрацией, уникальный индекс сработал в БД
			return nil, fmt.Errorf("%w: username or email is already registered", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered",
		zap.Uint("user_id", user.ID), zap.String("username", user.Username), zap.String("role", user.Role))
	s.sendWelcome(ctx, user)

	return user, nil
}

func (s *AuthService) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("%w: username is already taken, please choose another", apperrors.ErrValidation)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return fmt.Errorf("%w: email is already registered", apperrors.ErrValidation)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email: %w", err)
	}
	return nil
}

// sendWelcome отправляет письмо без влияния на исход регистрации
func (s *AuthService) sendWelcome(ctx context.Context, user *entity.User) {
	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeMailTimeout)
	defer cancel()
	if err := s.mailer.SendWelcome(mailCtx, user.Email, user.Username); err != nil {
		s.logger.Warn("Failed to send welcome email", zap.Uint("user_id", user.ID), zap.Error(err))
	}
}

// Authenticate проверяет имя и пароль. Неизвестный пользователь и неверный
// пароль неотличимы для вызывающего.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if !user.CheckPassword(password) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// Login аутентифицирует пользователя и выпускает токен сессии
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.sessions.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}

	s.logger.Info("User logged in", zap.Uint("user_id", user.ID), zap.String("role", user.Role))
	return &LoginResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
