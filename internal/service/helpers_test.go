package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

func init() {
	entity.PasswordHashCost = bcrypt.MinCost
}

// MockEmailService реализует EmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, toEmail, username string) error {
	args := m.Called(ctx, toEmail, username)
	return args.Error(0)
}

// stubIssuer выпускает предсказуемый токен
type stubIssuer struct {
	err error
}

func (s stubIssuer) Issue(userID uint, username, role string) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "token-for-" + username, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

func hashedUser(t testing.TB, id uint, username, password, role string) *entity.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return &entity.User{ID: id, Username: username, Email: username + "@example.com", Password: string(hash), Role: role}
}
