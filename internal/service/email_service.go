package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

const maxSendAttempts = 3

// EmailService отправляет транзакционные письма
type EmailService interface {
	SendWelcome(ctx context.Context, toEmail, username string) error
}

// NoopEmailService используется, когда отправка писем не настроена
type NoopEmailService struct {
	logger *zap.Logger
}

func NewNoopEmailService(logger *zap.Logger) *NoopEmailService {
	return &NoopEmailService{logger: logger}
}

func (s *NoopEmailService) SendWelcome(ctx context.Context, toEmail, username string) error {
	s.logger.Debug("Welcome email skipped, mail is not configured",
		zap.String("to", toEmail), zap.String("username", username))
	return nil
}

// ResendEmailService отправляет письма через Resend REST API
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendWelcome отправляет приветственное письмо после регистрации.
// Ограничение частоты и временные сетевые ошибки повторяются до трех раз.
func (s *ResendEmailService) SendWelcome(ctx context.Context, toEmail, username string) error {
	if toEmail == "" {
		return fmt.Errorf("toEmail is required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "Welcome to EduQuiz",
		Text:    fmt.Sprintf("Hi %s, your EduQuiz account is ready. Log in to start your first activity.", username),
		Html:    fmt.Sprintf("<p>Hi <strong>%s</strong>,</p><p>Your EduQuiz account is ready. Log in to start your first activity.</p>", username),
	}
	options := &resend.SendEmailOptions{IdempotencyKey: "welcome-" + strings.ToLower(toEmail)}

	var lastErr error
	for attempt := 0; attempt < maxSendAttempts; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
		if err == nil {
			return nil
		}
		lastErr = err

		wait, retry := resendRetryDelay(err, attempt)
		if !retry {
			return fmt.Errorf("resend send failed: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

// resendRetryDelay решает, стоит ли повторять отправку и сколько ждать
func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
