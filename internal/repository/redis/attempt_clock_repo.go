package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

// AttemptClockRepo реализует repository.AttemptClockRepository в Redis
type AttemptClockRepo struct {
	client redis.UniversalClient
}

// NewAttemptClockRepo создает репозиторий времени начала попыток
func NewAttemptClockRepo(client redis.UniversalClient) (*AttemptClockRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for AttemptClockRepo")
	}
	return &AttemptClockRepo{client: client}, nil
}

func attemptStartKey(studentID uint) string {
	return fmt.Sprintf("attempt:start:%d", studentID)
}

// SetStart сохраняет время начала попытки, перезаписывая предыдущее.
// ttl 0 хранит запись без срока.
func (r *AttemptClockRepo) SetStart(ctx context.Context, studentID uint, start entity.AttemptStart, ttl time.Duration) error {
	data, err := json.Marshal(start)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, attemptStartKey(studentID), data, ttl).Err()
}

// GetStart возвращает время начала текущей попытки
func (r *AttemptClockRepo) GetStart(ctx context.Context, studentID uint) (*entity.AttemptStart, error) {
	data, err := r.client.Get(ctx, attemptStartKey(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	var start entity.AttemptStart
	if err := json.Unmarshal(data, &start); err != nil {
		return nil, fmt.Errorf("corrupted attempt start for student %d: %w", studentID, err)
	}
	return &start, nil
}

// Clear удаляет запись о начале попытки
func (r *AttemptClockRepo) Clear(ctx context.Context, studentID uint) error {
	return r.client.Del(ctx, attemptStartKey(studentID)).Err()
}
