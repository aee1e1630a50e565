package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.False(t, isUniqueViolation(nil))
}

func TestMapNotFound(t *testing.T) {
	assert.ErrorIs(t, mapNotFound(gorm.ErrRecordNotFound), apperrors.ErrNotFound)

	other := errors.New("connection reset")
	assert.Equal(t, other, mapNotFound(other))
}
