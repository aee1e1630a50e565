package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttemptStartKey(t *testing.T) {
	assert.Equal(t, "attempt:start:42", attemptStartKey(42))
}

func TestNewAttemptClockRepo_RequiresClient(t *testing.T) {
	_, err := NewAttemptClockRepo(nil)
	assert.Error(t, err)
}
