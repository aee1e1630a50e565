package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivity_IsOwnedBy(t *testing.T) {
	activity := &Activity{ID: 3, TeacherID: 2}

	assert.True(t, activity.IsOwnedBy(2))
	assert.False(t, activity.IsOwnedBy(3))
}

func TestIsValidDifficulty(t *testing.T) {
	assert.True(t, IsValidDifficulty(DifficultyEasy))
	assert.True(t, IsValidDifficulty(DifficultyMedium))
	assert.True(t, IsValidDifficulty(DifficultyHard))
	assert.False(t, IsValidDifficulty("extreme"))
	assert.False(t, IsValidDifficulty(""))
}
