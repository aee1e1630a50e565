package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCorrect_CaseInsensitive(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		ActivityID:    1,
		QuestionText:  "What is the value of x in 2x + 5 = 13?",
		OptionA:       "x = 3",
		OptionB:       "x = 4",
		OptionC:       "x = 5",
		OptionD:       "x = 6",
		CorrectAnswer: "b",
		Points:        2,
	}

	// Act & Assert
	assert.True(t, question.IsCorrect("b"))
	assert.True(t, question.IsCorrect("B"))
	assert.False(t, question.IsCorrect("a"))
	assert.False(t, question.IsCorrect(""), "отсутствующий ответ не засчитывается")
	assert.False(t, question.IsCorrect(" b"), "ответ сравнивается без нормализации пробелов")
}

func TestQuestion_Option(t *testing.T) {
	question := &Question{OptionA: "A1", OptionB: "B1", OptionC: "C1", OptionD: "D1"}

	text, ok := question.Option("C")
	assert.True(t, ok)
	assert.Equal(t, "C1", text)

	_, ok = question.Option("e")
	assert.False(t, ok)
}

func TestIsValidAnswerTag(t *testing.T) {
	for _, tag := range []string{"a", "b", "c", "d", "A", "D"} {
		assert.True(t, IsValidAnswerTag(tag), tag)
	}
	for _, tag := range []string{"", "e", "ab", "1"} {
		assert.False(t, IsValidAnswerTag(tag), tag)
	}
}
