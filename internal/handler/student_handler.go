package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/handler/dto"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	"github.com/yourusername/eduquiz-api/internal/service"
)

const answerFieldPrefix = "question_"

// StudentHandler обрабатывает запросы студентов
type StudentHandler struct {
	studentService *service.StudentService
	attemptService *service.AttemptService
	logger         *zap.Logger
}

// NewStudentHandler создает новый обработчик студентов
func NewStudentHandler(
	studentService *service.StudentService,
	attemptService *service.AttemptService,
	logger *zap.Logger,
) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
		attemptService: attemptService,
		logger:         logger,
	}
}

// SubmitAnswersRequest — ответы в JSON: {"answers": {"<question_id>": "b"}}
type SubmitAnswersRequest struct {
	Answers map[string]string `json:"answers"`
}

// Dashboard отдает активности и персональную статистику студента
// GET /student/dashboard
func (h *StudentHandler) Dashboard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	dashboard, err := h.studentService.Dashboard(c.Request.Context(), identity.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStudentDashboardResponse(dashboard))
}

// StartActivity открывает активность и запускает отсчет времени
// GET /student/activity/:id
func (h *StudentHandler) StartActivity(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	activityID := c.MustGet("activityID").(uint)

	activity, questions, err := h.attemptService.Start(c.Request.Context(), identity.UserID, activityID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttemptResponse{
		Activity:  dto.NewActivityResponse(activity),
		Questions: dto.NewQuestionResponses(questions),
	})
}

// SubmitActivity оценивает ответы и сохраняет результат
// POST /student/activity/:id
func (h *StudentHandler) SubmitActivity(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	activityID := c.MustGet("activityID").(uint)

	answers, err := parseAnswers(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	result, err := h.attemptService.Submit(c.Request.Context(), identity.UserID, activityID, answers)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	helper.Redirect(c, "/student/dashboard", helper.FlashSuccess, fmt.Sprintf(
		"Activity completed! You scored %s/%s points (%.1f%%)",
		strconv.FormatFloat(result.Score, 'f', -1, 64),
		strconv.FormatFloat(result.MaxScore, 'f', -1, 64),
		result.Percentage,
	))
}

// parseAnswers читает ответы из JSON или из полей формы question_<id>.
// Ключи, не являющиеся идентификаторами вопросов, пропускаются.
func parseAnswers(c *gin.Context) (map[uint]string, error) {
	raw := make(map[string]string)

	if c.ContentType() == gin.MIMEJSON {
		var req SubmitAnswersRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		raw = req.Answers
	} else {
		if err := c.Request.ParseForm(); err != nil {
			return nil, err
		}
		for key, values := range c.Request.PostForm {
			if !strings.HasPrefix(key, answerFieldPrefix) || len(values) == 0 {
				continue
			}
			raw[strings.TrimPrefix(key, answerFieldPrefix)] = values[0]
		}
	}

	answers := make(map[uint]string, len(raw))
	for key, value := range raw {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		answers[uint(id)] = strings.TrimSpace(value)
	}
	return answers, nil
}
