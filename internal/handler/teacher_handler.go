package handler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/handler/dto"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/internal/service"
)

const teacherDashboardPath = "/teacher/dashboard"

// TeacherHandler обрабатывает запросы преподавателей
type TeacherHandler struct {
	activityService *service.ActivityService
	teacherService  *service.TeacherService
	logger          *zap.Logger
}

// NewTeacherHandler создает новый обработчик преподавателей
func NewTeacherHandler(
	activityService *service.ActivityService,
	teacherService *service.TeacherService,
	logger *zap.Logger,
) *TeacherHandler {
	return &TeacherHandler{
		activityService: activityService,
		teacherService:  teacherService,
		logger:          logger,
	}
}

// CreateActivityRequest — данные формы новой активности
type CreateActivityRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Difficulty  string `json:"difficulty" form:"difficulty"`
	Subject     string `json:"subject" form:"subject"`
}

// AddQuestionRequest — данные формы нового вопроса.
// В форме add_another считается включенным при любом непустом значении.
type AddQuestionRequest struct {
	QuestionText  string `json:"question_text" form:"question_text"`
	OptionA       string `json:"option_a" form:"option_a"`
	OptionB       string `json:"option_b" form:"option_b"`
	OptionC       string `json:"option_c" form:"option_c"`
	OptionD       string `json:"option_d" form:"option_d"`
	CorrectAnswer string `json:"correct_answer" form:"correct_answer"`
	Points        int    `json:"points" form:"points"`
	AddAnother    bool   `json:"add_another" form:"-"`
}

// Dashboard отдает активности преподавателя, сводку и отстающих студентов
// GET /teacher/dashboard
func (h *TeacherHandler) Dashboard(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	dashboard, err := h.teacherService.Dashboard(c.Request.Context(), identity.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTeacherDashboardResponse(dashboard))
}

// CreateActivityForm описывает поля формы новой активности
// GET /teacher/create_activity
func (h *TeacherHandler) CreateActivityForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.FormResponse{
		Action: "/teacher/create_activity",
		Method: http.MethodPost,
		Fields: []dto.FormField{
			{Name: "title", Type: "text", Required: true},
			{Name: "description", Type: "textarea"},
			{Name: "difficulty", Type: "select", Required: true, Options: entity.Difficulties},
			{Name: "subject", Type: "text", Required: true},
		},
	})
}

// CreateActivity создает активность и отправляет на добавление вопросов
// POST /teacher/create_activity
func (h *TeacherHandler) CreateActivity(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	var req CreateActivityRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), identity.UserID, service.CreateActivityInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Subject:     req.Subject,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	helper.Redirect(c, addQuestionsPath(activity.ID), helper.FlashSuccess,
		fmt.Sprintf("Activity %q created successfully!", activity.Title))
}

func addQuestionsPath(activityID uint) string {
	return fmt.Sprintf("/teacher/activity/%d/add_questions", activityID)
}

// AddQuestionsForm отдает активность, ее вопросы и поля формы вопроса
// GET /teacher/activity/:id/add_questions
func (h *TeacherHandler) AddQuestionsForm(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	activityID := c.MustGet("activityID").(uint)

	activity, err := h.activityService.GetActivityWithQuestions(c.Request.Context(), identity.UserID, activityID)
	if err != nil {
		h.handleOwnedError(c, err, "You do not have permission to edit this activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"activity":  dto.NewActivityResponse(activity),
		"questions": dto.NewAuthoredQuestionResponses(activity.Questions),
		"form": dto.FormResponse{
			Action: addQuestionsPath(activity.ID),
			Method: http.MethodPost,
			Fields: []dto.FormField{
				{Name: "question_text", Type: "textarea", Required: true},
				{Name: "option_a", Type: "text", Required: true},
				{Name: "option_b", Type: "text", Required: true},
				{Name: "option_c", Type: "text", Required: true},
				{Name: "option_d", Type: "text", Required: true},
				{Name: "correct_answer", Type: "select", Required: true, Options: entity.AnswerTags},
				{Name: "points", Type: "number", Required: true},
				{Name: "add_another", Type: "checkbox"},
			},
		},
	})
}

// AddQuestion добавляет вопрос в активность владельца
// POST /teacher/activity/:id/add_questions
func (h *TeacherHandler) AddQuestion(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}
	activityID := c.MustGet("activityID").(uint)

	var req AddQuestionRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if c.ContentType() != gin.MIMEJSON && c.PostForm("add_another") != "" {
		req.AddAnother = true
	}

	_, err := h.activityService.AddQuestion(c.Request.Context(), identity.UserID, activityID, service.AddQuestionInput{
		QuestionText:  req.QuestionText,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
	})
	if err != nil {
		h.handleOwnedError(c, err, "You do not have permission to edit this activity")
		return
	}

	location := teacherDashboardPath
	if req.AddAnother {
		location = addQuestionsPath(activityID)
	}
	helper.Redirect(c, location, helper.FlashSuccess, "Question added successfully!")
}

// Students отдает студентов, проходивших активности преподавателя
// GET /teacher/students
func (h *TeacherHandler) Students(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	students, err := h.teacherService.Students(c.Request.Context(), identity.UserID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": dto.NewStudentSummaryResponses(students)})
}

// ActivityStats отдает статистику и результаты активности
// GET /teacher/activity/:id/stats
func (h *TeacherHandler) ActivityStats(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.NewActivityReportResponse(report))
}

// ExportActivityResults выгружает результаты активности в CSV или Excel
// GET /teacher/activity/:id/stats/export?format=csv|xlsx
func (h *TeacherHandler) ExportActivityResults(c *gin.Context) {
	report, ok := h.loadReport(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("activity_%d_results_%s", report.Activity.ID, time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.exportXLSX(c, report, filename)
	default:
		h.exportCSV(c, report, filename)
	}
}

func (h *TeacherHandler) loadReport(c *gin.Context) (*service.ActivityReport, bool) {
	identity, ok := requireIdentity(c)
	if !ok {
		return nil, false
	}
	activityID := c.MustGet("activityID").(uint)

	report, err := h.teacherService.ActivityReport(c.Request.Context(), identity.UserID, activityID)
	if err != nil {
		h.handleOwnedError(c, err, "You do not have permission to view this activity")
		return nil, false
	}
	return report, true
}

// handleOwnedError перенаправляет на дашборд, если активность чужая
func (h *TeacherHandler) handleOwnedError(c *gin.Context, err error, forbiddenMessage string) {
	if errors.Is(err, apperrors.ErrForbidden) {
		helper.Deny(c, teacherDashboardPath, forbiddenMessage)
		return
	}
	handleError(c, h.logger, err)
}

var exportHeaders = []string{"Student", "Score", "Max score", "Percentage", "Time spent (s)", "Attempts", "Completed at"}

// exportRow приводит результат к строкам ячеек
func exportRow(row service.ActivityResultRow) []string {
	r := row.Result
	timeSpent := ""
	if r.TimeSpent != nil {
		timeSpent = strconv.Itoa(*r.TimeSpent)
	}
	return []string{
		sanitizeForExcel(row.StudentName),
		strconv.FormatFloat(r.Score, 'f', -1, 64),
		strconv.FormatFloat(r.MaxScore, 'f', -1, 64),
		strconv.FormatFloat(dto.Round2(r.Percentage), 'f', 2, 64),
		timeSpent,
		strconv.Itoa(r.Attempts),
		r.CompletedAt.UTC().Format(time.RFC3339),
	}
}

// exportCSV пишет CSV с BOM для корректного UTF-8 в Excel
func (h *TeacherHandler) exportCSV(c *gin.Context, report *service.ActivityReport, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		h.logger.Warn("Failed to write CSV export", zap.Error(err))
		return
	}

	writer := csv.NewWriter(c.Writer)
	rows := make([][]string, 0, len(report.Results)+1)
	rows = append(rows, exportHeaders)
	for _, row := range report.Results {
		rows = append(rows, exportRow(row))
	}
	if err := writer.WriteAll(rows); err != nil {
		h.logger.Warn("Failed to write CSV export", zap.Uint("activity_id", report.Activity.ID), zap.Error(err))
	}
}

// exportXLSX пишет Excel-файл через StreamWriter
func (h *TeacherHandler) exportXLSX(c *gin.Context, report *service.ActivityReport, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Results"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		handleError(c, h.logger, fmt.Errorf("failed to prepare sheet: %w", err))
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		handleError(c, h.logger, fmt.Errorf("failed to create stream writer: %w", err))
		return
	}

	header := make([]interface{}, len(exportHeaders))
	for i, title := range exportHeaders {
		header[i] = title
	}
	if err := sw.SetRow("A1", header); err != nil {
		handleError(c, h.logger, fmt.Errorf("failed to write header row: %w", err))
		return
	}

	for i, row := range report.Results {
		r := row.Result
		var timeSpent interface{} = ""
		if r.TimeSpent != nil {
			timeSpent = *r.TimeSpent
		}
		cells := []interface{}{
			sanitizeForExcel(row.StudentName),
			r.Score,
			r.MaxScore,
			dto.Round2(r.Percentage),
			timeSpent,
			r.Attempts,
			r.CompletedAt.UTC().Format(time.RFC3339),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, cells); err != nil {
			handleError(c, h.logger, fmt.Errorf("failed to write row %d: %w", i+2, err))
			return
		}
	}

	if err := sw.Flush(); err != nil {
		handleError(c, h.logger, fmt.Errorf("failed to flush workbook: %w", err))
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Warn("Failed to write XLSX export", zap.Uint("activity_id", report.Activity.ID), zap.Error(err))
	}
}

// sanitizeForExcel экранирует значения, которые Excel/LibreOffice приняли бы за формулу
func sanitizeForExcel(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
