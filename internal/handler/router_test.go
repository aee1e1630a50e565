package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
	"github.com/yourusername/eduquiz-api/internal/domain/repository/mocks"
	"github.com/yourusername/eduquiz-api/internal/handler/helper"
	"github.com/yourusername/eduquiz-api/internal/middleware"
	apperrors "github.com/yourusername/eduquiz-api/internal/pkg/errors"
	"github.com/yourusername/eduquiz-api/internal/service"
	"github.com/yourusername/eduquiz-api/pkg/auth"
)

const testCookieName = "eduquiz_session"

func init() {
	gin.SetMode(gin.TestMode)
	entity.PasswordHashCost = bcrypt.MinCost
}

// routerFixture собирает роутер на реальных сервисах поверх моков репозиториев
type routerFixture struct {
	users      *mocks.MockUserRepository
	activities *mocks.MockActivityRepository
	questions  *mocks.MockQuestionRepository
	results    *mocks.MockResultRepository
	clock      *mocks.MockAttemptClockRepository
	tx         *mocks.FakeTransactor
	sessions   *auth.SessionService
	router     *gin.Engine
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()

	f := &routerFixture{
		users:      new(mocks.MockUserRepository),
		activities: new(mocks.MockActivityRepository),
		questions:  new(mocks.MockQuestionRepository),
		results:    new(mocks.MockResultRepository),
		clock:      new(mocks.MockAttemptClockRepository),
	}
	f.tx = mocks.NewFakeTransactor(f.users, f.activities, f.questions, f.results)

	sessions, err := auth.NewSessionService("handler-secret", time.Hour)
	require.NoError(t, err)
	f.sessions = sessions

	authService, err := service.NewAuthService(f.users, sessions, service.NewNoopEmailService(logger), logger)
	require.NoError(t, err)
	activityService := service.NewActivityService(f.activities, f.questions, logger)
	attemptService := service.NewAttemptService(f.activities, f.questions, f.clock, f.tx, service.AttemptConfig{}, logger)

	f.router = NewRouter(RouterDeps{
		Auth:           NewAuthHandler(authService, SessionCookie{Name: testCookieName, TTL: time.Hour}, logger),
		Student:        NewStudentHandler(service.NewStudentService(f.activities, f.results, logger), attemptService, logger),
		Teacher:        NewTeacherHandler(activityService, service.NewTeacherService(f.users, f.activities, f.results, logger), logger),
		Admin:          NewAdminHandler(service.NewAdminService(f.users, f.activities, f.tx, logger), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(sessions, nil, testCookieName, logger),
		Metrics:        middleware.NewMetrics(),
		MaxBodyBytes:   1 << 20,
		Logger:         logger,
	})
	return f
}

// do выполняет запрос от имени пользователя; userID 0 — анонимный запрос
func (f *routerFixture) do(t *testing.T, req *http.Request, userID uint, username, role string) *httptest.ResponseRecorder {
	t.Helper()
	if userID != 0 {
		token, _, err := f.sessions.Issue(userID, username, role)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "Response body should be valid JSON: %s", w.Body.String())
	return body
}

// ============================================================================
// Аутентификация
// ============================================================================

func TestIndex(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/", nil), 0, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, httptest.NewRequest(http.MethodGet, "/", nil), 2, "profesor1", entity.RoleTeacher)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
}

func TestHealthz(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/healthz", nil), 0, "", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegister_DuplicateUsernameIsValidationError(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("GetByUsername", mock.Anything, "juan_perez").Return(&entity.User{ID: 5}, nil)

	w := f.do(t, jsonRequest(t, http.MethodPost, "/register", map[string]string{
		"username": "juan_perez", "email": "juan@example.com",
		"password": "secret1", "confirm_password": "secret1", "role": "student",
	}), 0, "", "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, parseBody(t, w)["error"], "username is already taken")
	f.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_FormSuccessRedirectsToLogin(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("GetByUsername", mock.Anything, "nuevo").Return(nil, apperrors.ErrNotFound)
	f.users.On("GetByEmail", mock.Anything, "nuevo@example.com").Return(nil, apperrors.ErrNotFound)
	f.users.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

	w := f.do(t, formRequest("/register", url.Values{
		"username": {"nuevo"}, "email": {"nuevo@example.com"},
		"password": {"secret1"}, "confirm_password": {"secret1"}, "role": {"teacher"},
	}), 0, "", "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Equal(t, "Account created successfully for nuevo!", parseBody(t, w)[helper.FlashSuccess])
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("profesor123"), bcrypt.MinCost)
	require.NoError(t, err)
	teacher := &entity.User{ID: 2, Username: "profesor1", Password: string(hash), Role: entity.RoleTeacher}

	t.Run("success sets cookie and redirects to dashboard", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.On("GetByUsername", mock.Anything, "profesor1").Return(teacher, nil)

		w := f.do(t, formRequest("/login", url.Values{"username": {"profesor1"}, "password": {"profesor123"}}), 0, "", "")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
		assert.Contains(t, w.Header().Get("Set-Cookie"), testCookieName+"=")
		assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
	})

	t.Run("local next is honoured", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.On("GetByUsername", mock.Anything, "profesor1").Return(teacher, nil)

		w := f.do(t, formRequest("/login?next=%2Fteacher%2Fstudents", url.Values{"username": {"profesor1"}, "password": {"profesor123"}}), 0, "", "")

		assert.Equal(t, "/teacher/students", w.Header().Get("Location"))
	})

	t.Run("external next is ignored", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.On("GetByUsername", mock.Anything, "profesor1").Return(teacher, nil)

		w := f.do(t, formRequest("/login?next=%2F%2Fevil.example.com", url.Values{"username": {"profesor1"}, "password": {"profesor123"}}), 0, "", "")

		assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
	})

	t.Run("surrounding whitespace is trimmed, case is kept", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.On("GetByUsername", mock.Anything, "profesor1").Return(teacher, nil)
		f.users.On("GetByUsername", mock.Anything, "PROFESOR1").Return(nil, apperrors.ErrNotFound)

		w := f.do(t, formRequest("/login", url.Values{"username": {"  profesor1 "}, "password": {"profesor123"}}), 0, "", "")
		assert.Equal(t, http.StatusSeeOther, w.Code)

		w = f.do(t, formRequest("/login", url.Values{"username": {"PROFESOR1"}, "password": {"profesor123"}}), 0, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newRouterFixture(t)
		f.users.On("GetByUsername", mock.Anything, "profesor1").Return(teacher, nil)

		w := f.do(t, formRequest("/login", url.Values{"username": {"profesor1"}, "password": {"nope"}}), 0, "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})
}

func TestLogout(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/logout", nil), 0, "", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login"))

	w = f.do(t, httptest.NewRequest(http.MethodGet, "/logout", nil), 5, "juan_perez", entity.RoleStudent)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

// ============================================================================
// Ролевой доступ
// ============================================================================

func TestRoleGate(t *testing.T) {
	f := newRouterFixture(t)

	for _, path := range []string{"/student/dashboard", "/teacher/dashboard", "/admin/users"} {
		w := f.do(t, httptest.NewRequest(http.MethodGet, path, nil), 0, "", "")
		assert.Equal(t, http.StatusSeeOther, w.Code, path)
		assert.Equal(t, "/", w.Header().Get("Location"), path)
	}

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), 2, "profesor1", entity.RoleTeacher)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, middleware.MsgPermissionDenied, parseBody(t, w)[helper.FlashWarning])
}

// ============================================================================
// Студент
// ============================================================================

func TestStudentActivity_HidesCorrectAnswers(t *testing.T) {
	f := newRouterFixture(t)
	f.activities.On("GetByID", mock.Anything, uint(1)).Return(&entity.Activity{ID: 1, Title: "Algebra"}, nil)
	f.questions.On("ListByActivity", mock.Anything, uint(1)).Return([]entity.Question{
		{ID: 10, ActivityID: 1, QuestionText: "2x=4", OptionA: "1", OptionB: "2", OptionC: "3", OptionD: "4", CorrectAnswer: "b", Points: 1},
	}, nil)
	f.clock.On("SetStart", mock.Anything, uint(5), mock.AnythingOfType("entity.AttemptStart"), mock.Anything).Return(nil)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/student/activity/1", nil), 5, "juan_perez", entity.RoleStudent)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "correct_answer")
	assert.Contains(t, w.Body.String(), `"question_text":"2x=4"`)
}

func TestStudentActivity_UnknownActivity(t *testing.T) {
	f := newRouterFixture(t)
	f.activities.On("GetByID", mock.Anything, uint(99)).Return(nil, apperrors.ErrNotFound)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/student/activity/99", nil), 5, "juan_perez", entity.RoleStudent)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStudentSubmit(t *testing.T) {
	questions := []entity.Question{
		{ID: 10, ActivityID: 1, CorrectAnswer: "b", Points: 2},
		{ID: 11, ActivityID: 1, CorrectAnswer: "d", Points: 1},
	}

	submit := func(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *entity.Result) {
		f := newRouterFixture(t)
		f.clock.On("GetStart", mock.Anything, uint(5)).Return(nil, apperrors.ErrNotFound)
		f.clock.On("Clear", mock.Anything, uint(5)).Return(nil)
		f.activities.On("GetByID", mock.Anything, uint(1)).Return(&entity.Activity{ID: 1}, nil)
		f.questions.On("ListByActivity", mock.Anything, uint(1)).Return(questions, nil)
		f.results.On("CountByStudentAndActivity", mock.Anything, uint(5), uint(1)).Return(int64(0), nil)

		var saved *entity.Result
		f.results.On("Create", mock.Anything, mock.AnythingOfType("*entity.Result")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Result) }).
			Return(nil)

		w := f.do(t, req, 5, "juan_perez", entity.RoleStudent)
		return w, saved
	}

	t.Run("form fields", func(t *testing.T) {
		w, saved := submit(t, formRequest("/student/activity/1", url.Values{
			"question_10": {"B"}, "question_11": {"a"}, "csrf_token": {"x"},
		}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/student/dashboard", w.Header().Get("Location"))
		require.NotNil(t, saved)
		assert.Equal(t, 2.0, saved.Score)
		assert.Equal(t, 3.0, saved.MaxScore)
		assert.Equal(t, 0, *saved.TimeSpent)
		assert.Equal(t, "Activity completed! You scored 2/3 points (66.7%)", parseBody(t, w)[helper.FlashSuccess])
	})

	t.Run("json answers", func(t *testing.T) {
		w, saved := submit(t, jsonRequest(t, http.MethodPost, "/student/activity/1", map[string]interface{}{
			"answers": map[string]string{"10": "b", "11": "d"},
		}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		require.NotNil(t, saved)
		assert.Equal(t, 100.0, saved.Percentage)
	})
}

// ============================================================================
// Преподаватель
// ============================================================================

func TestCreateActivity(t *testing.T) {
	f := newRouterFixture(t)
	f.activities.On("Create", mock.Anything, mock.AnythingOfType("*entity.Activity")).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Activity).ID = 7 }).
		Return(nil)

	w := f.do(t, jsonRequest(t, http.MethodPost, "/teacher/create_activity", map[string]string{
		"title": "Fractions", "subject": "Math", "difficulty": "easy",
	}), 2, "profesor1", entity.RoleTeacher)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teacher/activity/7/add_questions", w.Header().Get("Location"))
}

func TestCreateActivity_InvalidDifficulty(t *testing.T) {
	f := newRouterFixture(t)

	w := f.do(t, jsonRequest(t, http.MethodPost, "/teacher/create_activity", map[string]string{
		"title": "Fractions", "subject": "Math", "difficulty": "extreme",
	}), 2, "profesor1", entity.RoleTeacher)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	f.activities.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddQuestion(t *testing.T) {
	values := url.Values{
		"question_text": {"3*3?"}, "option_a": {"6"}, "option_b": {"9"}, "option_c": {"12"}, "option_d": {"33"},
		"correct_answer": {"b"}, "points": {"2"},
	}

	t.Run("owner adds and continues", func(t *testing.T) {
		f := newRouterFixture(t)
		f.activities.On("GetByID", mock.Anything, uint(7)).Return(&entity.Activity{ID: 7, TeacherID: 2}, nil)
		f.questions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Question")).Return(nil)

		withAnother := url.Values{}
		for k, v := range values {
			withAnother[k] = v
		}
		withAnother.Set("add_another", "y")

		w := f.do(t, formRequest("/teacher/activity/7/add_questions", withAnother), 2, "profesor1", entity.RoleTeacher)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/teacher/activity/7/add_questions", w.Header().Get("Location"))
	})

	t.Run("owner adds and finishes", func(t *testing.T) {
		f := newRouterFixture(t)
		f.activities.On("GetByID", mock.Anything, uint(7)).Return(&entity.Activity{ID: 7, TeacherID: 2}, nil)
		f.questions.On("Create", mock.Anything, mock.AnythingOfType("*entity.Question")).Return(nil)

		w := f.do(t, formRequest("/teacher/activity/7/add_questions", values), 2, "profesor1", entity.RoleTeacher)

		assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
	})

	t.Run("non-owner is redirected and nothing is stored", func(t *testing.T) {
		f := newRouterFixture(t)
		f.activities.On("GetByID", mock.Anything, uint(7)).Return(&entity.Activity{ID: 7, TeacherID: 2}, nil)

		w := f.do(t, formRequest("/teacher/activity/7/add_questions", values), 3, "maria_lopez", entity.RoleTeacher)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
		assert.Equal(t, "You do not have permission to edit this activity", parseBody(t, w)[helper.FlashWarning])
		f.questions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestActivityStats_NonOwnerRedirected(t *testing.T) {
	f := newRouterFixture(t)
	f.activities.On("GetByID", mock.Anything, uint(7)).Return(&entity.Activity{ID: 7, TeacherID: 2}, nil)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/teacher/activity/7/stats", nil), 3, "maria_lopez", entity.RoleTeacher)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/teacher/dashboard", w.Header().Get("Location"))
}

func (f *routerFixture) seedReport() {
	seconds := 95
	f.activities.On("GetByID", mock.Anything, uint(7)).Return(&entity.Activity{ID: 7, TeacherID: 2, Title: "Fractions"}, nil)
	f.results.On("ListByActivity", mock.Anything, uint(7)).Return([]entity.Result{
		{ID: 1, StudentID: 5, ActivityID: 7, Score: 6, MaxScore: 7, Percentage: 600.0 / 7, TimeSpent: &seconds, Attempts: 1},
		{ID: 2, StudentID: 6, ActivityID: 7, Score: 2, MaxScore: 7, Percentage: 200.0 / 7, Attempts: 1},
	}, nil)
	f.users.On("GetByIDs", mock.Anything, []uint{5, 6}).Return([]entity.User{
		{ID: 5, Username: "juan_perez"},
		{ID: 6, Username: "=HYPERLINK(\"x\")"},
	}, nil)
}

func TestActivityStats(t *testing.T) {
	f := newRouterFixture(t)
	f.seedReport()

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/teacher/activity/7/stats", nil), 2, "profesor1", entity.RoleTeacher)

	require.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	stats := body["stats"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total_attempts"])
	assert.Equal(t, 57.14, stats["average_score"])
	assert.Equal(t, 50.0, stats["pass_rate"])
	results := body["results"].([]interface{})
	assert.Equal(t, 85.71, results[0].(map[string]interface{})["percentage"])
}

func TestExportActivityResults_CSV(t *testing.T) {
	f := newRouterFixture(t)
	f.seedReport()

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/teacher/activity/7/stats/export", nil), 2, "profesor1", entity.RoleTeacher)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "activity_7_results_")
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(w.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, exportHeaders, records[0])
	assert.Equal(t, []string{"juan_perez", "6", "7", "85.71", "95", "1"}, records[1][:6])
	assert.Equal(t, "'=HYPERLINK(\"x\")", records[2][0])
	assert.Equal(t, "", records[2][4])
}

func TestExportActivityResults_XLSX(t *testing.T) {
	f := newRouterFixture(t)
	f.seedReport()

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/teacher/activity/7/stats/export?format=xlsx", nil), 2, "profesor1", entity.RoleTeacher)

	require.Equal(t, http.StatusOK, w.Code)
	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Student", rows[0][0])
	assert.Equal(t, "juan_perez", rows[1][0])
}

func TestSanitizeForExcel(t *testing.T) {
	assert.Equal(t, "'=1+1", sanitizeForExcel("=1+1"))
	assert.Equal(t, "'@cmd", sanitizeForExcel("@cmd"))
	assert.Equal(t, "ana", sanitizeForExcel("ana"))
	assert.Equal(t, "", sanitizeForExcel(""))
}

// ============================================================================
// Администратор
// ============================================================================

func TestAdminDeleteUser_Self(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("GetByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1, Username: "admin", Role: entity.RoleAdmin}, nil)

	w := f.do(t, httptest.NewRequest(http.MethodPost, "/admin/user/1/delete", nil), 1, "admin", entity.RoleAdmin)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/users", w.Header().Get("Location"))
	assert.Equal(t, "You cannot delete your own account", parseBody(t, w)[helper.FlashWarning])
	assert.Equal(t, 0, f.tx.Calls)
}

func TestAdminDeleteUser_NotFound(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("GetByID", mock.Anything, uint(42)).Return(nil, apperrors.ErrNotFound)

	w := f.do(t, httptest.NewRequest(http.MethodPost, "/admin/user/42/delete", nil), 1, "admin", entity.RoleAdmin)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeleteUser_Student(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("GetByID", mock.Anything, uint(5)).Return(&entity.User{ID: 5, Username: "juan_perez"}, nil)
	f.activities.On("ListIDsByTeacher", mock.Anything, uint(5)).Return([]uint{}, nil)
	f.results.On("DeleteByActivityIDs", mock.Anything, []uint{}).Return(nil)
	f.questions.On("DeleteByActivityIDs", mock.Anything, []uint{}).Return(nil)
	f.activities.On("DeleteByTeacher", mock.Anything, uint(5)).Return(nil)
	f.results.On("DeleteByStudent", mock.Anything, uint(5)).Return(nil)
	f.users.On("Delete", mock.Anything, uint(5)).Return(nil)

	w := f.do(t, httptest.NewRequest(http.MethodPost, "/admin/user/5/delete", nil), 1, "admin", entity.RoleAdmin)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "User juan_perez deleted successfully", parseBody(t, w)[helper.FlashSuccess])
	assert.True(t, f.tx.Committed)
}

func TestAdminDashboard(t *testing.T) {
	f := newRouterFixture(t)
	f.users.On("Count", mock.Anything).Return(int64(3), nil)
	f.users.On("CountByRole", mock.Anything, entity.RoleStudent).Return(int64(1), nil)
	f.users.On("CountByRole", mock.Anything, entity.RoleTeacher).Return(int64(1), nil)
	f.activities.On("Count", mock.Anything).Return(int64(0), nil)
	f.users.On("ListRecent", mock.Anything, 10).Return([]entity.User{{ID: 3, Username: "admin", Password: "hash"}}, nil)

	w := f.do(t, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), 1, "admin", entity.RoleAdmin)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")
	assert.Equal(t, 3.0, parseBody(t, w)["total_users"])
}
