package dto

import (
	"github.com/yourusername/eduquiz-api/internal/service"
	"github.com/yourusername/eduquiz-api/internal/service/analytics"
)

// StudentDashboardResponse — главная страница студента
type StudentDashboardResponse struct {
	Activities           []ActivityResponse `json:"activities"`
	CompletedActivityIDs []uint             `json:"completed_activity_ids"`
	Average              float64            `json:"average"`
	PerformanceLevel     string             `json:"performance_level"`
	Recommendations      []string           `json:"recommendations"`
	SuggestedDifficulty  string             `json:"suggested_difficulty"`
	TotalCompleted       int                `json:"total_completed"`
}

// NewStudentDashboardResponse преобразует данные дашборда студента
func NewStudentDashboardResponse(d *service.StudentDashboard) StudentDashboardResponse {
	completed := d.CompletedActivityIDs
	if completed == nil {
		completed = []uint{}
	}
	return StudentDashboardResponse{
		Activities:           NewActivityResponses(d.Activities),
		CompletedActivityIDs: completed,
		Average:              Round2(d.Average),
		PerformanceLevel:     d.PerformanceLevel,
		Recommendations:      d.Recommendations,
		SuggestedDifficulty:  d.SuggestedDifficulty,
		TotalCompleted:       d.TotalCompleted,
	}
}

// TeacherOverviewResponse — сводка по активностям преподавателя
type TeacherOverviewResponse struct {
	TotalActivities    int     `json:"total_activities"`
	TotalStudents      int     `json:"total_students"`
	AveragePerformance float64 `json:"average_performance"`
	Alerts             int     `json:"alerts"`
}

// StrugglingStudentResponse — студент, которому нужна поддержка
type StrugglingStudentResponse struct {
	Student UserResponse `json:"student"`
	Average float64      `json:"average"`
	Status  string       `json:"status"`
}

// TeacherDashboardResponse — главная страница преподавателя
type TeacherDashboardResponse struct {
	Activities         []ActivityResponse          `json:"activities"`
	Overview           TeacherOverviewResponse     `json:"overview"`
	StrugglingStudents []StrugglingStudentResponse `json:"struggling_students"`
}

// NewTeacherDashboardResponse преобразует данные дашборда преподавателя
func NewTeacherDashboardResponse(d *service.TeacherDashboard) TeacherDashboardResponse {
	struggling := make([]StrugglingStudentResponse, len(d.StrugglingStudents))
	for i := range d.StrugglingStudents {
		s := &d.StrugglingStudents[i]
		struggling[i] = StrugglingStudentResponse{
			Student: NewUserResponse(&s.Student),
			Average: Round2(s.Average),
			Status:  s.Status,
		}
	}
	return TeacherDashboardResponse{
		Activities:         NewActivityResponses(d.Activities),
		Overview:           newTeacherOverviewResponse(d.Overview),
		StrugglingStudents: struggling,
	}
}

func newTeacherOverviewResponse(o analytics.TeacherOverview) TeacherOverviewResponse {
	return TeacherOverviewResponse{
		TotalActivities:    o.TotalActivities,
		TotalStudents:      o.TotalStudents,
		AveragePerformance: Round2(o.AveragePerformance),
		Alerts:             o.Alerts,
	}
}

// StudentSummaryResponse — строка списка студентов преподавателя
type StudentSummaryResponse struct {
	Student          UserResponse `json:"student"`
	Average          float64      `json:"average"`
	TotalActivities  int          `json:"total_activities"`
	PerformanceLevel string       `json:"performance_level"`
}

// NewStudentSummaryResponses преобразует список студентов
func NewStudentSummaryResponses(students []service.StudentSummary) []StudentSummaryResponse {
	out := make([]StudentSummaryResponse, len(students))
	for i := range students {
		s := &students[i]
		out[i] = StudentSummaryResponse{
			Student:          NewUserResponse(&s.Student),
			Average:          Round2(s.Average),
			TotalActivities:  s.TotalActivities,
			PerformanceLevel: s.PerformanceLevel,
		}
	}
	return out
}

// ActivityStatsResponse — статистика активности
type ActivityStatsResponse struct {
	TotalAttempts int     `json:"total_attempts"`
	AverageScore  float64 `json:"average_score"`
	PassRate      float64 `json:"pass_rate"`
	AverageTime   float64 `json:"average_time"`
}

// ActivityReportResponse — статистика активности вместе с результатами
type ActivityReportResponse struct {
	Activity ActivityResponse      `json:"activity"`
	Stats    ActivityStatsResponse `json:"stats"`
	Results  []ResultResponse      `json:"results"`
}

// NewActivityReportResponse преобразует отчет по активности
func NewActivityReportResponse(r *service.ActivityReport) ActivityReportResponse {
	results := make([]ResultResponse, len(r.Results))
	for i := range r.Results {
		results[i] = NewResultResponse(&r.Results[i].Result, r.Results[i].StudentName)
	}
	return ActivityReportResponse{
		Activity: NewActivityResponse(&r.Activity),
		Stats: ActivityStatsResponse{
			TotalAttempts: r.Stats.TotalAttempts,
			AverageScore:  Round2(r.Stats.AverageScore),
			PassRate:      Round2(r.Stats.PassRate),
			AverageTime:   Round2(r.Stats.AverageTime),
		},
		Results: results,
	}
}

// NewAdminDashboardResponse преобразует сводку администратора
func NewAdminDashboardResponse(d *service.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		TotalUsers:      d.TotalUsers,
		TotalStudents:   d.TotalStudents,
		TotalTeachers:   d.TotalTeachers,
		TotalActivities: d.TotalActivities,
		RecentUsers:     NewUserResponses(d.RecentUsers),
	}
}
