// Package analytics содержит чистые функции расчета статистики по результатам.
// Функции не обращаются к хранилищу и не округляют значения.
package analytics

import (
	"sort"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

// StrugglingStudent описывает студента, которому нужна поддержка
type StrugglingStudent struct {
	StudentID uint
	Average   float64
	Status    string
}

// ActivityStats — статистика по одной активности
type ActivityStats struct {
	TotalAttempts int
	AverageScore  float64
	PassRate      float64
	AverageTime   float64
}

// TeacherOverview — сводка по всем активностям преподавателя
type TeacherOverview struct {
	TotalActivities    int
	TotalStudents      int
	AveragePerformance float64
	Alerts             int
}

// StudentAverage возвращает средний процент по результатам, 0 если результатов нет
func StudentAverage(results []entity.Result) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		sum += r.Percentage
	}
	return sum / float64(len(results))
}

// PerformanceTier переводит средний процент в уровень успеваемости
func PerformanceTier(average float64) string {
	switch {
	case average >= ExcellentThreshold:
		return TierExcellent
	case average >= GoodThreshold:
		return TierGood
	case average >= RegularThreshold:
		return TierRegular
	default:
		return TierLow
	}
}

// StudentPerformance возвращает средний процент и уровень успеваемости
func StudentPerformance(results []entity.Result) (float64, string) {
	avg := StudentAverage(results)
	return avg, PerformanceTier(avg)
}

// MostRecent возвращает не более n последних результатов по completed_at (новые первыми).
// Исходный срез не изменяется.
func MostRecent(results []entity.Result, n int) []entity.Result {
	sorted := make([]entity.Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CompletedAt.Equal(sorted[j].CompletedAt) {
			return sorted[i].ID > sorted[j].ID
		}
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// meanTimeSpent возвращает среднее время по результатам с известной длительностью
func meanTimeSpent(results []entity.Result) (float64, bool) {
	var sum float64
	var count int
	for _, r := range results {
		if r.TimeSpent == nil {
			continue
		}
		sum += float64(*r.TimeSpent)
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// Recommendations строит советы по последним RecommendationWindow результатам студента
func Recommendations(results []entity.Result) []string {
	recent := MostRecent(results, RecommendationWindow)
	if len(recent) == 0 {
		return []string{msgFirstActivity}
	}

	avg := StudentAverage(recent)
	var recs []string
	switch {
	case avg < RemedialThreshold:
		recs = []string{msgReviewBasics, msgPracticeSimple, msgAskTeacher}
	case avg < ProgressThreshold:
		recs = []string{msgKeepPracticing, msgFocusMistakes}
	default:
		recs = []string{msgExcellent, msgTryHarder}
	}

	if avgTime, ok := meanTimeSpent(recent); ok && avgTime > SlowAverageSeconds {
		recs = append(recs, msgManageTime)
	}
	return recs
}

// SuggestDifficulty подбирает сложность по последним DifficultyWindow результатам
func SuggestDifficulty(results []entity.Result) string {
	recent := MostRecent(results, DifficultyWindow)
	if len(recent) == 0 {
		return entity.DifficultyEasy
	}
	avg := StudentAverage(recent)
	switch {
	case avg >= HardDifficultyThreshold:
		return entity.DifficultyHard
	case avg >= MediumDifficultyThreshold:
		return entity.DifficultyMedium
	default:
		return entity.DifficultyEasy
	}
}

// GroupByStudent группирует результаты по студенту
func GroupByStudent(results []entity.Result) map[uint][]entity.Result {
	grouped := make(map[uint][]entity.Result)
	for _, r := range results {
		grouped[r.StudentID] = append(grouped[r.StudentID], r)
	}
	return grouped
}

// DistinctStudentIDs возвращает отсортированные ID студентов, встречающихся в результатах
func DistinctStudentIDs(results []entity.Result) []uint {
	seen := make(map[uint]struct{}, len(results))
	ids := make([]uint, 0)
	for _, r := range results {
		if _, ok := seen[r.StudentID]; ok {
			continue
		}
		seen[r.StudentID] = struct{}{}
		ids = append(ids, r.StudentID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// StrugglingStudents отбирает студентов со средним ниже StrugglingThreshold
// по всем их результатам. Список отсортирован по среднему по возрастанию.
func StrugglingStudents(byStudent map[uint][]entity.Result) []StrugglingStudent {
	struggling := make([]StrugglingStudent, 0)
	for studentID, results := range byStudent {
		if len(results) == 0 {
			continue
		}
		avg := StudentAverage(results)
		if avg < StrugglingThreshold {
			struggling = append(struggling, StrugglingStudent{
				StudentID: studentID,
				Average:   avg,
				Status:    StrugglingStatus,
			})
		}
	}
	sort.Slice(struggling, func(i, j int) bool {
		if struggling[i].Average == struggling[j].Average {
			return struggling[i].StudentID < struggling[j].StudentID
		}
		return struggling[i].Average < struggling[j].Average
	})
	return struggling
}

// ComputeActivityStats считает статистику по результатам одной активности
func ComputeActivityStats(results []entity.Result) ActivityStats {
	if len(results) == 0 {
		return ActivityStats{}
	}

	var passed int
	for _, r := range results {
		if r.Percentage >= PassThreshold {
			passed++
		}
	}

	avgTime, _ := meanTimeSpent(results)
	return ActivityStats{
		TotalAttempts: len(results),
		AverageScore:  StudentAverage(results),
		PassRate:      float64(passed) / float64(len(results)) * 100,
		AverageTime:   avgTime,
	}
}

// ComputeTeacherOverview строит сводку преподавателя. Без результатов все
// производные от них поля равны нулю, но число активностей сохраняется.
func ComputeTeacherOverview(activityCount int, results []entity.Result, strugglingCount int) TeacherOverview {
	overview := TeacherOverview{TotalActivities: activityCount}
	if len(results) == 0 {
		return overview
	}
	overview.TotalStudents = len(DistinctStudentIDs(results))
	overview.AveragePerformance = StudentAverage(results)
	overview.Alerts = strugglingCount
	return overview
}
