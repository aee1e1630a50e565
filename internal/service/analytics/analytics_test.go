package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/eduquiz-api/internal/domain/entity"
)

var baseTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func seconds(v int) *int { return &v }

// resultsWithPercentages создает результаты, где первый элемент самый свежий
func resultsWithPercentages(studentID uint, percentages ...float64) []entity.Result {
	results := make([]entity.Result, len(percentages))
	for i, p := range percentages {
		results[i] = entity.Result{
			ID:          uint(i + 1),
			StudentID:   studentID,
			ActivityID:  1,
			Percentage:  p,
			CompletedAt: baseTime.Add(-time.Duration(i) * time.Hour),
		}
	}
	return results
}

func TestStudentAverage(t *testing.T) {
	assert.Equal(t, 0.0, StudentAverage(nil))
	assert.Equal(t, 90.0, StudentAverage(resultsWithPercentages(1, 80, 100)))
}

func TestPerformanceTier_Boundaries(t *testing.T) {
	tests := []struct {
		avg      float64
		expected string
	}{
		{100, TierExcellent},
		{80, TierExcellent},
		{79.99, TierGood},
		{60, TierGood},
		{59.99, TierRegular},
		{40, TierRegular},
		{39.99, TierLow},
		{0, TierLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, PerformanceTier(tt.avg), "avg=%v", tt.avg)
	}
}

func TestStudentPerformance(t *testing.T) {
	avg, tier := StudentPerformance(resultsWithPercentages(1, 80, 100))
	assert.Equal(t, 90.0, avg)
	assert.Equal(t, TierExcellent, tier)

	avg, tier = StudentPerformance(nil)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, TierLow, tier)
}

func TestMostRecent_OrdersWithoutMutatingInput(t *testing.T) {
	// Arrange: старые результаты первыми
	results := []entity.Result{
		{ID: 1, CompletedAt: baseTime.Add(-3 * time.Hour)},
		{ID: 2, CompletedAt: baseTime},
		{ID: 3, CompletedAt: baseTime.Add(-1 * time.Hour)},
	}

	// Act
	recent := MostRecent(results, 2)

	// Assert
	require.Len(t, recent, 2)
	assert.Equal(t, uint(2), recent[0].ID)
	assert.Equal(t, uint(3), recent[1].ID)
	assert.Equal(t, uint(1), results[0].ID, "входной срез не должен переупорядочиваться")
}

func TestRecommendations_NoResults(t *testing.T) {
	assert.Equal(t, []string{msgFirstActivity}, Recommendations(nil))
}

func TestRecommendations_Tiers(t *testing.T) {
	tests := []struct {
		name     string
		pcts     []float64
		expected []string
	}{
		{"remedial", []float64{40, 45}, []string{msgReviewBasics, msgPracticeSimple, msgAskTeacher}},
		{"boundary 50 is progress", []float64{50}, []string{msgKeepPracticing, msgFocusMistakes}},
		{"progress", []float64{65, 60}, []string{msgKeepPracticing, msgFocusMistakes}},
		{"boundary 70 is encouragement", []float64{70}, []string{msgExcellent, msgTryHarder}},
		{"encouragement", []float64{90, 100}, []string{msgExcellent, msgTryHarder}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recommendations(resultsWithPercentages(1, tt.pcts...)))
		})
	}
}

func TestRecommendations_UsesFiveMostRecent(t *testing.T) {
	// Пять свежих идеальных результатов и старый провальный вне окна
	results := resultsWithPercentages(1, 100, 100, 100, 100, 100, 0)

	assert.Equal(t, []string{msgExcellent, msgTryHarder}, Recommendations(results))
}

func TestRecommendations_SlowStudentGetsTimeAdvice(t *testing.T) {
	results := resultsWithPercentages(1, 90, 90, 90)
	results[0].TimeSpent = seconds(900)
	results[1].TimeSpent = seconds(700)
	// results[2] без времени и не учитывается в среднем

	recs := Recommendations(results)

	require.Len(t, recs, 3)
	assert.Equal(t, msgManageTime, recs[2])
}

func TestRecommendations_ExactlyTenMinutesIsNotSlow(t *testing.T) {
	results := resultsWithPercentages(1, 90)
	results[0].TimeSpent = seconds(600)

	assert.NotContains(t, Recommendations(results), msgManageTime)
}

func TestSuggestDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		pcts     []float64
		expected string
	}{
		{"no results", nil, entity.DifficultyEasy},
		{"hard at 85", []float64{90, 85, 80}, entity.DifficultyHard},
		{"medium at 60", []float64{60, 60, 60}, entity.DifficultyMedium},
		{"easy below 60", []float64{59}, entity.DifficultyEasy},
		{"only last three count", []float64{100, 100, 100, 0, 0}, entity.DifficultyHard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestDifficulty(resultsWithPercentages(1, tt.pcts...)))
		})
	}
}

func TestStrugglingStudents_SortedAscending(t *testing.T) {
	// Arrange
	byStudent := map[uint][]entity.Result{
		3: resultsWithPercentages(3, 50, 55),  // 52.5
		4: resultsWithPercentages(4, 90, 100), // не отстающий
		5: resultsWithPercentages(5, 20, 40),  // 30
		6: resultsWithPercentages(6, 60),      // ровно порог, не отстающий
		7: nil,
	}

	// Act
	struggling := StrugglingStudents(byStudent)

	// Assert
	require.Len(t, struggling, 2)
	assert.Equal(t, StrugglingStudent{StudentID: 5, Average: 30, Status: StrugglingStatus}, struggling[0])
	assert.Equal(t, StrugglingStudent{StudentID: 3, Average: 52.5, Status: StrugglingStatus}, struggling[1])
}

func TestStrugglingStudents_Empty(t *testing.T) {
	assert.Empty(t, StrugglingStudents(nil))
}

func TestComputeActivityStats_NoResults(t *testing.T) {
	assert.Equal(t, ActivityStats{}, ComputeActivityStats(nil))
}

func TestComputeActivityStats(t *testing.T) {
	results := resultsWithPercentages(1, 100, 60, 59, 20)
	results[0].TimeSpent = seconds(120)
	results[1].TimeSpent = seconds(0)
	results[2].TimeSpent = seconds(300)

	stats := ComputeActivityStats(results)

	assert.Equal(t, 4, stats.TotalAttempts)
	assert.InDelta(t, 59.75, stats.AverageScore, 1e-9)
	assert.InDelta(t, 50.0, stats.PassRate, 1e-9)
	assert.InDelta(t, 140.0, stats.AverageTime, 1e-9)
}

func TestComputeTeacherOverview_NoResultsKeepsActivityCount(t *testing.T) {
	assert.Equal(t, TeacherOverview{TotalActivities: 2}, ComputeTeacherOverview(2, nil, 3))
}

func TestComputeTeacherOverview(t *testing.T) {
	results := append(resultsWithPercentages(1, 80, 40), resultsWithPercentages(2, 90)...)

	overview := ComputeTeacherOverview(3, results, 1)

	assert.Equal(t, 3, overview.TotalActivities)
	assert.Equal(t, 2, overview.TotalStudents)
	assert.InDelta(t, 70.0, overview.AveragePerformance, 1e-9)
	assert.Equal(t, 1, overview.Alerts)
}

func TestGroupByStudentAndDistinctIDs(t *testing.T) {
	results := append(resultsWithPercentages(9, 10, 20), resultsWithPercentages(2, 30)...)

	grouped := GroupByStudent(results)
	assert.Len(t, grouped[9], 2)
	assert.Len(t, grouped[2], 1)
	assert.Equal(t, []uint{2, 9}, DistinctStudentIDs(results))
}
