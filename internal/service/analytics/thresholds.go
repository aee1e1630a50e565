package analytics

// Уровни успеваемости
const (
	TierExcellent = "excellent"
	TierGood      = "good"
	TierRegular   = "regular"
	TierLow       = "low"
)

// Пороги уровней успеваемости (процент, включительно)
const (
	ExcellentThreshold = 80.0
	GoodThreshold      = 60.0
	RegularThreshold   = 40.0
)

// Пороги рекомендаций по последним результатам
const (
	RecommendationWindow = 5
	RemedialThreshold    = 50.0
	ProgressThreshold    = 70.0
	SlowAverageSeconds   = 600.0
)

// Пороги подбора сложности по последним результатам
const (
	DifficultyWindow          = 3
	HardDifficultyThreshold   = 85.0
	MediumDifficultyThreshold = 60.0
)

const (
	// PassThreshold — минимальный процент зачтенной попытки
	PassThreshold = 60.0
	// StrugglingThreshold — средний процент, ниже которого студенту нужна поддержка
	StrugglingThreshold = 60.0
	StrugglingStatus    = "Needs support"
)
