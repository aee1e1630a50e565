package dto

import "math"

// Round2 округляет значение до двух знаков после запятой для отображения
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
