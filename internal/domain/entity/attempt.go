package entity

import "time"

// AttemptStart фиксирует серверное время начала попытки студента
type AttemptStart struct {
	ActivityID uint      `json:"activity_id"`
	StartedAt  time.Time `json:"started_at"`
}
