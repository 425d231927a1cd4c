package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Username          string    `json:"username"`
	Phone             string    `json:"phone"`
	ProfilePictureKey string    `json:"-"`
	PasswordHash      string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
}

// DailyGoal is one day's target for one user. There is at most one row per
// (UserID, Date); IsAchieved always equals Achieved >= Target as of the last
// write.
type DailyGoal struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"uid"`
	Date       time.Time `json:"-"`
	Target     int       `json:"target"`
	Achieved   int       `json:"achieved"`
	IsAchieved bool      `json:"is_achieved"`
}

// WaterType is a drink composition. Rows are immutable after creation and are
// never deduplicated: every logged drink gets its own row.
type WaterType struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     string    `json:"title"`
	Volume    int       `json:"volume"`
	Color     string    `json:"color"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type WaterLog struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	WaterTypeID uuid.UUID `json:"water_type_id"`
	Quantity    int       `json:"quantity"`
	LoggedAt    time.Time `json:"-"`
}

// SpanRole marks how an achieved date sits inside a contiguous run of
// achieved dates, for period highlighting on the calendar.
type SpanRole string

const (
	SpanIsolated  SpanRole = "isolated"
	SpanRunStart  SpanRole = "run-start"
	SpanRunMiddle SpanRole = "run-middle"
	SpanRunEnd    SpanRole = "run-end"
)

type CalendarReport struct {
	CurrentStreak int                 `json:"current_streak"`
	Spans         map[string]SpanRole `json:"spans"`
}

type ChartBucket struct {
	Label  string `json:"label"`
	Volume int    `json:"volume"`
}

type ChartSeries struct {
	Period  string        `json:"period"`
	Buckets []ChartBucket `json:"buckets"`
}
