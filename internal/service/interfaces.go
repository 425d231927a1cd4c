package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/syahrillhaiqal/drinkify/internal/stats"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
	Username string `validate:"required,min=3,max=100"`
	Phone    string `validate:"omitempty,min=7,max=20"`
}

type UpdateProfileRequest struct {
	Username string `validate:"omitempty,min=3,max=100"`
	Phone    string `validate:"omitempty,min=7,max=20"`
}

type AddIntakeRequest struct {
	Title    string `validate:"required,min=1,max=100"`
	Volume   int    `validate:"required,gt=0"`
	Color    string `validate:"required,water_color"`
	Notes    string `validate:"omitempty,max=500"`
	Quantity int    `validate:"required,gt=0"`
	// Optional; zero value means "now"
	LoggedAt time.Time
}

// IntakeResult reports what an add-water action produced: the rows created
// and the goal state after the advance.
type IntakeResult struct {
	WaterType *entity.WaterType
	Goal      *entity.DailyGoal
	AddedML   int
}

// LogEntry pairs a log with its resolved water type. Type is nil when the
// reference cannot be resolved; the entry still renders, with zero volume.
type LogEntry struct {
	Log  *entity.WaterLog
	Type *entity.WaterType
}

type UserServiceI interface {
	// Validates credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Applies non-empty profile fields
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*entity.User, error)
	// Swaps the stored profile picture key
	SetProfilePicture(ctx context.Context, id uuid.UUID, key string) (*entity.User, error)
}

type GoalServiceI interface {
	// Returns today's goal, lazily copying the most recent target forward
	// with zero progress when the day has none. ErrNoGoalHistory when the
	// user never set a goal
	TodayGoal(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.DailyGoal, error)
	// Sets today's target, creating the day's goal when absent
	SetTodayTarget(ctx context.Context, uid uuid.UUID, today time.Time, target int) (*entity.DailyGoal, error)
}

type WaterServiceI interface {
	// The add-water flow: creates the type and log and advances today's
	// goal, all or nothing
	AddIntake(ctx context.Context, uid uuid.UUID, req *AddIntakeRequest, now time.Time) (*IntakeResult, error)
	// A day's logs ascending by timestamp, with resolved types
	LogsForDate(ctx context.Context, uid uuid.UUID, day time.Time) ([]LogEntry, error)
	// The user's water types ascending by title
	WaterTypes(ctx context.Context, uid uuid.UUID) ([]*entity.WaterType, error)
	// Wipes today's logs and progress; safe to repeat
	ResetToday(ctx context.Context, uid uuid.UUID, now time.Time) (int64, error)
}

type StatsServiceI interface {
	// Streak plus calendar span roles derived from achieved dates
	Calendar(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.CalendarReport, error)
	// Volume series bucketed per period
	Chart(ctx context.Context, uid uuid.UUID, period stats.Period, now time.Time) (*entity.ChartSeries, error)
}
