package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's profile info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Creates a goal row. At most one goal per (user, day) is allowed
	Create(ctx context.Context, goal *entity.DailyGoal) (uuid.UUID, error)
	// Searches the goal of uid for a calendar day
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyGoal, error)
	// Returns the most recent goal of uid by date, used to seed a new day
	GetLatest(ctx context.Context, uid uuid.UUID) (*entity.DailyGoal, error)
	// Sets a new target and recomputes the achievement flag
	UpdateTarget(ctx context.Context, goalID uuid.UUID, target int) error
	// Sets achieved, recomputing the flag against the stored target
	UpdateAchieved(ctx context.Context, goalID uuid.UUID, achieved int) error
	// Days on which uid met the target, ascending
	ListAchievedDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error)
}

type WaterTypesRepositoryI interface {
	// Creates a water type row; rows are immutable afterwards
	Create(ctx context.Context, wt *entity.WaterType) (uuid.UUID, error)
	// Lists water types owned by uid, ascending by title
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WaterType, error)
}

type WaterLogsRepositoryI interface {
	// Lists uid's logs for a calendar day, ascending by timestamp
	ListByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.WaterLog, error)
	// Lists uid's logs with logged_at in [from, to] inclusive, ascending
	ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WaterLog, error)
}

// IntakeRepositoryI owns the flows that touch several tables at once. Both
// operations run inside a single transaction so a partial add-water sequence
// can never be observed.
type IntakeRepositoryI interface {
	// Inserts the water type and log, then advances the goal's achieved
	// amount (clamped at the stored target). Returns the updated goal
	AddIntake(ctx context.Context, wt *entity.WaterType, quantity int, loggedAt time.Time, goalID uuid.UUID) (*entity.DailyGoal, error)
	// Deletes every log of uid on day and zeroes the day's goal progress.
	// Returns the number of logs removed; calling it twice is safe
	ResetDay(ctx context.Context, uid uuid.UUID, day time.Time) (int64, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
