package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/pkg/cleanup"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

// IntakeRepository runs the multi-table flows. The legacy client issued the
// goal update, type insert and log insert as three independent remote writes
// and could strand the goal if a later write failed; here they commit or roll
// back together.
type IntakeRepository struct {
	conn PgConnection
}

func NewIntakeRepo(cfg DBConfig) *IntakeRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for intakeRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for intakeRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &IntakeRepository{
		conn: pool,
	}
}

func NewIntakeRepoWithConn(conn PgConnection) *IntakeRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for intakeRepo: " + err.Error())
	}
	return &IntakeRepository{
		conn: conn,
	}
}

func (ir *IntakeRepository) AddIntake(ctx context.Context, wt *entity.WaterType, quantity int, loggedAt time.Time, goalID uuid.UUID) (*entity.DailyGoal, error) {
	tx, err := ir.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting intake tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var typeID uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO water_types (user_id, title, volume, color, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		wt.UserID, wt.Title, wt.Volume, wt.Color, wt.Notes,
	)
	if err = row.Scan(&typeID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, errvalues.ErrUserNotFound
		}
		return nil, errors.New("creating water type in tx error: " + err.Error())
	}
	wt.ID = typeID

	_, err = tx.Exec(ctx, `INSERT INTO water_logs (user_id, water_type_id, quantity, logged_at) VALUES ($1, $2, $3, $4);`,
		wt.UserID, typeID, quantity, loggedAt,
	)
	if err != nil {
		return nil, errors.New("creating water log in tx error: " + err.Error())
	}

	goal := entity.DailyGoal{ID: goalID}
	row = tx.QueryRow(ctx, `SELECT user_id, goal_date, target, achieved FROM daily_goals WHERE id = $1 FOR UPDATE;`, goalID)
	if err = row.Scan(&goal.UserID, &goal.Date, &goal.Target, &goal.Achieved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errvalues.ErrGoalNotFound
		}
		return nil, errors.New("reading goal in tx error: " + err.Error())
	}

	// Achieved is clamped at the target, matching the client behavior of
	// capping the bottle once the daily goal is reached.
	goal.Achieved += quantity * wt.Volume
	if goal.Achieved > goal.Target {
		goal.Achieved = goal.Target
	}
	goal.IsAchieved = goal.Achieved >= goal.Target

	_, err = tx.Exec(ctx, `UPDATE daily_goals SET achieved = $1, is_achieved = $2 WHERE id = $3;`,
		goal.Achieved, goal.IsAchieved, goal.ID,
	)
	if err != nil {
		return nil, errors.New("advancing goal in tx error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing intake tx error: " + err.Error())
	}
	return &goal, nil
}

func (ir *IntakeRepository) ResetDay(ctx context.Context, uid uuid.UUID, day time.Time) (int64, error) {
	tx, err := ir.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("starting reset tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `DELETE FROM water_logs WHERE user_id = $1 AND logged_at >= $2 AND logged_at <= $3;`,
		uid, dates.DayStart(day), dates.DayEnd(day),
	)
	if err != nil {
		return 0, errors.New("deleting day logs in tx error: " + err.Error())
	}
	deleted := ct.RowsAffected()

	// Zero rows is fine: no goal for the day means nothing to reset.
	_, err = tx.Exec(ctx, `UPDATE daily_goals SET achieved = 0, is_achieved = FALSE WHERE user_id = $1 AND goal_date = $2;`,
		uid, dates.DayStart(day),
	)
	if err != nil {
		return 0, errors.New("zeroing goal in tx error: " + err.Error())
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing reset tx error: " + err.Error())
	}
	return deleted, nil
}
