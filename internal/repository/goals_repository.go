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
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type GoalsRepository struct {
	conn PgConnection
}

func NewGoalsRepo(cfg DBConfig) *GoalsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for goalsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &GoalsRepository{
		conn: pool,
	}
}

func NewGoalsRepoWithConn(conn PgConnection) *GoalsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for goalsRepo: " + err.Error())
	}
	return &GoalsRepository{
		conn: conn,
	}
}

func (gr *GoalsRepository) Create(ctx context.Context, goal *entity.DailyGoal) (uuid.UUID, error) {
	var id uuid.UUID
	row := gr.conn.QueryRow(ctx, `INSERT INTO daily_goals (user_id, goal_date, target, achieved, is_achieved) VALUES ($1, $2, $3, 0, FALSE) RETURNING id;`,
		goal.UserID,
		goal.Date,
		goal.Target,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on (user_id, goal_date)
			case "23505":
				return uuid.UUID{}, errvalues.ErrGoalExists
			// FK violation
			case "23503":
				return uuid.UUID{}, errvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating goal db error: " + err.Error())
	}
	return id, nil
}

func (gr *GoalsRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyGoal, error) {
	var goal entity.DailyGoal
	row := gr.conn.QueryRow(ctx, `SELECT id, user_id, goal_date, target, achieved, is_achieved FROM daily_goals WHERE user_id = $1 AND goal_date = $2;`, uid, day)
	if err := row.Scan(&goal.ID, &goal.UserID, &goal.Date, &goal.Target, &goal.Achieved, &goal.IsAchieved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting goal by user and date error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) GetLatest(ctx context.Context, uid uuid.UUID) (*entity.DailyGoal, error) {
	var goal entity.DailyGoal
	row := gr.conn.QueryRow(ctx, `SELECT id, user_id, goal_date, target, achieved, is_achieved FROM daily_goals WHERE user_id = $1 ORDER BY goal_date DESC LIMIT 1;`, uid)
	if err := row.Scan(&goal.ID, &goal.UserID, &goal.Date, &goal.Target, &goal.Achieved, &goal.IsAchieved); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errvalues.ErrGoalNotFound
		}
		return nil, errors.New("getting latest goal error: " + err.Error())
	}
	return &goal, nil
}

func (gr *GoalsRepository) UpdateTarget(ctx context.Context, goalID uuid.UUID, target int) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE daily_goals SET target = $1, is_achieved = achieved >= $1 WHERE id = $2;`,
		target, goalID,
	)
	if err != nil {
		return errors.New("updating goal target error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errvalues.ErrGoalNotFound
	}
	return nil
}

// UpdateAchieved recomputes the achievement flag against the target stored in
// the row, never a caller-supplied one.
func (gr *GoalsRepository) UpdateAchieved(ctx context.Context, goalID uuid.UUID, achieved int) error {
	ct, err := gr.conn.Exec(ctx, `UPDATE daily_goals SET achieved = $1, is_achieved = $1 >= target WHERE id = $2;`,
		achieved, goalID,
	)
	if err != nil {
		return errors.New("updating goal achieved error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errvalues.ErrGoalNotFound
	}
	return nil
}

func (gr *GoalsRepository) ListAchievedDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	rows, err := gr.conn.Query(ctx, `SELECT goal_date FROM daily_goals WHERE user_id = $1 AND is_achieved = TRUE ORDER BY goal_date ASC;`, uid)
	if err != nil {
		return nil, errors.New("listing achieved dates error: " + err.Error())
	}
	defer rows.Close()
	result := make([]time.Time, 0)
	for rows.Next() {
		var d time.Time
		if err = rows.Scan(&d); err != nil {
			return nil, errors.New("achieved date row parsing error: " + err.Error())
		}
		result = append(result, d)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achieved dates rows error: " + rows.Err().Error())
	}
	return result, nil
}
