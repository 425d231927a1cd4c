package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

func TestCreateGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := entity.DailyGoal{
		UserID: uuid.New(),
		Date:   time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		Target: 3000,
	}
	id := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO daily_goals (user_id, goal_date, target, achieved, is_achieved) VALUES ($1, $2, $3, 0, FALSE) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date, goal.Target).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, &goal)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("day already has a goal", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date, goal.Target).
			WillReturnError(&pgconn.PgError{
				Code: "23505",
			})
		_, err := repo.Create(ctx, &goal)
		assert.ErrorIs(t, err, errvalues.ErrGoalExists)
	})
	t.Run("unexist user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date, goal.Target).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		_, err := repo.Create(ctx, &goal)
		assert.ErrorIs(t, err, errvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date, goal.Target).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &goal)
		assert.Error(t, err)
	})
}

func TestGetGoalByUserAndDate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := entity.DailyGoal{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		Target:     3000,
		Achieved:   1200,
		IsAchieved: false,
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, goal_date, target, achieved, is_achieved FROM daily_goals WHERE user_id = $1 AND goal_date = $2;`)
	columns := []string{"id", "user_id", "goal_date", "target", "achieved", "is_achieved"}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(goal.ID, goal.UserID, goal.Date, goal.Target, goal.Achieved, goal.IsAchieved))
		result, err := repo.GetByUserAndDate(ctx, goal.UserID, goal.Date)
		assert.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserAndDate(ctx, goal.UserID, goal.Date)
		assert.ErrorIs(t, err, errvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID, goal.Date).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserAndDate(ctx, goal.UserID, goal.Date)
		assert.Error(t, err)
	})
}

func TestGetLatestGoal(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goal := entity.DailyGoal{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Date:       time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Target:     2500,
		Achieved:   2500,
		IsAchieved: true,
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, goal_date, target, achieved, is_achieved FROM daily_goals WHERE user_id = $1 ORDER BY goal_date DESC LIMIT 1;`)
	columns := []string{"id", "user_id", "goal_date", "target", "achieved", "is_achieved"}
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(goal.ID, goal.UserID, goal.Date, goal.Target, goal.Achieved, goal.IsAchieved))
		result, err := repo.GetLatest(ctx, goal.UserID)
		assert.NoError(t, err)
		assert.Equal(t, goal, *result)
	})
	t.Run("no goals at all", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetLatest(ctx, goal.UserID)
		assert.ErrorIs(t, err, errvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(goal.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetLatest(ctx, goal.UserID)
		assert.Error(t, err)
	})
}

func TestUpdateGoalTarget(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goalID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE daily_goals SET target = $1, is_achieved = achieved >= $1 WHERE id = $2;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(2000, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateTarget(ctx, goalID, 2000)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(2000, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateTarget(ctx, goalID, 2000)
		assert.ErrorIs(t, err, errvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(2000, goalID).
			WillReturnError(errors.New("db error"))
		err := repo.UpdateTarget(ctx, goalID, 2000)
		assert.Error(t, err)
	})
}

func TestUpdateGoalAchieved(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	goalID := uuid.New()
	query := regexp.QuoteMeta(`UPDATE daily_goals SET achieved = $1, is_achieved = $1 >= target WHERE id = $2;`)
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(1500, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateAchieved(ctx, goalID, 1500)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(1500, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateAchieved(ctx, goalID, 1500)
		assert.ErrorIs(t, err, errvalues.ErrGoalNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(1500, goalID).
			WillReturnError(errors.New("db error"))
		err := repo.UpdateAchieved(ctx, goalID, 1500)
		assert.Error(t, err)
	})
}

func TestListAchievedDates(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewGoalsRepoWithConn(conn)
	uid := uuid.New()
	days := []time.Time{
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
	}
	query := regexp.QuoteMeta(`SELECT goal_date FROM daily_goals WHERE user_id = $1 AND is_achieved = TRUE ORDER BY goal_date ASC;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"goal_date"})
		for _, d := range days {
			rows.AddRow(d)
		}
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.ListAchievedDates(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, days, result)
	})
	t.Run("nothing achieved yet", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows([]string{"goal_date"}))
		result, err := repo.ListAchievedDates(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.ListAchievedDates(ctx, uid)
		assert.Error(t, err)
	})
}
