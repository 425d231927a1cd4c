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
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

var (
	insertTypeQuery = regexp.QuoteMeta(`INSERT INTO water_types (user_id, title, volume, color, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	insertLogQuery  = regexp.QuoteMeta(`INSERT INTO water_logs (user_id, water_type_id, quantity, logged_at) VALUES ($1, $2, $3, $4);`)
	lockGoalQuery   = regexp.QuoteMeta(`SELECT user_id, goal_date, target, achieved FROM daily_goals WHERE id = $1 FOR UPDATE;`)
	advanceQuery    = regexp.QuoteMeta(`UPDATE daily_goals SET achieved = $1, is_achieved = $2 WHERE id = $3;`)
	deleteLogsQuery = regexp.QuoteMeta(`DELETE FROM water_logs WHERE user_id = $1 AND logged_at >= $2 AND logged_at <= $3;`)
	zeroGoalQuery   = regexp.QuoteMeta(`UPDATE daily_goals SET achieved = 0, is_achieved = FALSE WHERE user_id = $1 AND goal_date = $2;`)
)

func TestAddIntake(t *testing.T) {
	uid := uuid.New()
	goalID := uuid.New()
	typeID := uuid.New()
	goalDate := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	loggedAt := time.Date(2025, 6, 13, 10, 15, 0, 0, time.Local)
	goalColumns := []string{"user_id", "goal_date", "target", "achieved"}

	newWT := func() *entity.WaterType {
		return &entity.WaterType{
			UserID: uid,
			Title:  "Water",
			Volume: 500,
			Color:  "#00bfff",
		}
	}

	t.Run("advances the goal", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		wt := newWT()
		conn.ExpectBegin()
		conn.ExpectQuery(insertTypeQuery).
			WithArgs(uid, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(typeID))
		conn.ExpectExec(insertLogQuery).
			WithArgs(uid, typeID, 2, loggedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(lockGoalQuery).
			WithArgs(goalID).
			WillReturnRows(pgxmock.NewRows(goalColumns).AddRow(uid, goalDate, 3000, 1200))
		conn.ExpectExec(advanceQuery).
			WithArgs(2200, false, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		goal, err := repo.AddIntake(context.Background(), wt, 2, loggedAt, goalID)
		assert.NoError(t, err)
		assert.Equal(t, typeID, wt.ID)
		assert.Equal(t, 2200, goal.Achieved)
		assert.False(t, goal.IsAchieved)
	})

	t.Run("clamps achieved at the target", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		wt := newWT()
		conn.ExpectBegin()
		conn.ExpectQuery(insertTypeQuery).
			WithArgs(uid, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(typeID))
		conn.ExpectExec(insertLogQuery).
			WithArgs(uid, typeID, 4, loggedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(lockGoalQuery).
			WithArgs(goalID).
			WillReturnRows(pgxmock.NewRows(goalColumns).AddRow(uid, goalDate, 3000, 1500))
		conn.ExpectExec(advanceQuery).
			WithArgs(3000, true, goalID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		goal, err := repo.AddIntake(context.Background(), wt, 4, loggedAt, goalID)
		assert.NoError(t, err)
		assert.Equal(t, 3000, goal.Achieved)
		assert.True(t, goal.IsAchieved)
	})

	t.Run("unexist user rolls back", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		wt := newWT()
		conn.ExpectBegin()
		conn.ExpectQuery(insertTypeQuery).
			WithArgs(uid, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		conn.ExpectRollback()
		_, err = repo.AddIntake(context.Background(), wt, 2, loggedAt, goalID)
		assert.ErrorIs(t, err, errvalues.ErrUserNotFound)
	})

	t.Run("unexist goal rolls back", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		wt := newWT()
		conn.ExpectBegin()
		conn.ExpectQuery(insertTypeQuery).
			WithArgs(uid, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(typeID))
		conn.ExpectExec(insertLogQuery).
			WithArgs(uid, typeID, 2, loggedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(lockGoalQuery).
			WithArgs(goalID).
			WillReturnError(pgx.ErrNoRows)
		conn.ExpectRollback()
		_, err = repo.AddIntake(context.Background(), wt, 2, loggedAt, goalID)
		assert.ErrorIs(t, err, errvalues.ErrGoalNotFound)
	})

	t.Run("log insert failure rolls back", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		wt := newWT()
		conn.ExpectBegin()
		conn.ExpectQuery(insertTypeQuery).
			WithArgs(uid, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(typeID))
		conn.ExpectExec(insertLogQuery).
			WithArgs(uid, typeID, 2, loggedAt).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		_, err = repo.AddIntake(context.Background(), wt, 2, loggedAt, goalID)
		assert.Error(t, err)
	})
}

func TestResetDay(t *testing.T) {
	uid := uuid.New()
	day := time.Date(2025, 6, 13, 18, 0, 0, 0, time.Local)

	t.Run("wipes logs and zeroes the goal", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		conn.ExpectBegin()
		conn.ExpectExec(deleteLogsQuery).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnResult(pgxmock.NewResult("DELETE", 3))
		conn.ExpectExec(zeroGoalQuery).
			WithArgs(uid, dates.DayStart(day)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		deleted, err := repo.ResetDay(context.Background(), uid, day)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("nothing logged is not an error", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		conn.ExpectBegin()
		conn.ExpectExec(deleteLogsQuery).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		conn.ExpectExec(zeroGoalQuery).
			WithArgs(uid, dates.DayStart(day)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		conn.ExpectCommit()
		deleted, err := repo.ResetDay(context.Background(), uid, day)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("delete failure rolls back", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		repo := repository.NewIntakeRepoWithConn(conn)
		conn.ExpectBegin()
		conn.ExpectExec(deleteLogsQuery).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		_, err = repo.ResetDay(context.Background(), uid, day)
		assert.Error(t, err)
	})
}
