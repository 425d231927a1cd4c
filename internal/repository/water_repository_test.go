package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

func TestCreateWaterType(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWaterTypesRepoWithConn(conn)
	wt := entity.WaterType{
		UserID: uuid.New(),
		Title:  "Sparkling Water",
		Volume: 350,
		Color:  "#00bfff",
		Notes:  "after lunch",
	}
	id := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO water_types (user_id, title, volume, color, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(wt.UserID, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		result, err := repo.Create(ctx, &wt)
		assert.NoError(t, err)
		assert.Equal(t, id, result)
	})
	t.Run("unexist user", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(wt.UserID, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnError(&pgconn.PgError{
				Code: "23503",
			})
		_, err := repo.Create(ctx, &wt)
		assert.ErrorIs(t, err, errvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(wt.UserID, wt.Title, wt.Volume, wt.Color, wt.Notes).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &wt)
		assert.Error(t, err)
	})
}

func TestGetWaterTypesByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWaterTypesRepoWithConn(conn)
	uid := uuid.New()
	createdAt := time.Date(2025, 6, 13, 9, 30, 0, 0, time.UTC)
	types := []*entity.WaterType{
		{ID: uuid.New(), UserID: uid, Title: "Juice", Volume: 250, Color: "#ffa500", Notes: "", CreatedAt: createdAt},
		{ID: uuid.New(), UserID: uid, Title: "Water", Volume: 500, Color: "#00bfff", Notes: "cold", CreatedAt: createdAt},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, title, volume, color, notes, created_at FROM water_types WHERE user_id = $1 ORDER BY title ASC;`)
	columns := []string{"id", "user_id", "title", "volume", "color", "notes", "created_at"}
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, wt := range types {
			rows.AddRow(wt.ID, wt.UserID, wt.Title, wt.Volume, wt.Color, wt.Notes, wt.CreatedAt)
		}
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Equal(t, types, result)
	})
	t.Run("no types yet", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.GetByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestListWaterLogs(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewWaterLogsRepoWithConn(conn)
	uid := uuid.New()
	day := time.Date(2025, 6, 13, 15, 45, 0, 0, time.Local)
	logs := []*entity.WaterLog{
		{ID: uuid.New(), UserID: uid, WaterTypeID: uuid.New(), Quantity: 2, LoggedAt: time.Date(2025, 6, 13, 8, 0, 0, 0, time.Local)},
		{ID: uuid.New(), UserID: uid, WaterTypeID: uuid.New(), Quantity: 1, LoggedAt: time.Date(2025, 6, 13, 12, 30, 0, 0, time.Local)},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, water_type_id, quantity, logged_at FROM water_logs WHERE user_id = $1 AND logged_at >= $2 AND logged_at <= $3 ORDER BY logged_at ASC;`)
	columns := []string{"id", "user_id", "water_type_id", "quantity", "logged_at"}
	t.Run("day listing covers midnight to midnight", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, wl := range logs {
			rows.AddRow(wl.ID, wl.UserID, wl.WaterTypeID, wl.Quantity, wl.LoggedAt)
		}
		conn.ExpectQuery(query).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnRows(rows)
		result, err := repo.ListByUserAndDay(ctx, uid, day)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("range listing", func(t *testing.T) {
		from := time.Date(2025, 6, 7, 0, 0, 0, 0, time.Local)
		to := time.Date(2025, 6, 13, 23, 59, 59, 0, time.Local)
		rows := pgxmock.NewRows(columns)
		for _, wl := range logs {
			rows.AddRow(wl.ID, wl.UserID, wl.WaterTypeID, wl.Quantity, wl.LoggedAt)
		}
		conn.ExpectQuery(query).
			WithArgs(uid, from, to).
			WillReturnRows(rows)
		result, err := repo.ListByUserAndRange(ctx, uid, from, to)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("empty day", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.ListByUserAndDay(ctx, uid, day)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(uid, dates.DayStart(day), dates.DayEnd(day)).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserAndDay(ctx, uid, day)
		assert.Error(t, err)
	})
}
