package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/pkg/cleanup"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type WaterTypesRepository struct {
	conn PgConnection
}

func NewWaterTypesRepo(cfg DBConfig) *WaterTypesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for waterTypesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterTypesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WaterTypesRepository{
		conn: pool,
	}
}

func NewWaterTypesRepoWithConn(conn PgConnection) *WaterTypesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterTypesRepo: " + err.Error())
	}
	return &WaterTypesRepository{
		conn: conn,
	}
}

func (wtr *WaterTypesRepository) Create(ctx context.Context, wt *entity.WaterType) (uuid.UUID, error) {
	var id uuid.UUID
	row := wtr.conn.QueryRow(ctx, `INSERT INTO water_types (user_id, title, volume, color, notes) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		wt.UserID,
		wt.Title,
		wt.Volume,
		wt.Color,
		wt.Notes,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating water type db error: " + err.Error())
	}
	return id, nil
}

func (wtr *WaterTypesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.WaterType, error) {
	rows, err := wtr.conn.Query(ctx, `SELECT id, user_id, title, volume, color, notes, created_at FROM water_types WHERE user_id = $1 ORDER BY title ASC;`, uid)
	if err != nil {
		return nil, errors.New("listing water types error: " + err.Error())
	}
	defer rows.Close()
	types := make([]*entity.WaterType, 0)
	for rows.Next() {
		wt := entity.WaterType{}
		err = rows.Scan(&wt.ID, &wt.UserID, &wt.Title, &wt.Volume, &wt.Color, &wt.Notes, &wt.CreatedAt)
		if err != nil {
			return nil, errors.New("water type row parsing error: " + err.Error())
		}
		types = append(types, &wt)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected water type rows error: " + rows.Err().Error())
	}
	return types, nil
}

type WaterLogsRepository struct {
	conn PgConnection
}

func NewWaterLogsRepo(cfg DBConfig) *WaterLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for waterLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WaterLogsRepository{
		conn: pool,
	}
}

func NewWaterLogsRepoWithConn(conn PgConnection) *WaterLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for waterLogsRepo: " + err.Error())
	}
	return &WaterLogsRepository{
		conn: conn,
	}
}

func (wlr *WaterLogsRepository) ListByUserAndDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.WaterLog, error) {
	return wlr.ListByUserAndRange(ctx, uid, dates.DayStart(day), dates.DayEnd(day))
}

// ListByUserAndRange is served by the (user_id, logged_at) index; the legacy
// fetch-all-and-filter approach does not survive here.
func (wlr *WaterLogsRepository) ListByUserAndRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.WaterLog, error) {
	rows, err := wlr.conn.Query(ctx, `SELECT id, user_id, water_type_id, quantity, logged_at FROM water_logs WHERE user_id = $1 AND logged_at >= $2 AND logged_at <= $3 ORDER BY logged_at ASC;`,
		uid, from, to,
	)
	if err != nil {
		return nil, errors.New("listing water logs error: " + err.Error())
	}
	defer rows.Close()
	logs := make([]*entity.WaterLog, 0)
	for rows.Next() {
		wl := entity.WaterLog{}
		err = rows.Scan(&wl.ID, &wl.UserID, &wl.WaterTypeID, &wl.Quantity, &wl.LoggedAt)
		if err != nil {
			return nil, errors.New("water log row parsing error: " + err.Error())
		}
		logs = append(logs, &wl)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected water log rows error: " + rows.Err().Error())
	}
	return logs, nil
}
