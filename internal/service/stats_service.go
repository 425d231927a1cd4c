package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/syahrillhaiqal/drinkify/internal/cache"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/internal/stats"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type StatsService struct {
	goalsRepo repository.GoalsRepositoryI
	typesRepo repository.WaterTypesRepositoryI
	logsRepo  repository.WaterLogsRepositoryI
	cache     *cache.Cache
}

func NewStatsService(
	goalsRepo repository.GoalsRepositoryI,
	typesRepo repository.WaterTypesRepositoryI,
	logsRepo repository.WaterLogsRepositoryI,
	c *cache.Cache,
) *StatsService {
	if goalsRepo == nil || typesRepo == nil || logsRepo == nil {
		log.Fatal("on stats service provided nil repos")
	}
	return &StatsService{
		goalsRepo: goalsRepo,
		typesRepo: typesRepo,
		logsRepo:  logsRepo,
		cache:     c,
	}
}

// achievedDates reads through the cache; the services invalidate the key on
// every goal mutation that can flip a day's achievement.
func (ss *StatsService) achievedDates(ctx context.Context, uid uuid.UUID) ([]time.Time, error) {
	key := achievedDatesKey(uid)
	var cached []time.Time
	if ss.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}
	ds, err := ss.goalsRepo.ListAchievedDates(ctx, uid)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	ss.cache.SetJSON(ctx, key, ds)
	return ds, nil
}

func (ss *StatsService) Calendar(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.CalendarReport, error) {
	ds, err := ss.achievedDates(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.CalendarReport{
		CurrentStreak: stats.CurrentStreak(ds, today),
		Spans:         stats.Spans(ds),
	}, nil
}

func (ss *StatsService) Chart(ctx context.Context, uid uuid.UUID, period stats.Period, now time.Time) (*entity.ChartSeries, error) {
	if !stats.ValidPeriod(period) {
		return nil, errors.New("unknown chart period: " + string(period))
	}
	logs, err := ss.logsRepo.ListByUserAndRange(ctx, uid, stats.WindowStart(period, now), dates.DayEnd(now))
	if err != nil {
		return nil, errors.New("water logs repository error: " + err.Error())
	}
	types, err := ss.typesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("water types repository error: " + err.Error())
	}
	series := stats.BuildSeries(period, now, logs, types)
	return &series, nil
}
