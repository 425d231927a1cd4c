package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/syahrillhaiqal/drinkify/internal/cache"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

// achievedDatesKey is shared by every service that can change whether a day
// counts as achieved.
func achievedDatesKey(uid uuid.UUID) string {
	return "achieved-dates:" + uid.String()
}

type GoalService struct {
	repo  repository.GoalsRepositoryI
	cache *cache.Cache
}

func NewGoalService(goalsRepo repository.GoalsRepositoryI, c *cache.Cache) *GoalService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalService{
		repo:  goalsRepo,
		cache: c,
	}
}

// TodayGoal looks up today's goal and lazily seeds it from the most recent
// prior goal when the day has none yet. A brand-new user with no history gets
// ErrNoGoalHistory so the client can ask for an explicit target.
func (gs *GoalService) TodayGoal(ctx context.Context, uid uuid.UUID, today time.Time) (*entity.DailyGoal, error) {
	day := dates.DayStart(today)
	goal, err := gs.repo.GetByUserAndDate(ctx, uid, day)
	if err == nil {
		return goal, nil
	}
	if !errors.Is(err, errvalues.ErrGoalNotFound) {
		return nil, errors.New("goals repository error: " + err.Error())
	}

	latest, err := gs.repo.GetLatest(ctx, uid)
	if err != nil {
		if errors.Is(err, errvalues.ErrGoalNotFound) {
			return nil, errvalues.ErrNoGoalHistory
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}

	id, err := gs.repo.Create(ctx, &entity.DailyGoal{
		UserID: uid,
		Date:   day,
		Target: latest.Target,
	})
	if err != nil {
		// Another device may have seeded the day concurrently; the
		// uniqueness constraint turns that race into a lookup.
		if errors.Is(err, errvalues.ErrGoalExists) {
			goal, err = gs.repo.GetByUserAndDate(ctx, uid, day)
			if err != nil {
				return nil, errors.New("goals repository error: " + err.Error())
			}
			return goal, nil
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return &entity.DailyGoal{
		ID:     id,
		UserID: uid,
		Date:   day,
		Target: latest.Target,
	}, nil
}

func (gs *GoalService) SetTodayTarget(ctx context.Context, uid uuid.UUID, today time.Time, target int) (*entity.DailyGoal, error) {
	if target <= 0 {
		return nil, errvalues.ErrInvalidTarget
	}
	day := dates.DayStart(today)
	goal, err := gs.repo.GetByUserAndDate(ctx, uid, day)
	if err != nil {
		if !errors.Is(err, errvalues.ErrGoalNotFound) {
			return nil, errors.New("goals repository error: " + err.Error())
		}
		id, err := gs.repo.Create(ctx, &entity.DailyGoal{
			UserID: uid,
			Date:   day,
			Target: target,
		})
		if err == nil {
			return &entity.DailyGoal{
				ID:     id,
				UserID: uid,
				Date:   day,
				Target: target,
			}, nil
		}
		if !errors.Is(err, errvalues.ErrGoalExists) {
			return nil, errors.New("goals repository error: " + err.Error())
		}
		// Lost the creation race; fall through to an update of the row
		// that won.
		goal, err = gs.repo.GetByUserAndDate(ctx, uid, day)
		if err != nil {
			return nil, errors.New("goals repository error: " + err.Error())
		}
	}

	if err = gs.repo.UpdateTarget(ctx, goal.ID, target); err != nil {
		if errors.Is(err, errvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.Target = target
	goal.IsAchieved = goal.Achieved >= target
	// A target change can flip today's achievement, so the cached
	// achieved-date set is stale.
	gs.cache.Invalidate(ctx, achievedDatesKey(uid))
	return goal, nil
}
