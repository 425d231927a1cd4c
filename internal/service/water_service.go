package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/syahrillhaiqal/drinkify/internal/cache"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/internal/repository"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type WaterService struct {
	goalsRepo repository.GoalsRepositoryI
	typesRepo repository.WaterTypesRepositoryI
	logsRepo  repository.WaterLogsRepositoryI
	intake    repository.IntakeRepositoryI
	cache     *cache.Cache
}

func NewWaterService(
	goalsRepo repository.GoalsRepositoryI,
	typesRepo repository.WaterTypesRepositoryI,
	logsRepo repository.WaterLogsRepositoryI,
	intakeRepo repository.IntakeRepositoryI,
	c *cache.Cache,
) *WaterService {
	if goalsRepo == nil || typesRepo == nil || logsRepo == nil || intakeRepo == nil {
		log.Fatal("on water service provided nil repos")
	}
	return &WaterService{
		goalsRepo: goalsRepo,
		typesRepo: typesRepo,
		logsRepo:  logsRepo,
		intake:    intakeRepo,
		cache:     c,
	}
}

// AddIntake runs the add-water flow against today's goal. The whole flow is a
// single transaction in the intake repository, so a failure leaves no trace.
// Once the day's goal is met further intakes are refused, matching the client
// behavior of celebrating instead of logging.
func (ws *WaterService) AddIntake(ctx context.Context, uid uuid.UUID, req *AddIntakeRequest, now time.Time) (*IntakeResult, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errvalues.ErrValidation
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}

	goal, err := ws.goalsRepo.GetByUserAndDate(ctx, uid, dates.DayStart(now))
	if err != nil {
		if errors.Is(err, errvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.Achieved >= goal.Target {
		return nil, errvalues.ErrGoalAlreadyMet
	}

	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = now
	}
	wt := &entity.WaterType{
		UserID: uid,
		Title:  req.Title,
		Volume: req.Volume,
		Color:  req.Color,
		Notes:  req.Notes,
	}
	updated, err := ws.intake.AddIntake(ctx, wt, req.Quantity, loggedAt, goal.ID)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrGoalNotFound), errors.Is(err, errvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("intake repository error: " + err.Error())
	}
	if updated.IsAchieved {
		ws.cache.Invalidate(ctx, achievedDatesKey(uid))
	}
	return &IntakeResult{
		WaterType: wt,
		Goal:      updated,
		AddedML:   req.Quantity * req.Volume,
	}, nil
}

func (ws *WaterService) LogsForDate(ctx context.Context, uid uuid.UUID, day time.Time) ([]LogEntry, error) {
	logs, err := ws.logsRepo.ListByUserAndDay(ctx, uid, day)
	if err != nil {
		return nil, errors.New("water logs repository error: " + err.Error())
	}
	types, err := ws.typesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("water types repository error: " + err.Error())
	}
	byID := make(map[uuid.UUID]*entity.WaterType, len(types))
	for _, wt := range types {
		byID[wt.ID] = wt
	}
	entries := make([]LogEntry, 0, len(logs))
	for _, wl := range logs {
		// A missing type reference renders as a zero-volume entry, it
		// never fails the listing.
		entries = append(entries, LogEntry{
			Log:  wl,
			Type: byID[wl.WaterTypeID],
		})
	}
	return entries, nil
}

func (ws *WaterService) WaterTypes(ctx context.Context, uid uuid.UUID) ([]*entity.WaterType, error) {
	types, err := ws.typesRepo.GetByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("water types repository error: " + err.Error())
	}
	return types, nil
}

func (ws *WaterService) ResetToday(ctx context.Context, uid uuid.UUID, now time.Time) (int64, error) {
	deleted, err := ws.intake.ResetDay(ctx, uid, now)
	if err != nil {
		return 0, errors.New("intake repository error: " + err.Error())
	}
	ws.cache.Invalidate(ctx, achievedDatesKey(uid))
	return deleted, nil
}
