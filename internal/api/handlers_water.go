package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/syahrillhaiqal/drinkify/internal/errvalues"
	"github.com/syahrillhaiqal/drinkify/internal/service"
	"github.com/syahrillhaiqal/drinkify/internal/stats"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
	"github.com/syahrillhaiqal/drinkify/pkg/httputil"
)

type SetTargetRequest struct {
	Target int `json:"target"`
}

type AddWaterRequest struct {
	Title    string `json:"title"`
	Volume   int    `json:"volume"`
	Color    string `json:"color"`
	Notes    string `json:"notes"`
	Quantity int    `json:"quantity"`
	// Optional timestamp in "DD/MM/YYYY, h:mm:ss AM" form; empty means now
	LoggedAt string `json:"logged_at"`
}

type GoalResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Target     int    `json:"target"`
	Achieved   int    `json:"achieved"`
	IsAchieved bool   `json:"is_achieved"`
}

type WaterTypeResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Volume int    `json:"volume"`
	Color  string `json:"color"`
	Notes  string `json:"notes"`
}

type AddWaterResponse struct {
	WaterType WaterTypeResponse `json:"water_type"`
	Goal      GoalResponse      `json:"goal"`
	AddedML   int               `json:"added_ml"`
}

type WaterLogResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Color    string `json:"color"`
	Volume   int    `json:"volume"`
	Quantity int    `json:"quantity"`
	TotalML  int    `json:"total_ml"`
	Notes    string `json:"notes"`
	LoggedAt string `json:"logged_at"`
}

type GetWaterLogsResponse struct {
	Date string             `json:"date"`
	Logs []WaterLogResponse `json:"logs"`
}

func goalResponse(goal *entity.DailyGoal) GoalResponse {
	return GoalResponse{
		ID:         goal.ID.String(),
		Date:       dates.FormatDate(goal.Date),
		Target:     goal.Target,
		Achieved:   goal.Achieved,
		IsAchieved: goal.IsAchieved,
	}
}

func waterTypeResponse(wt *entity.WaterType) WaterTypeResponse {
	return WaterTypeResponse{
		ID:     wt.ID.String(),
		Title:  wt.Title,
		Volume: wt.Volume,
		Color:  wt.Color,
		Notes:  wt.Notes,
	}
}

func (s *Server) TodayGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("today goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.TodayGoal(ctx, uid, time.Now())
	if err != nil {
		if errors.Is(err, errvalues.ErrNoGoalHistory) {
			logger.Error("today goal error: user never set a goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no goal has been set yet", nil)
			return
		}
		logger.Error("today goal error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting today's goal", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goalResponse(goal))
	logger.Info("today's goal provided")
}

func (s *Server) SetTodayTarget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set target error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SetTargetRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("set target error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalService.SetTodayTarget(ctx, uid, time.Now(), req.Target)
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrInvalidTarget):
			logger.Error("set target error: non-positive target")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "target must be a positive number of milliliters", nil)
		case errors.Is(err, errvalues.ErrUserNotFound):
			logger.Error("set target error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("set target error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while setting target", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goalResponse(goal))
	logger.Info("today's target set")
}

func (s *Server) AddWater(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("add water error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req AddWaterRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add water error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var loggedAt time.Time
	if req.LoggedAt != "" {
		loggedAt, err = dates.ParseTimestamp(req.LoggedAt)
		if err != nil {
			logger.Error("add water error: malformed timestamp")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid logged_at timestamp", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	result, err := s.waterService.AddIntake(ctx, uid, &service.AddIntakeRequest{
		Title:    req.Title,
		Volume:   req.Volume,
		Color:    req.Color,
		Notes:    req.Notes,
		Quantity: req.Quantity,
		LoggedAt: loggedAt,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, errvalues.ErrValidation):
			logger.Error("add water error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid water fields", err)
		case errors.Is(err, errvalues.ErrGoalNotFound):
			logger.Error("add water error: no goal for today")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no goal for today", nil)
		case errors.Is(err, errvalues.ErrGoalAlreadyMet):
			logger.Error("add water error: goal already achieved")
			httputil.WriteErrorResponse(w, http.StatusConflict, "daily goal already achieved", nil)
		case errors.Is(err, errvalues.ErrUserNotFound):
			logger.Error("add water error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("add water error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding water", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, AddWaterResponse{
		WaterType: waterTypeResponse(result.WaterType),
		Goal:      goalResponse(result.Goal),
		AddedML:   result.AddedML,
	})
	logger.Info("water added")
}

func (s *Server) GetWaterLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err = dates.ParseDate(raw)
		if err != nil {
			logger.Error("get logs error: malformed date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected DD/MM/YYYY", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	entries, err := s.waterService.LogsForDate(ctx, uid, day)
	if err != nil {
		logger.Error("get logs error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting water logs", nil)
		return
	}
	logs := make([]WaterLogResponse, 0, len(entries))
	for _, entry := range entries {
		resp := WaterLogResponse{
			ID:       entry.Log.ID.String(),
			Quantity: entry.Log.Quantity,
			LoggedAt: dates.FormatTimestamp(entry.Log.LoggedAt),
		}
		if entry.Type != nil {
			resp.Title = entry.Type.Title
			resp.Color = entry.Type.Color
			resp.Volume = entry.Type.Volume
			resp.Notes = entry.Type.Notes
			resp.TotalML = entry.Type.Volume * entry.Log.Quantity
		}
		logs = append(logs, resp)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetWaterLogsResponse{
		Date: dates.FormatDate(day),
		Logs: logs,
	})
	logger.Info("water logs provided")
}

func (s *Server) GetWaterTypes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get types error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	types, err := s.waterService.WaterTypes(ctx, uid)
	if err != nil {
		logger.Error("get types error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting water types", nil)
		return
	}
	resp := make([]WaterTypeResponse, 0, len(types))
	for _, wt := range types {
		resp = append(resp, waterTypeResponse(wt))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"types": resp})
	logger.Info("water types provided")
}

func (s *Server) ResetToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reset today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	removed, err := s.waterService.ResetToday(ctx, uid, time.Now())
	if err != nil {
		logger.Error("reset today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting today", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"removed_logs": removed})
	logger.Info("today's intake reset")
}

func (s *Server) GetCalendar(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get calendar error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	report, err := s.statsService.Calendar(ctx, uid, time.Now())
	if err != nil {
		logger.Error("get calendar error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	logger.Info("calendar provided")
}

func (s *Server) GetChart(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get chart error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	period := stats.Period(r.URL.Query().Get("period"))
	if period == "" {
		period = stats.PeriodDaily
	}
	if !stats.ValidPeriod(period) {
		logger.Error("get chart error: unknown period")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be daily, weekly or monthly", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	series, err := s.statsService.Chart(ctx, uid, period, time.Now())
	if err != nil {
		logger.Error("get chart error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while building chart", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, series)
	logger.Info("chart provided")
}
