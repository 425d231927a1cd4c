// Package stats derives calendar highlighting, the current streak and chart
// series from achieved-goal dates and raw water logs. Everything here is pure
// computation over values the services fetch.
package stats

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/syahrillhaiqal/drinkify/pkg/dates"
	"github.com/syahrillhaiqal/drinkify/pkg/entity"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

const (
	dailyDays     = 7
	weeklyWeeks   = 4
	monthlyMonths = 6
)

// NoDataLabel is the single placeholder bucket emitted when every bucket in
// the window is zero, so the charting client never renders an all-zero series.
const NoDataLabel = "No Data"

func ValidPeriod(p Period) bool {
	return p == PeriodDaily || p == PeriodWeekly || p == PeriodMonthly
}

func dateSet(ds []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(ds))
	for _, d := range ds {
		set[dates.FormatISO(d)] = struct{}{}
	}
	return set
}

// Spans classifies every achieved date by whether its calendar neighbors are
// achieved too, which drives the calendar's period highlighting.
func Spans(ds []time.Time) map[string]entity.SpanRole {
	set := dateSet(ds)
	spans := make(map[string]entity.SpanRole, len(set))
	for _, d := range ds {
		_, hasPrev := set[dates.FormatISO(d.AddDate(0, 0, -1))]
		_, hasNext := set[dates.FormatISO(d.AddDate(0, 0, 1))]
		var role entity.SpanRole
		switch {
		case hasPrev && hasNext:
			role = entity.SpanRunMiddle
		case hasNext:
			role = entity.SpanRunStart
		case hasPrev:
			role = entity.SpanRunEnd
		default:
			role = entity.SpanIsolated
		}
		spans[dates.FormatISO(d)] = role
	}
	return spans
}

// CurrentStreak counts consecutive achieved days ending at today. A day with
// no entry yet does not break the streak until it is over: when today is
// absent the walk starts from yesterday instead. Each date is counted at most
// once.
func CurrentStreak(ds []time.Time, today time.Time) int {
	set := dateSet(ds)
	cur := dates.DayStart(today)
	if _, ok := set[dates.FormatISO(cur)]; !ok {
		cur = cur.AddDate(0, 0, -1)
	}
	streak := 0
	for {
		if _, ok := set[dates.FormatISO(cur)]; !ok {
			return streak
		}
		streak++
		cur = cur.AddDate(0, 0, -1)
	}
}

// WindowStart is the oldest instant a period's chart can reach, used to bound
// the log fetch.
func WindowStart(p Period, now time.Time) time.Time {
	day := dates.DayStart(now)
	switch p {
	case PeriodWeekly:
		return weekStart(day, weeklyWeeks-1)
	case PeriodMonthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, -(monthlyMonths - 1), 0)
	default:
		return day.AddDate(0, 0, -(dailyDays - 1))
	}
}

// weekStart is the Sunday opening the week weeksAgo weeks before day's week.
func weekStart(day time.Time, weeksAgo int) time.Time {
	return day.AddDate(0, 0, -weeksAgo*7-int(day.Weekday()))
}

// BuildSeries buckets total volume (quantity x resolved type volume) per
// period bucket, oldest first. A log whose water type cannot be resolved
// contributes zero rather than failing the whole series.
func BuildSeries(p Period, now time.Time, logs []*entity.WaterLog, types []*entity.WaterType) entity.ChartSeries {
	volumeByType := make(map[uuid.UUID]int, len(types))
	for _, wt := range types {
		volumeByType[wt.ID] = wt.Volume
	}
	logVolume := func(wl *entity.WaterLog) int {
		return wl.Quantity * volumeByType[wl.WaterTypeID]
	}

	day := dates.DayStart(now)
	var buckets []entity.ChartBucket

	switch p {
	case PeriodWeekly:
		for i := weeklyWeeks - 1; i >= 0; i-- {
			start := weekStart(day, i)
			end := dates.DayEnd(start.AddDate(0, 0, 6))
			total := 0
			for _, wl := range logs {
				if !wl.LoggedAt.Before(start) && !wl.LoggedAt.After(end) {
					total += logVolume(wl)
				}
			}
			buckets = append(buckets, entity.ChartBucket{
				Label:  fmt.Sprintf("W%d", weeklyWeeks-i),
				Volume: total,
			})
		}
	case PeriodMonthly:
		for i := monthlyMonths - 1; i >= 0; i-- {
			month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, -i, 0)
			total := 0
			for _, wl := range logs {
				if wl.LoggedAt.Year() == month.Year() && wl.LoggedAt.Month() == month.Month() {
					total += logVolume(wl)
				}
			}
			buckets = append(buckets, entity.ChartBucket{
				Label:  month.Format("Jan"),
				Volume: total,
			})
		}
	default:
		for i := dailyDays - 1; i >= 0; i-- {
			d := day.AddDate(0, 0, -i)
			total := 0
			for _, wl := range logs {
				if dates.SameDay(wl.LoggedAt, d) {
					total += logVolume(wl)
				}
			}
			buckets = append(buckets, entity.ChartBucket{
				Label:  d.Format("Mon"),
				Volume: total,
			})
		}
	}

	empty := true
	for _, b := range buckets {
		if b.Volume != 0 {
			empty = false
			break
		}
	}
	if empty {
		buckets = []entity.ChartBucket{{Label: NoDataLabel, Volume: 0}}
	}
	return entity.ChartSeries{
		Period:  string(p),
		Buckets: buckets,
	}
}
