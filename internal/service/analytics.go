package service

import (
	"fmt"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

type HistoryReport struct {
	FromDate           string             `json:"from_date"`
	ToDate             string             `json:"to_date"`
	Target             int                `json:"target"`
	TotalIntake        int                `json:"total_intake"`
	TotalBurned        int                `json:"total_burned"`
	DaysWithEntries    int                `json:"days_with_entries"`
	AverageNetPerDay   float64            `json:"avg_net_per_day"`
	WithinTargetDays   int                `json:"within_target_days"`
	TargetTolerancePct float64            `json:"target_tolerance_pct"`
	Streaks            HistoryStreaks     `json:"streaks"`
	Days               []model.DailyStats `json:"days"`
}

type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type HistoryStreaks struct {
	Logging      Streak `json:"logging"`
	Exercise     Streak `json:"exercise"`
	WithinTarget Streak `json:"within_target"`
}

// RangeStats returns one DailyStats per calendar day from from to to,
// inclusive, oldest first. Days without entries are zero rows.
func RangeStats(entries []model.Entry, from, to time.Time) ([]model.DailyStats, error) {
	from = beginningOfDay(from)
	to = beginningOfDay(to.In(from.Location()))
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}

	byDate := map[string]*model.DailyStats{}
	for _, e := range entries {
		date := entryDate(e, from.Location())
		s, ok := byDate[date]
		if !ok {
			s = &model.DailyStats{Date: date}
			byDate[date] = s
		}
		switch e.Kind {
		case model.KindIntake:
			s.Intake += e.Calories
		case model.KindExercise:
			s.Burned += e.Calories
		}
	}

	days := make([]model.DailyStats, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		if s, ok := byDate[date]; ok {
			days = append(days, *s)
			continue
		}
		days = append(days, model.DailyStats{Date: date})
	}
	return days, nil
}

// History summarizes the last n days ending on now. A day counts as within
// target when its net intake is inside tolerance of target.
func History(entries []model.Entry, now time.Time, n int, target int, tolerance float64) (*HistoryReport, error) {
	if err := validatePositiveInt("days", n); err != nil {
		return nil, err
	}
	if target <= 0 {
		return nil, ErrInvalidTarget
	}
	from := now.AddDate(0, 0, -(n - 1))
	days, err := RangeStats(entries, from, now)
	if err != nil {
		return nil, err
	}

	report := &HistoryReport{
		FromDate:           days[0].Date,
		ToDate:             days[len(days)-1].Date,
		Target:             target,
		TargetTolerancePct: tolerance * 100,
		Days:               days,
	}
	netTotal := 0
	for _, d := range days {
		report.TotalIntake += d.Intake
		report.TotalBurned += d.Burned
		if d.Intake == 0 && d.Burned == 0 {
			continue
		}
		report.DaysWithEntries++
		net := d.Intake - d.Burned
		netTotal += net
		if AdherenceWithin(float64(net), float64(target), tolerance) {
			report.WithinTargetDays++
		}
	}
	if report.DaysWithEntries > 0 {
		report.AverageNetPerDay = float64(netTotal) / float64(report.DaysWithEntries)
	}
	report.Streaks = computeStreaks(days, target, tolerance)
	return report, nil
}

func computeStreaks(days []model.DailyStats, target int, tolerance float64) HistoryStreaks {
	logCurrent, logLongest := computeBooleanStreak(days, func(d model.DailyStats) bool {
		return d.Intake > 0
	})
	exCurrent, exLongest := computeBooleanStreak(days, func(d model.DailyStats) bool {
		return d.Burned > 0
	})
	targetCurrent, targetLongest := computeBooleanStreak(days, func(d model.DailyStats) bool {
		if d.Intake == 0 && d.Burned == 0 {
			return false
		}
		return AdherenceWithin(float64(d.Intake-d.Burned), float64(target), tolerance)
	})
	return HistoryStreaks{
		Logging:      Streak{Current: logCurrent, Longest: logLongest},
		Exercise:     Streak{Current: exCurrent, Longest: exLongest},
		WithinTarget: Streak{Current: targetCurrent, Longest: targetLongest},
	}
}

// computeBooleanStreak expects days oldest first; current counts back from
// the last day.
func computeBooleanStreak(days []model.DailyStats, predicate func(model.DailyStats) bool) (current, longest int) {
	run := 0
	for i := range days {
		if predicate(days[i]) {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	for i := len(days) - 1; i >= 0; i-- {
		if predicate(days[i]) {
			current++
			continue
		}
		break
	}
	return current, longest
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
