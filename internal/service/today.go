package service

import (
	"fmt"
	"math"
	"time"

	"github.com/Lalitdesh1/BurnFit/internal/model"
)

const dateLayout = "2006-01-02"

// BurnScoreGoalKcal is the daily burn that scores 100.
const BurnScoreGoalKcal = 300

type DailySummary struct {
	Date        string `json:"date"`
	Intake      int    `json:"intake"`
	Burned      int    `json:"burned"`
	Target      int    `json:"target"`
	Net         int    `json:"net"`
	Remaining   int    `json:"remaining"`
	ProgressPct int    `json:"progress_pct"`
	BurnScore   int    `json:"burn_score"`
}

// TodayStats sums the ledger for the calendar date of now, in now's location.
// It is a full scan on every call.
func TodayStats(entries []model.Entry, now time.Time) model.DailyStats {
	return statsForDay(entries, now.Format(dateLayout), now.Location())
}

func statsForDay(entries []model.Entry, date string, loc *time.Location) model.DailyStats {
	stats := model.DailyStats{Date: date}
	for _, e := range entries {
		if entryDate(e, loc) != date {
			continue
		}
		switch e.Kind {
		case model.KindIntake:
			stats.Intake += e.Calories
		case model.KindExercise:
			stats.Burned += e.Calories
		}
	}
	return stats
}

func entryDate(e model.Entry, loc *time.Location) string {
	return time.UnixMilli(e.TimestampMs).In(loc).Format(dateLayout)
}

// BurnScore rates burned calories against BurnScoreGoalKcal, capped at 100.
func BurnScore(burned int) int {
	score := int(math.Round(float64(burned) / BurnScoreGoalKcal * 100))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// Summarize derives net, remaining, intake progress against target, and the
// burn score.
func Summarize(stats model.DailyStats, target int) (DailySummary, error) {
	if target <= 0 {
		return DailySummary{}, fmt.Errorf("summarize %s: %w", stats.Date, ErrInvalidTarget)
	}
	net := stats.Intake - stats.Burned
	progress := int(math.Round(float64(stats.Intake) / float64(target) * 100))
	if progress > 100 {
		progress = 100
	}
	return DailySummary{
		Date:        stats.Date,
		Intake:      stats.Intake,
		Burned:      stats.Burned,
		Target:      target,
		Net:         net,
		Remaining:   target - net,
		ProgressPct: progress,
		BurnScore:   BurnScore(stats.Burned),
	}, nil
}
