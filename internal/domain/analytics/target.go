package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var weeksPerMonth = decimal.NewFromInt(4)

// TargetProgress is the catch-up view of the monthly profit goal.
type TargetProgress struct {
	MonthlyTarget       decimal.Decimal `json:"monthly_target"`
	Achieved            decimal.Decimal `json:"achieved"`
	Remaining           decimal.Decimal `json:"remaining"`
	RemainingWeeks      int             `json:"remaining_weeks"`
	BaseWeekly          decimal.Decimal `json:"base_weekly"`
	AdjustedWeekly      decimal.Decimal `json:"adjusted_weekly"`
	CatchUpActive       bool            `json:"catch_up_active"`
	CurrentWeekAchieved decimal.Decimal `json:"current_week_achieved"`
}

// RemainingWeeks counts the calendar weeks left in p as seen from now,
// today included, rounded up and never below one. A finished month has no
// days left and a future month has all of its days left.
func RemainingWeeks(p Period, now time.Time) int {
	start, end := p.Bounds(now.Location())
	var days int
	switch {
	case !now.Before(end):
		days = 0
	case now.Before(start):
		days = p.DaysInMonth()
	default:
		days = p.DaysInMonth() - now.Day() + 1
	}
	weeks := (days + 6) / 7
	if weeks < 1 {
		weeks = 1
	}
	return weeks
}

// WeeklyTarget spreads what is left of the monthly target evenly across the
// remaining weeks. Catch-up is flagged when the adjusted bar is above the
// plain quarter-of-month target.
func WeeklyTarget(monthlyTarget, achieved decimal.Decimal, remainingWeeks int) TargetProgress {
	if remainingWeeks < 1 {
		remainingWeeks = 1
	}
	remaining := monthlyTarget.Sub(achieved)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	adjusted := remaining.Div(decimal.NewFromInt(int64(remainingWeeks)))
	base := monthlyTarget.Div(weeksPerMonth)
	return TargetProgress{
		MonthlyTarget:  monthlyTarget,
		Achieved:       achieved,
		Remaining:      remaining,
		RemainingWeeks: remainingWeeks,
		BaseWeekly:     base,
		AdjustedWeekly: adjusted,
		CatchUpActive:  adjusted.GreaterThan(base),
	}
}

// CurrentWeekAchievement is the realized gross profit of the trailing seven
// days when p is the running month. A past month has no live anchor and is
// approximated as a quarter of its total; a future month has nothing yet.
func CurrentWeekAchievement(jobs []entities.Job, p Period, now time.Time) decimal.Decimal {
	start, end := p.Bounds(now.Location())
	switch {
	case now.Before(start):
		return decimal.Zero
	case !now.Before(end):
		return RealizedGrossProfit(jobs, p, now).Div(weeksPerMonth)
	}
	weekStart := now.AddDate(0, 0, -7)
	total := decimal.Zero
	for _, j := range jobs {
		if j.IsDeleted || !j.IsClosed || !j.HasInvoice {
			continue
		}
		closed := ptrTimeOrNow(j.ClosedAt, now)
		if closed.After(weekStart) && !closed.After(now) {
			total = total.Add(GrossProfit(j))
		}
	}
	return total
}

// TargetFor assembles the full target view for p.
func TargetFor(jobs []entities.Job, settings entities.Settings, p Period, now time.Time) TargetProgress {
	achieved := RealizedGrossProfit(jobs, p, now)
	tp := WeeklyTarget(settings.MonthlyTarget, achieved, RemainingWeeks(p, now))
	tp.CurrentWeekAchieved = CurrentWeekAchievement(jobs, p, now)
	return tp
}
