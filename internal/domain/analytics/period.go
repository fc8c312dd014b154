// Package analytics folds a snapshot of jobs, cashier transactions and assets
// into period-bound financial and KPI figures.
//
// Every function here is pure: callers pass the snapshot, the period, the
// settings and the reference time explicitly. Inputs are read permissively so
// that partially populated historical records never fail a computation:
// missing amounts are zero and missing dates are treated as "now".
package analytics

import (
	"fmt"
	"time"
)

// Period is a calendar month.
type Period struct {
	Month time.Month `json:"month"`
	Year  int        `json:"year"`
}

func NewPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("invalid month %d", month)
	}
	if year < 2000 || year > 9999 {
		return Period{}, fmt.Errorf("invalid year %d", year)
	}
	return Period{Month: month, Year: year}, nil
}

// PeriodOf returns the calendar month containing t.
func PeriodOf(t time.Time) Period {
	return Period{Month: t.Month(), Year: t.Year()}
}

// Bounds returns [start, end) of the month in loc.
func (p Period) Bounds(loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the month, evaluated in t's location.
func (p Period) Contains(t time.Time) bool {
	start, end := p.Bounds(t.Location())
	return !t.Before(start) && t.Before(end)
}

func (p Period) DaysInMonth() int {
	start, end := p.Bounds(time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// timeOrNow resolves a possibly missing timestamp into now's location.
func timeOrNow(t time.Time, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.In(now.Location())
}

func ptrTimeOrNow(t *time.Time, now time.Time) time.Time {
	if t == nil {
		return now
	}
	return timeOrNow(*t, now)
}
