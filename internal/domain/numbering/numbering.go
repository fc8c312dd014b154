// Package numbering derives sequential business document numbers
// (estimations, work orders) from a snapshot of already-loaded jobs.
//
// Numbers have the form FAMILY + YY + MM + NNNN, e.g. BE25050007. The
// sequence restarts every month. Next performs no I/O; two callers holding
// the same stale snapshot will compute the same number.
package numbering

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"bengkel_service/internal/domain/entities"
)

const (
	FamilyEstimation = "BE"
	FamilyWorkOrder  = "WO"
)

// Prefix builds FAMILY+YY+MM from two-digit year and month values.
func Prefix(family string, yy, mm int) string {
	return fmt.Sprintf("%s%02d%02d", family, yy%100, mm)
}

// PrefixAt is Prefix for the calendar month of t.
func PrefixAt(family string, t time.Time) string {
	return Prefix(family, t.Year()%100, int(t.Month()))
}

// Next returns the number following the highest existing number of the
// family for the given month. Existing values whose suffix is not a plain
// decimal integer are skipped.
func Next(family string, yy, mm int, existing []string) string {
	prefix := Prefix(family, yy, mm)
	max := uint64(0)
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		v, ok := parseSuffix(n[len(prefix):])
		if !ok {
			continue
		}
		if v > max {
			max = v
		}
	}
	return fmt.Sprintf("%s%04d", prefix, max+1)
}

// NextAt is Next for the calendar month of t.
func NextAt(family string, t time.Time, existing []string) string {
	return Next(family, t.Year()%100, int(t.Month()), existing)
}

func parseSuffix(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// EstimationNumbers collects the estimation numbers present in jobs.
func EstimationNumbers(jobs []entities.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.Estimate.EstimationNumber != "" {
			out = append(out, j.Estimate.EstimationNumber)
		}
	}
	return out
}

// WONumbers collects the work order numbers present in jobs.
func WONumbers(jobs []entities.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		if j.WONumber != "" {
			out = append(out, j.WONumber)
		}
	}
	return out
}

// Existing returns the snapshot values of the field that family numbers live in.
func Existing(family string, jobs []entities.Job) []string {
	if family == FamilyWorkOrder {
		return WONumbers(jobs)
	}
	return EstimationNumbers(jobs)
}
