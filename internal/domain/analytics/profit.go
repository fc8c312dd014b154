package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// JobRevenue is labor plus parts billed on the job.
func JobRevenue(j entities.Job) decimal.Decimal {
	return j.LaborPrice.Add(j.PartsPrice)
}

// GrossProfit is revenue minus realized direct cost for a single job.
func GrossProfit(j entities.Job) decimal.Decimal {
	return JobRevenue(j).Sub(j.Cost.Total())
}

// IsRealized reports whether the job counts toward realized profit of the
// period: invoiced, closed inside the period and not logically deleted.
func IsRealized(j entities.Job, p Period, now time.Time) bool {
	if j.IsDeleted || !j.IsClosed || !j.HasInvoice {
		return false
	}
	return p.Contains(ptrTimeOrNow(j.ClosedAt, now))
}

// RealizedJobs filters jobs down to the ones realized in p.
func RealizedJobs(jobs []entities.Job, p Period, now time.Time) []entities.Job {
	out := make([]entities.Job, 0)
	for _, j := range jobs {
		if IsRealized(j, p, now) {
			out = append(out, j)
		}
	}
	return out
}

// ProfitSummary aggregates revenue, cost and gross profit of a job set.
type ProfitSummary struct {
	Jobs        int             `json:"jobs"`
	Revenue     decimal.Decimal `json:"revenue"`
	Cost        decimal.Decimal `json:"cost"`
	GrossProfit decimal.Decimal `json:"gross_profit"`
}

// SummarizeProfit sums the jobs as given, without any filtering.
func SummarizeProfit(jobs []entities.Job) ProfitSummary {
	s := ProfitSummary{Revenue: decimal.Zero, Cost: decimal.Zero, GrossProfit: decimal.Zero}
	for _, j := range jobs {
		s.Jobs++
		s.Revenue = s.Revenue.Add(JobRevenue(j))
		s.Cost = s.Cost.Add(j.Cost.Total())
		s.GrossProfit = s.GrossProfit.Add(GrossProfit(j))
	}
	return s
}

// RealizedGrossProfit is the gross profit of the jobs realized in p.
func RealizedGrossProfit(jobs []entities.Job, p Period, now time.Time) decimal.Decimal {
	return SummarizeProfit(RealizedJobs(jobs, p, now)).GrossProfit
}
