package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"
)

// Snapshot is the full current content of the ledger collections.
type Snapshot struct {
	Jobs         []entities.Job
	Transactions []entities.CashierTransaction
	Assets       []entities.Asset
	Settings     entities.Settings
}

// PipelineCounts tallies non-deleted jobs by lifecycle state.
type PipelineCounts struct {
	Draft  int `json:"draft"`
	Active int `json:"active"`
	Closed int `json:"closed"`
}

// KPISnapshot is everything the dashboard shows for one period.
type KPISnapshot struct {
	Period      Period          `json:"period"`
	GeneratedAt time.Time       `json:"generated_at"`
	Realized    ProfitSummary   `json:"realized"`
	Target      TargetProgress  `json:"target"`
	Funnel      Funnel          `json:"funnel"`
	Receivables ReceivableAging `json:"receivables"`
	Mechanics   []MechanicStat  `json:"mechanics"`
	Pipeline    PipelineCounts  `json:"pipeline"`
}

// ComputeKPIs recomputes every figure from scratch for p.
func ComputeKPIs(s Snapshot, p Period, now time.Time) KPISnapshot {
	return KPISnapshot{
		Period:      p,
		GeneratedAt: now,
		Realized:    SummarizeProfit(RealizedJobs(s.Jobs, p, now)),
		Target:      TargetFor(s.Jobs, s.Settings, p, now),
		Funnel:      ConversionFunnel(s.Jobs, p, now),
		Receivables: AccountsReceivableAging(s.Jobs, s.Transactions, now),
		Mechanics:   MechanicProductivity(s.Jobs, s.Settings.MechanicNames, p, now),
		Pipeline:    pipeline(s.Jobs),
	}
}

func pipeline(jobs []entities.Job) PipelineCounts {
	var c PipelineCounts
	for _, j := range jobs {
		if j.IsDeleted {
			continue
		}
		switch j.State() {
		case entities.JobStateDraft:
			c.Draft++
		case entities.JobStateActive:
			c.Active++
		default:
			c.Closed++
		}
	}
	return c
}
