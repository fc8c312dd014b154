package analytics

import (
	"sort"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Balances at or below this amount are treated as settled (rounding leftovers).
var outstandingThreshold = decimal.NewFromInt(1000)

const (
	BucketCurrent  = "current"
	BucketWarning  = "warning"
	BucketCritical = "critical"
)

// Receivable is the unpaid balance of one work order.
type Receivable struct {
	JobID        string          `json:"job_id"`
	WONumber     string          `json:"wo_number"`
	PlateNumber  string          `json:"plate_number"`
	CustomerName string          `json:"customer_name"`
	GrandTotal   decimal.Decimal `json:"grand_total"`
	Paid         decimal.Decimal `json:"paid"`
	Remaining    decimal.Decimal `json:"remaining"`
	AgeDays      int             `json:"age_days"`
	Bucket       string          `json:"bucket"`
}

// AgingBucket summarises the receivables inside one age bucket.
type AgingBucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

func (b *AgingBucket) add(amount decimal.Decimal) {
	b.Count++
	b.Amount = b.Amount.Add(amount)
}

// ReceivableAging partitions the outstanding set into age buckets.
type ReceivableAging struct {
	Current          AgingBucket     `json:"current"`
	Warning          AgingBucket     `json:"warning"`
	Critical         AgingBucket     `json:"critical"`
	TotalCount       int             `json:"total_count"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	Items            []Receivable    `json:"items"`
}

// AgeBucket maps an age in whole days to its bucket.
func AgeBucket(days int) string {
	switch {
	case days <= 7:
		return BucketCurrent
	case days <= 14:
		return BucketWarning
	default:
		return BucketCritical
	}
}

// AccountsReceivableAging computes unpaid balances of open, WO-bearing jobs.
// Paid amounts are the IN transactions referencing the job; age runs from
// job creation, not from invoicing.
func AccountsReceivableAging(jobs []entities.Job, txs []entities.CashierTransaction, now time.Time) ReceivableAging {
	paid := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != entities.TransactionIn || tx.RefJobID == "" {
			continue
		}
		paid[tx.RefJobID] = paid[tx.RefJobID].Add(tx.Amount)
	}

	out := ReceivableAging{
		Current:          AgingBucket{Amount: decimal.Zero},
		Warning:          AgingBucket{Amount: decimal.Zero},
		Critical:         AgingBucket{Amount: decimal.Zero},
		TotalOutstanding: decimal.Zero,
		Items:            []Receivable{},
	}
	for _, j := range jobs {
		if j.IsDeleted || j.IsClosed || j.WONumber == "" {
			continue
		}
		p := paid[j.ID]
		remaining := j.Estimate.GrandTotal.Sub(p)
		if !remaining.GreaterThan(outstandingThreshold) {
			continue
		}
		age := int(now.Sub(timeOrNow(j.CreatedAt, now)).Hours() / 24)
		if age < 0 {
			age = 0
		}
		r := Receivable{
			JobID:        j.ID,
			WONumber:     j.WONumber,
			PlateNumber:  j.PlateNumber,
			CustomerName: j.CustomerName,
			GrandTotal:   j.Estimate.GrandTotal,
			Paid:         p,
			Remaining:    remaining,
			AgeDays:      age,
			Bucket:       AgeBucket(age),
		}
		switch r.Bucket {
		case BucketCurrent:
			out.Current.add(remaining)
		case BucketWarning:
			out.Warning.add(remaining)
		default:
			out.Critical.add(remaining)
		}
		out.TotalCount++
		out.TotalOutstanding = out.TotalOutstanding.Add(remaining)
		out.Items = append(out.Items, r)
	}

	sort.SliceStable(out.Items, func(i, j int) bool {
		return out.Items[i].AgeDays > out.Items[j].AgeDays
	})
	return out
}
