package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func at(y int, m time.Month, day, h int) time.Time {
	return time.Date(y, m, day, h, 0, 0, 0, jakarta)
}

func ptr(t time.Time) *time.Time { return &t }

// closedJob is an invoiced job closed at closedAt with the given revenue and cost.
func closedJob(id string, closedAt time.Time, revenue, cost int64) entities.Job {
	return entities.Job{
		ID:         id,
		LaborPrice: d(revenue),
		Cost:       entities.CostData{MaterialCost: d(cost)},
		HasInvoice: true,
		IsClosed:   true,
		WONumber:   "WO" + id,
		CreatedAt:  closedAt.AddDate(0, 0, -3),
		ClosedAt:   ptr(closedAt),
	}
}
