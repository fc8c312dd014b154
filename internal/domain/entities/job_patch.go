package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobPatch is a partial update of a Job. Nil fields are left untouched by the
// store; only set fields are merged into the record.
type JobPatch struct {
	PlateNumber   *string
	CustomerName  *string
	CustomerPhone *string
	VehicleModel  *string
	VehicleColor  *string
	Insurance     *string

	VehicleStatus  *string
	WorkStatus     *string
	ServiceAdvisor *ServiceAdvisor

	// WONumber is write-once; the store rejects a different value once set.
	WONumber *string
	// Estimate.EstimationNumber is write-once as well.
	Estimate   *EstimateData
	LaborPrice *decimal.Decimal
	PartsPrice *decimal.Decimal

	HasInvoice *bool
	IsClosed   *bool
	ClosedAt   *time.Time
	// ClearClosedAt removes closedAt; it wins over ClosedAt.
	ClearClosedAt bool

	Production *[]StageAssignment
	Reworks    *[]ReworkEvent
	Booking    *ContactOutcome
	FollowUp   *FollowUp
	Pickup     *ContactOutcome
	EntryDate  *time.Time
}

// IsEmpty reports whether applying the patch would change nothing.
func (p JobPatch) IsEmpty() bool {
	return p == (JobPatch{})
}

// Apply merges the patch into j the same way the store does.
func (p JobPatch) Apply(j Job) Job {
	setString(&j.PlateNumber, p.PlateNumber)
	setString(&j.CustomerName, p.CustomerName)
	setString(&j.CustomerPhone, p.CustomerPhone)
	setString(&j.VehicleModel, p.VehicleModel)
	setString(&j.VehicleColor, p.VehicleColor)
	setString(&j.Insurance, p.Insurance)
	setString(&j.VehicleStatus, p.VehicleStatus)
	setString(&j.WorkStatus, p.WorkStatus)
	setString(&j.WONumber, p.WONumber)
	if p.ServiceAdvisor != nil {
		j.ServiceAdvisor = *p.ServiceAdvisor
	}
	if p.Estimate != nil {
		j.Estimate = *p.Estimate
	}
	if p.LaborPrice != nil {
		j.LaborPrice = *p.LaborPrice
	}
	if p.PartsPrice != nil {
		j.PartsPrice = *p.PartsPrice
	}
	if p.HasInvoice != nil {
		j.HasInvoice = *p.HasInvoice
	}
	if p.IsClosed != nil {
		j.IsClosed = *p.IsClosed
	}
	if p.ClosedAt != nil {
		t := *p.ClosedAt
		j.ClosedAt = &t
	}
	if p.ClearClosedAt {
		j.ClosedAt = nil
	}
	if p.Production != nil {
		j.Production = *p.Production
	}
	if p.Reworks != nil {
		j.Reworks = *p.Reworks
	}
	if p.Booking != nil {
		j.Booking = *p.Booking
	}
	if p.FollowUp != nil {
		j.FollowUp = *p.FollowUp
	}
	if p.Pickup != nil {
		j.Pickup = *p.Pickup
	}
	if p.EntryDate != nil {
		j.EntryDate = *p.EntryDate
	}
	return j
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
