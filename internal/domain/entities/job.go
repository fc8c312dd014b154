package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle and work statuses are free text drawn from configurable option lists.
// The constants below are the values this service writes itself.
const (
	VehicleStatusBooking        = "Booking"
	VehicleStatusInProgress     = "In Progress"
	VehicleStatusReadyForPickup = "Ready for Pickup"
	VehicleStatusFinished       = "Finished"

	WorkStatusWaitingEstimate = "Waiting Estimate"
	WorkStatusNotStarted      = "Not Started"
	WorkStatusFinishing       = "Finishing"
	WorkStatusFinished        = "Finished"
)

// CRC follow-up outcomes.
const (
	CRCStatusSatisfied = "Satisfied"
	CRCStatusComplaint = "Complaint"
)

// JobState is derived from the record, never stored.
type JobState string

const (
	JobStateDraft  JobState = "draft"
	JobStateActive JobState = "active"
	JobStateClosed JobState = "closed"
)

// Job is one repair work order (or estimate wrapper) persisted in the jobs table.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Invariants:
//   - WONumber and Estimate.EstimationNumber are assigned at most once.
//   - ClosedAt is set if and only if IsClosed.
type Job struct {
	ID string `json:"id"`

	PlateNumber   string `json:"plate_number"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	VehicleModel  string `json:"vehicle_model,omitempty"`
	VehicleColor  string `json:"vehicle_color,omitempty"`
	Insurance     string `json:"insurance,omitempty"`

	VehicleStatus string `json:"vehicle_status"`
	WorkStatus    string `json:"work_status"`

	WONumber       string         `json:"wo_number,omitempty"`
	ServiceAdvisor ServiceAdvisor `json:"service_advisor"`

	Estimate   EstimateData    `json:"estimate"`
	Cost       CostData        `json:"cost"`
	LaborPrice decimal.Decimal `json:"labor_price"`
	PartsPrice decimal.Decimal `json:"parts_price"`

	HasInvoice bool `json:"has_invoice"`
	IsClosed   bool `json:"is_closed"`
	IsDeleted  bool `json:"is_deleted"`

	Production []StageAssignment `json:"production,omitempty"`
	Reworks    []ReworkEvent     `json:"reworks,omitempty"`

	Booking  ContactOutcome `json:"booking"`
	FollowUp FollowUp       `json:"follow_up"`
	Pickup   ContactOutcome `json:"pickup"`

	EntryDate time.Time  `json:"entry_date"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// State reports where the job sits in the work order lifecycle.
func (j Job) State() JobState {
	switch {
	case j.IsClosed:
		return JobStateClosed
	case j.WONumber != "":
		return JobStateActive
	default:
		return JobStateDraft
	}
}

// HasPostedCost reports whether any realized cost component is positive.
func (j Job) HasPostedCost() bool {
	return j.Cost.Total().IsPositive()
}

// EstimateData is the nested estimate record of a job.
type EstimateData struct {
	EstimationNumber string          `json:"estimation_number,omitempty"`
	Estimator        string          `json:"estimator,omitempty"`
	LaborItems       []LineItem      `json:"labor_items"`
	PartItems        []LineItem      `json:"part_items"`
	LaborSubtotal    decimal.Decimal `json:"labor_subtotal"`
	PartsSubtotal    decimal.Decimal `json:"parts_subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	GrandTotal       decimal.Decimal `json:"grand_total"`
}

// Recalculate derives subtotals and grand total from the line items.
func (e EstimateData) Recalculate() EstimateData {
	e.LaborSubtotal = sumLines(e.LaborItems)
	e.PartsSubtotal = sumLines(e.PartItems)
	total := e.LaborSubtotal.Add(e.PartsSubtotal).Sub(e.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	e.GrandTotal = total
	return e
}

// PanelCount sums the panel counts of every labor line.
func (e EstimateData) PanelCount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range e.LaborItems {
		total = total.Add(it.Panels)
	}
	return total
}

// LineItem is a labor or part line inside an estimate.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Panels   decimal.Decimal `json:"panels,omitempty"`
}

// Total is price × quantity; a missing or non-positive quantity counts as one.
func (l LineItem) Total() decimal.Decimal {
	qty := l.Quantity
	if !qty.IsPositive() {
		qty = decimal.NewFromInt(1)
	}
	return l.Price.Mul(qty)
}

func sumLines(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total())
	}
	return total
}

// CostData holds the realized cost components posted by cost-entry collaborators.
type CostData struct {
	MaterialCost  decimal.Decimal `json:"material_cost"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	ExternalLabor decimal.Decimal `json:"external_labor"`
}

func (c CostData) Total() decimal.Decimal {
	return c.MaterialCost.Add(c.PartsCost).Add(c.ExternalLabor)
}

// StageAssignment records which mechanic handled a production stage.
type StageAssignment struct {
	Stage    string `json:"stage"`
	Mechanic string `json:"mechanic"`
}

// ReworkEvent is logged against the production stage where rework happened.
// Actor is whoever logged it, not necessarily the responsible mechanic.
type ReworkEvent struct {
	Stage    string    `json:"stage"`
	Actor    string    `json:"actor,omitempty"`
	Note     string    `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

// ContactOutcome tracks a customer contact stage of the conversion funnel.
type ContactOutcome struct {
	Contacted bool `json:"contacted"`
	Success   bool `json:"success"`
}

// FollowUp is the post-service customer relations call.
type FollowUp struct {
	Contacted bool           `json:"contacted"`
	CRCStatus string         `json:"crc_status,omitempty"`
	CSI       map[string]int `json:"csi,omitempty"`
}

// CSIAverage averages the indicator star ratings; ok is false when none were given.
func (f FollowUp) CSIAverage() (avg float64, ok bool) {
	if len(f.CSI) == 0 {
		return 0, false
	}
	sum := 0
	for _, v := range f.CSI {
		sum += v
	}
	return float64(sum) / float64(len(f.CSI)), true
}
