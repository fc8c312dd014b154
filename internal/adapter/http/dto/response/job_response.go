package response

import (
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type JobResponse struct {
	ID             string                     `json:"id"`
	State          string                     `json:"state"`
	PlateNumber    string                     `json:"plate_number"`
	CustomerName   string                     `json:"customer_name"`
	CustomerPhone  string                     `json:"customer_phone,omitempty"`
	VehicleModel   string                     `json:"vehicle_model,omitempty"`
	VehicleColor   string                     `json:"vehicle_color,omitempty"`
	Insurance      string                     `json:"insurance,omitempty"`
	VehicleStatus  string                     `json:"vehicle_status"`
	WorkStatus     string                     `json:"work_status"`
	WONumber       string                     `json:"wo_number,omitempty"`
	ServiceAdvisor *string                    `json:"service_advisor"`
	Estimate       entities.EstimateData      `json:"estimate"`
	Cost           entities.CostData          `json:"cost"`
	LaborPrice     decimal.Decimal            `json:"labor_price"`
	PartsPrice     decimal.Decimal            `json:"parts_price"`
	HasInvoice     bool                       `json:"has_invoice"`
	IsClosed       bool                       `json:"is_closed"`
	Production     []entities.StageAssignment `json:"production"`
	Reworks        []entities.ReworkEvent     `json:"reworks"`
	Booking        entities.ContactOutcome    `json:"booking"`
	FollowUp       entities.FollowUp          `json:"follow_up"`
	Pickup         entities.ContactOutcome    `json:"pickup"`
	EntryDate      time.Time                  `json:"entry_date"`
	CreatedAt      time.Time                  `json:"created_at"`
	ClosedAt       *time.Time                 `json:"closed_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	res := JobResponse{
		ID:            j.ID,
		State:         string(j.State()),
		PlateNumber:   j.PlateNumber,
		CustomerName:  j.CustomerName,
		CustomerPhone: j.CustomerPhone,
		VehicleModel:  j.VehicleModel,
		VehicleColor:  j.VehicleColor,
		Insurance:     j.Insurance,
		VehicleStatus: j.VehicleStatus,
		WorkStatus:    j.WorkStatus,
		WONumber:      j.WONumber,
		Estimate:      j.Estimate,
		Cost:          j.Cost,
		LaborPrice:    j.LaborPrice,
		PartsPrice:    j.PartsPrice,
		HasInvoice:    j.HasInvoice,
		IsClosed:      j.IsClosed,
		Production:    j.Production,
		Reworks:       j.Reworks,
		Booking:       j.Booking,
		FollowUp:      j.FollowUp,
		Pickup:        j.Pickup,
		EntryDate:     j.EntryDate,
		CreatedAt:     j.CreatedAt,
		ClosedAt:      j.ClosedAt,
	}
	if name, ok := j.ServiceAdvisor.Name(); ok {
		res.ServiceAdvisor = &name
	}
	if res.Production == nil {
		res.Production = []entities.StageAssignment{}
	}
	if res.Reworks == nil {
		res.Reworks = []entities.ReworkEvent{}
	}
	return res
}

func FromJobs(jobs []entities.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}

// CreatedEstimateResponse is returned by create-and-open-estimate so the
// client can navigate straight to the estimate editor.
type CreatedEstimateResponse struct {
	JobResponse
	EstimateURL string `json:"estimate_url"`
}

func FromCreatedEstimate(j entities.Job, basePath string) CreatedEstimateResponse {
	return CreatedEstimateResponse{
		JobResponse: FromJob(j),
		EstimateURL: basePath + "/jobs/" + j.ID + "/estimate",
	}
}

type SaveEstimateResponse struct {
	JobID    string `json:"job_id"`
	SaveType string `json:"save_type"`
	Number   string `json:"number"`
}
