package request

import (
	"errors"
	"strings"
	"time"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// CreateJobRequest is the intake form of a new job.
type CreateJobRequest struct {
	PlateNumber    string `json:"plate_number" binding:"required"`
	CustomerName   string `json:"customer_name" binding:"required"`
	CustomerPhone  string `json:"customer_phone"`
	VehicleModel   string `json:"vehicle_model"`
	VehicleColor   string `json:"vehicle_color"`
	Insurance      string `json:"insurance"`
	ServiceAdvisor string `json:"service_advisor"`
	EntryDate      string `json:"entry_date"`
}

func (r CreateJobRequest) ToInput() (usecase.CreateJobInput, error) {
	in := usecase.CreateJobInput{
		PlateNumber:    r.PlateNumber,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		VehicleModel:   r.VehicleModel,
		VehicleColor:   r.VehicleColor,
		Insurance:      r.Insurance,
		ServiceAdvisor: r.ServiceAdvisor,
	}
	if strings.TrimSpace(r.EntryDate) != "" {
		d, err := parseDate(r.EntryDate)
		if err != nil {
			return usecase.CreateJobInput{}, err
		}
		in.EntryDate = &d
	}
	return in, nil
}

type StageRequest struct {
	Stage    string `json:"stage" binding:"required"`
	Mechanic string `json:"mechanic"`
}

type ReworkRequest struct {
	Stage    string    `json:"stage" binding:"required"`
	Actor    string    `json:"actor"`
	Note     string    `json:"note"`
	LoggedAt time.Time `json:"logged_at"`
}

type ContactRequest struct {
	Contacted bool `json:"contacted"`
	Success   bool `json:"success"`
}

type FollowUpRequest struct {
	Contacted bool           `json:"contacted"`
	CRCStatus string         `json:"crc_status"`
	CSI       map[string]int `json:"csi"`
}

// UpdateJobRequest is a partial update; absent fields are left untouched.
//
// Document numbers and the estimate change only through the estimate endpoint.
// IsClosed and ClosedAt are accepted so that the use case can reject them.
type UpdateJobRequest struct {
	PlateNumber    *string          `json:"plate_number"`
	CustomerName   *string          `json:"customer_name"`
	CustomerPhone  *string          `json:"customer_phone"`
	VehicleModel   *string          `json:"vehicle_model"`
	VehicleColor   *string          `json:"vehicle_color"`
	Insurance      *string          `json:"insurance"`
	VehicleStatus  *string          `json:"vehicle_status"`
	WorkStatus     *string          `json:"work_status"`
	ServiceAdvisor *string          `json:"service_advisor"`
	HasInvoice     *bool            `json:"has_invoice"`
	IsClosed       *bool            `json:"is_closed"`
	ClosedAt       *time.Time       `json:"closed_at"`
	Production     *[]StageRequest  `json:"production"`
	Reworks        *[]ReworkRequest `json:"reworks"`
	Booking        *ContactRequest  `json:"booking"`
	FollowUp       *FollowUpRequest `json:"follow_up"`
	Pickup         *ContactRequest  `json:"pickup"`
	EntryDate      *string          `json:"entry_date"`
}

func (r UpdateJobRequest) ToPatch() (entities.JobPatch, error) {
	patch := entities.JobPatch{
		PlateNumber:   r.PlateNumber,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		VehicleModel:  r.VehicleModel,
		VehicleColor:  r.VehicleColor,
		Insurance:     r.Insurance,
		VehicleStatus: r.VehicleStatus,
		WorkStatus:    r.WorkStatus,
		HasInvoice:    r.HasInvoice,
		IsClosed:      r.IsClosed,
		ClosedAt:      r.ClosedAt,
	}
	if r.ServiceAdvisor != nil {
		advisor := entities.AssignedAdvisor(*r.ServiceAdvisor)
		patch.ServiceAdvisor = &advisor
	}
	if r.Production != nil {
		stages := make([]entities.StageAssignment, 0, len(*r.Production))
		for _, s := range *r.Production {
			stages = append(stages, entities.StageAssignment{Stage: s.Stage, Mechanic: s.Mechanic})
		}
		patch.Production = &stages
	}
	if r.Reworks != nil {
		reworks := make([]entities.ReworkEvent, 0, len(*r.Reworks))
		for _, rw := range *r.Reworks {
			reworks = append(reworks, entities.ReworkEvent{Stage: rw.Stage, Actor: rw.Actor, Note: rw.Note, LoggedAt: rw.LoggedAt})
		}
		patch.Reworks = &reworks
	}
	if r.Booking != nil {
		patch.Booking = &entities.ContactOutcome{Contacted: r.Booking.Contacted, Success: r.Booking.Success}
	}
	if r.Pickup != nil {
		patch.Pickup = &entities.ContactOutcome{Contacted: r.Pickup.Contacted, Success: r.Pickup.Success}
	}
	if r.FollowUp != nil {
		patch.FollowUp = &entities.FollowUp{Contacted: r.FollowUp.Contacted, CRCStatus: r.FollowUp.CRCStatus, CSI: r.FollowUp.CSI}
	}
	if r.EntryDate != nil {
		d, err := parseDate(*r.EntryDate)
		if err != nil {
			return entities.JobPatch{}, err
		}
		patch.EntryDate = &d
	}
	return patch, nil
}

type LineItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
	Panels   decimal.Decimal `json:"panels"`
}

// SaveEstimateRequest is the estimate editor payload. SaveType is "estimate"
// to keep a draft or "wo" to issue the work order.
type SaveEstimateRequest struct {
	SaveType         string            `json:"save_type" binding:"required"`
	EstimationNumber string            `json:"estimation_number"`
	Estimator        string            `json:"estimator"`
	LaborItems       []LineItemRequest `json:"labor_items"`
	PartItems        []LineItemRequest `json:"part_items"`
	Discount         decimal.Decimal   `json:"discount"`
}

func (r SaveEstimateRequest) ToInput(jobID, actingUser string) usecase.SaveEstimateInput {
	saveType, ok := usecase.ParseSaveType(r.SaveType)
	if !ok {
		saveType = usecase.SaveType(r.SaveType)
	}
	return usecase.SaveEstimateInput{
		JobID: jobID,
		Estimate: entities.EstimateData{
			EstimationNumber: strings.TrimSpace(r.EstimationNumber),
			Estimator:        strings.TrimSpace(r.Estimator),
			LaborItems:       toLineItems(r.LaborItems),
			PartItems:        toLineItems(r.PartItems),
			Discount:         r.Discount,
		},
		SaveType:   saveType,
		ActingUser: strings.TrimSpace(actingUser),
	}
}

func toLineItems(in []LineItemRequest) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.LineItem{Name: it.Name, Price: it.Price, Quantity: it.Quantity, Panels: it.Panels})
	}
	return out
}

// CloseJobRequest carries the answers to the close confirmation prompts.
type CloseJobRequest struct {
	Confirmed        bool `json:"confirmed"`
	ZeroCostOverride bool `json:"zero_cost_override"`
}

func (r CloseJobRequest) ToConfirmation() usecase.CloseConfirmation {
	return usecase.CloseConfirmation{Confirmed: r.Confirmed, ZeroCostOverride: r.ZeroCostOverride}
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}
