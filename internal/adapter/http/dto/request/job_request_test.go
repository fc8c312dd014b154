package request

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"
	"bengkel_service/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestCreateJobRequest_ToInput(t *testing.T) {
	r := CreateJobRequest{PlateNumber: "B 1 AB", CustomerName: "Ani", EntryDate: "2025-05-19"}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.EntryDate == nil || !in.EntryDate.Equal(time.Date(2025, time.May, 19, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected entry date: %v", in.EntryDate)
	}

	in, err = CreateJobRequest{PlateNumber: "B 1 AB", CustomerName: "Ani"}.ToInput()
	if err != nil || in.EntryDate != nil {
		t.Fatalf("expected no entry date, got %v (%v)", in.EntryDate, err)
	}

	_, err = CreateJobRequest{EntryDate: "19/05/2025"}.ToInput()
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestUpdateJobRequest_ToPatch(t *testing.T) {
	t.Run("only present fields are set", func(t *testing.T) {
		var r UpdateJobRequest
		if err := json.Unmarshal([]byte(`{"work_status":"Cat","production":[{"stage":"Cat","mechanic":"Andi"}]}`), &r); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		patch, err := r.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.WorkStatus == nil || *patch.WorkStatus != "Cat" {
			t.Fatalf("unexpected work status: %v", patch.WorkStatus)
		}
		if patch.Production == nil || (*patch.Production)[0].Mechanic != "Andi" {
			t.Fatalf("unexpected production: %v", patch.Production)
		}
		if patch.PlateNumber != nil || patch.ServiceAdvisor != nil || patch.IsClosed != nil {
			t.Fatalf("unexpected fields set: %+v", patch)
		}
	})

	t.Run("advisor legacy marker is unassigned", func(t *testing.T) {
		marker := entities.PendingAllocation
		patch, err := UpdateJobRequest{ServiceAdvisor: &marker}.ToPatch()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if patch.ServiceAdvisor == nil || patch.ServiceAdvisor.IsAssigned() {
			t.Fatalf("expected unassigned advisor, got %+v", patch.ServiceAdvisor)
		}
	})

	t.Run("empty body is an empty patch", func(t *testing.T) {
		patch, err := UpdateJobRequest{}.ToPatch()
		if err != nil || !patch.IsEmpty() {
			t.Fatalf("expected empty patch, got %+v (%v)", patch, err)
		}
	})

	t.Run("bad entry date", func(t *testing.T) {
		bad := "tomorrow"
		if _, err := (UpdateJobRequest{EntryDate: &bad}).ToPatch(); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestSaveEstimateRequest_ToInput(t *testing.T) {
	var r SaveEstimateRequest
	body := `{"save_type":"WO","estimator":" Budi ","labor_items":[{"name":"Cat","price":"750000","quantity":2,"panels":2}],"discount":50000}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	in := r.ToInput("job-1", " kasir ")
	if in.SaveType != usecase.SaveTypeWO {
		t.Fatalf("expected wo save type, got %q", in.SaveType)
	}
	if in.JobID != "job-1" || in.ActingUser != "kasir" || in.Estimate.Estimator != "Budi" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if len(in.Estimate.LaborItems) != 1 || !in.Estimate.LaborItems[0].Price.Equal(decimal.NewFromInt(750_000)) {
		t.Fatalf("unexpected labor items: %+v", in.Estimate.LaborItems)
	}
	if in.Estimate.PartItems == nil || !in.Estimate.Discount.Equal(decimal.NewFromInt(50_000)) {
		t.Fatalf("unexpected estimate: %+v", in.Estimate)
	}

	unknown := SaveEstimateRequest{SaveType: "draft"}.ToInput("job-1", "")
	if unknown.SaveType != "draft" {
		t.Fatalf("expected raw save type to pass through, got %q", unknown.SaveType)
	}
}
