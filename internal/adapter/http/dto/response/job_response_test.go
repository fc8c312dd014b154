package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"
)

func TestFromJob(t *testing.T) {
	closedAt := time.Date(2025, time.May, 21, 8, 0, 0, 0, time.UTC)
	j := entities.Job{
		ID:             "job-1",
		PlateNumber:    "B 1234 XYZ",
		WONumber:       "WO25050001",
		ServiceAdvisor: entities.AssignedAdvisor("Budi"),
		IsClosed:       true,
		ClosedAt:       &closedAt,
	}

	res := FromJob(j)
	if res.State != "closed" || res.WONumber != "WO25050001" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.ServiceAdvisor == nil || *res.ServiceAdvisor != "Budi" {
		t.Fatalf("unexpected advisor: %v", res.ServiceAdvisor)
	}
	if res.Production == nil || res.Reworks == nil {
		t.Fatalf("expected empty slices, got %+v", res)
	}
}

func TestFromJob_UnassignedAdvisorIsNull(t *testing.T) {
	b, err := json.Marshal(FromJob(entities.Job{ID: "job-2"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(b)
	if !strings.Contains(body, `"service_advisor":null`) || !strings.Contains(body, `"state":"draft"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestFromCreatedEstimate(t *testing.T) {
	res := FromCreatedEstimate(entities.Job{ID: "job-3"}, "/v1")
	if res.EstimateURL != "/v1/jobs/job-3/estimate" || res.ID != "job-3" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if got := FromJobs([]entities.Job{{ID: "a"}, {ID: "b"}}); len(got) != 2 || got[1].ID != "b" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
