package analytics

import (
	"testing"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestConversionFunnel(t *testing.T) {
	now := at(2025, time.May, 20, 10)
	p := PeriodOf(now)

	booked := entities.Job{CreatedAt: at(2025, time.May, 2, 9), Booking: entities.ContactOutcome{Contacted: true, Success: true}}
	bookedNoAnswer := entities.Job{CreatedAt: at(2025, time.May, 3, 9), Booking: entities.ContactOutcome{Contacted: true}}
	bookedLastMonth := entities.Job{CreatedAt: at(2025, time.April, 3, 9), Booking: entities.ContactOutcome{Contacted: true, Success: true}}

	followed := closedJob("f", at(2025, time.May, 10, 9), 0, 0)
	followed.CreatedAt = at(2025, time.April, 28, 9)
	followed.FollowUp = entities.FollowUp{Contacted: true, CRCStatus: entities.CRCStatusSatisfied, CSI: map[string]int{"speed": 4, "quality": 5}}
	followed.Pickup = entities.ContactOutcome{Contacted: true, Success: true}

	complaint := closedJob("c", at(2025, time.May, 11, 9), 0, 0)
	complaint.CreatedAt = at(2025, time.April, 28, 9)
	complaint.FollowUp = entities.FollowUp{Contacted: true, CRCStatus: entities.CRCStatusComplaint, CSI: map[string]int{"speed": 2}}

	ready := entities.Job{CreatedAt: at(2025, time.April, 1, 9), VehicleStatus: entities.VehicleStatusReadyForPickup, Pickup: entities.ContactOutcome{Contacted: true}}
	successWithoutContact := entities.Job{CreatedAt: at(2025, time.April, 1, 9), VehicleStatus: entities.VehicleStatusReadyForPickup, Pickup: entities.ContactOutcome{Success: true}}

	deleted := booked
	deleted.IsDeleted = true

	f := ConversionFunnel([]entities.Job{booked, bookedNoAnswer, bookedLastMonth, followed, complaint, ready, successWithoutContact, deleted}, p, now)

	require.Equal(t, FunnelStage{Eligible: 2, Contacted: 2, Success: 1}, f.Booking)
	require.Equal(t, FunnelStage{Eligible: 2, Contacted: 2, Success: 1}, f.FollowUp)
	require.Equal(t, FunnelStage{Eligible: 4, Contacted: 2, Success: 1}, f.Pickup)
	require.Equal(t, 6, f.TotalContacted)
	require.Equal(t, 3, f.TotalSuccess)
	require.InDelta(t, 0.5, f.SuccessRatio, 1e-9)
	require.Equal(t, 2, f.CSIResponses)
	require.InDelta(t, (4.5+2.0)/2, f.CSIAverage, 1e-9)
}

func TestConversionFunnelNoContacts(t *testing.T) {
	now := at(2025, time.May, 20, 10)
	f := ConversionFunnel([]entities.Job{{CreatedAt: at(2025, time.May, 2, 9)}}, PeriodOf(now), now)
	require.Equal(t, 0, f.TotalContacted)
	require.Zero(t, f.SuccessRatio)
}
