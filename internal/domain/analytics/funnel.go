package analytics

import (
	"time"

	"bengkel_service/internal/domain/entities"
)

// FunnelStage counts one contact stage.
type FunnelStage struct {
	Eligible  int `json:"eligible"`
	Contacted int `json:"contacted"`
	Success   int `json:"success"`
}

func (s *FunnelStage) add(contacted, success bool) {
	s.Eligible++
	if !contacted {
		return
	}
	s.Contacted++
	if success {
		s.Success++
	}
}

// Funnel is the customer conversion funnel of a period.
type Funnel struct {
	Booking        FunnelStage `json:"booking"`
	FollowUp       FunnelStage `json:"follow_up"`
	Pickup         FunnelStage `json:"pickup"`
	TotalContacted int         `json:"total_contacted"`
	TotalSuccess   int         `json:"total_success"`
	SuccessRatio   float64     `json:"success_ratio"`
	CSIAverage     float64     `json:"csi_average"`
	CSIResponses   int         `json:"csi_responses"`
}

// ConversionFunnel evaluates the booking, service follow-up and pickup stages
// independently and combines them into one success ratio. A success only
// counts when the customer was contacted.
func ConversionFunnel(jobs []entities.Job, p Period, now time.Time) Funnel {
	var f Funnel
	csiSum := 0.0
	for _, j := range jobs {
		if j.IsDeleted {
			continue
		}
		if p.Contains(timeOrNow(j.CreatedAt, now)) {
			f.Booking.add(j.Booking.Contacted, j.Booking.Success)
		}

		closedInPeriod := j.IsClosed && p.Contains(ptrTimeOrNow(j.ClosedAt, now))
		if closedInPeriod {
			f.FollowUp.add(j.FollowUp.Contacted, j.FollowUp.CRCStatus == entities.CRCStatusSatisfied)
			if avg, ok := j.FollowUp.CSIAverage(); ok {
				csiSum += avg
				f.CSIResponses++
			}
		}

		if closedInPeriod || j.VehicleStatus == entities.VehicleStatusReadyForPickup {
			f.Pickup.add(j.Pickup.Contacted, j.Pickup.Success)
		}
	}

	f.TotalContacted = f.Booking.Contacted + f.FollowUp.Contacted + f.Pickup.Contacted
	f.TotalSuccess = f.Booking.Success + f.FollowUp.Success + f.Pickup.Success
	if f.TotalContacted > 0 {
		f.SuccessRatio = float64(f.TotalSuccess) / float64(f.TotalContacted)
	}
	if f.CSIResponses > 0 {
		f.CSIAverage = csiSum / float64(f.CSIResponses)
	}
	return f
}
