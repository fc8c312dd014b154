package analytics

import (
	"sort"
	"strings"
	"time"

	"bengkel_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// MechanicStat is the productivity of one mechanic in a period.
type MechanicStat struct {
	Name    string          `json:"name"`
	Units   int             `json:"units"`
	Panels  decimal.Decimal `json:"panels"`
	Reworks int             `json:"reworks"`
}

// MechanicProductivity credits every mechanic assigned to a job closed in p
// with one unit and the job's panel count. Rework is charged to the mechanic
// who owned the production stage the rework was logged at. Roster members
// without activity are listed with zero counts.
func MechanicProductivity(jobs []entities.Job, roster []string, p Period, now time.Time) []MechanicStat {
	stats := make(map[string]*MechanicStat)
	get := func(name string) *MechanicStat {
		s, ok := stats[name]
		if !ok {
			s = &MechanicStat{Name: name, Panels: decimal.Zero}
			stats[name] = s
		}
		return s
	}

	for _, name := range roster {
		if name = strings.TrimSpace(name); name != "" {
			get(name)
		}
	}

	for _, j := range jobs {
		if j.IsDeleted || !j.IsClosed || !p.Contains(ptrTimeOrNow(j.ClosedAt, now)) {
			continue
		}

		stageOwner := make(map[string]string, len(j.Production))
		seen := make(map[string]bool, len(j.Production))
		panels := j.Estimate.PanelCount()
		for _, a := range j.Production {
			mechanic := strings.TrimSpace(a.Mechanic)
			if mechanic == "" {
				continue
			}
			stageOwner[stageKey(a.Stage)] = mechanic
			if seen[mechanic] {
				continue
			}
			seen[mechanic] = true
			s := get(mechanic)
			s.Units++
			s.Panels = s.Panels.Add(panels)
		}

		for _, rw := range j.Reworks {
			if mechanic, ok := stageOwner[stageKey(rw.Stage)]; ok {
				get(mechanic).Reworks++
			}
		}
	}

	out := make([]MechanicStat, 0, len(stats))
	for _, s := range stats {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func stageKey(stage string) string {
	return strings.ToLower(strings.TrimSpace(stage))
}
