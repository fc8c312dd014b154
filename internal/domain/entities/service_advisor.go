package entities

import (
	"encoding/json"
	"strings"
)

// PendingAllocation is the legacy stored marker for a job without an advisor.
const PendingAllocation = "Pending Allocation"

// ServiceAdvisor is an optional advisor assignment. The zero value is unassigned.
//
// Assignment is first-writer-wins: once a name is set it is never replaced by
// the estimate flow.
type ServiceAdvisor struct {
	name string
}

// AssignedAdvisor returns an assignment for name; blank names and the legacy
// marker yield the unassigned value.
func AssignedAdvisor(name string) ServiceAdvisor {
	name = strings.TrimSpace(name)
	if name == PendingAllocation {
		return ServiceAdvisor{}
	}
	return ServiceAdvisor{name: name}
}

func (a ServiceAdvisor) IsAssigned() bool {
	return a.name != ""
}

func (a ServiceAdvisor) Name() (string, bool) {
	return a.name, a.name != ""
}

// StoredValue is what the document store keeps for this assignment.
func (a ServiceAdvisor) StoredValue() string {
	if a.name == "" {
		return PendingAllocation
	}
	return a.name
}

func (a ServiceAdvisor) MarshalJSON() ([]byte, error) {
	if a.name == "" {
		return []byte("null"), nil
	}
	return json.Marshal(a.name)
}

func (a *ServiceAdvisor) UnmarshalJSON(b []byte) error {
	var s *string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == nil {
		*a = ServiceAdvisor{}
		return nil
	}
	*a = AssignedAdvisor(*s)
	return nil
}
