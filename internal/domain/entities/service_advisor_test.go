package entities

import (
	"encoding/json"
	"testing"
)

func TestServiceAdvisor(t *testing.T) {
	if AssignedAdvisor("  ").IsAssigned() || AssignedAdvisor(PendingAllocation).IsAssigned() {
		t.Fatalf("blank and legacy marker must be unassigned")
	}
	if got := (ServiceAdvisor{}).StoredValue(); got != PendingAllocation {
		t.Fatalf("expected legacy marker, got %q", got)
	}
	if got := AssignedAdvisor(" Budi ").StoredValue(); got != "Budi" {
		t.Fatalf("expected Budi, got %q", got)
	}
}

func TestServiceAdvisorJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A ServiceAdvisor `json:"a"`
		B ServiceAdvisor `json:"b"`
	}{B: AssignedAdvisor("Budi")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":null,"b":"Budi"}` {
		t.Fatalf("unexpected json: %s", b)
	}

	var v struct {
		A ServiceAdvisor `json:"a"`
		B ServiceAdvisor `json:"b"`
		C ServiceAdvisor `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"a":null,"b":"Pending Allocation","c":"Sari"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.A.IsAssigned() || v.B.IsAssigned() {
		t.Fatalf("null and legacy marker must decode as unassigned")
	}
	if name, _ := v.C.Name(); name != "Sari" {
		t.Fatalf("expected Sari, got %q", name)
	}
}
