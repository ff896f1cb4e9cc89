package database

import (
	"testing"

	. "github.com/aviodesk/charterops/internal/interfaces/operation"
)

func TestCrewMemberStatusDerivedAtCreation(t *testing.T) {
	crewOperation := NewCrewOperation(newTestDB(t), testQueryTimeout)

	tests := []struct {
		name       string
		totalHours float64
		expected   CrewStatus
	}{
		{"rested", 42.5, CrewStatusOK},
		{"boundary", 100.0, CrewStatusOK},
		{"overworked", 120.25, CrewStatusNeedsRest},
	}
	for _, test := range tests {
		member := crewOperation.NewCrewMember(test.name, test.totalHours, "2025-03-28")
		if member.Status != test.expected {
			t.Errorf("NewCrewMember(%v hours) status = %q; expected %q", test.totalHours, member.Status, test.expected)
		}
		if err := crewOperation.AddCrewMember(member); err != nil {
			t.Fatalf("AddCrewMember failed: %v", err)
		}
	}

	members, err := crewOperation.GetCrewMembers()
	if err != nil {
		t.Fatalf("GetCrewMembers failed: %v", err)
	}
	if len(members) != len(tests) {
		t.Fatalf("expected %d members, got %d", len(tests), len(members))
	}
	// The persisted status must survive the round trip untouched
	for i, test := range tests {
		if members[i].Status != test.expected {
			t.Errorf("stored status for %s = %q; expected %q", test.name, members[i].Status, test.expected)
		}
		if members[i].TotalHours != test.totalHours {
			t.Errorf("stored hours for %s = %v; expected %v", test.name, members[i].TotalHours, test.totalHours)
		}
	}
}

func TestCrewMemberOptionalLastFlight(t *testing.T) {
	crewOperation := NewCrewOperation(newTestDB(t), testQueryTimeout)

	member := crewOperation.NewCrewMember("fresh hire", 0, "")
	if err := crewOperation.AddCrewMember(member); err != nil {
		t.Fatalf("AddCrewMember failed: %v", err)
	}

	members, err := crewOperation.GetCrewMembers()
	if err != nil {
		t.Fatalf("GetCrewMembers failed: %v", err)
	}
	if len(members) != 1 || members[0].LastFlight != "" {
		t.Errorf("expected one member with empty last flight, got %+v", members)
	}
}
