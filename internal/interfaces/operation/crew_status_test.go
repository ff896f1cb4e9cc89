// Package operation
package operation

import "testing"

func TestDeriveCrewStatus(t *testing.T) {
	tests := []struct {
		totalHours float64
		expected   CrewStatus
	}{
		{0, CrewStatusOK},
		{50.5, CrewStatusOK},
		{99.99, CrewStatusOK},
		{100.0, CrewStatusOK},
		{100.01, CrewStatusNeedsRest},
		{120, CrewStatusNeedsRest},
		{1000, CrewStatusNeedsRest},
	}
	for _, test := range tests {
		result := DeriveCrewStatus(test.totalHours)
		if result != test.expected {
			t.Errorf("DeriveCrewStatus(%v) = %q; expected %q", test.totalHours, result, test.expected)
		}
	}
}
