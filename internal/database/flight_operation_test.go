package database

import (
	"testing"
)

func TestFlightRoundTrip(t *testing.T) {
	flightOperation := NewFlightOperation(newTestDB(t), testQueryTimeout)

	flight := flightOperation.NewFlight("J. Doe", "CO123", "2025-04-01 14:30", "JFK", "LAX", "N12345")
	if err := flightOperation.AddFlight(flight); err != nil {
		t.Fatalf("AddFlight failed: %v", err)
	}
	if flight.ID == 0 {
		t.Error("expected an assigned id after insert")
	}

	flights, err := flightOperation.GetFlights()
	if err != nil {
		t.Fatalf("GetFlights failed: %v", err)
	}
	if len(flights) != 1 {
		t.Fatalf("expected 1 flight, got %d", len(flights))
	}
	got := flights[0]
	if got.PilotName != "J. Doe" || got.FlightNumber != "CO123" || got.DepartureTime != "2025-04-01 14:30" ||
		got.Origin != "JFK" || got.Destination != "LAX" || got.Aircraft != "N12345" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestFlightListEmpty(t *testing.T) {
	flightOperation := NewFlightOperation(newTestDB(t), testQueryTimeout)

	flights, err := flightOperation.GetFlights()
	if err != nil {
		t.Fatalf("GetFlights on empty table failed: %v", err)
	}
	if len(flights) != 0 {
		t.Errorf("expected empty slice, got %d flights", len(flights))
	}
}

func TestFlightListOrderedByDepartureTime(t *testing.T) {
	flightOperation := NewFlightOperation(newTestDB(t), testQueryTimeout)

	departures := []string{"2025-06-01 09:00", "2025-04-01 14:30", "2025-05-15 23:10"}
	for i, dep := range departures {
		flight := flightOperation.NewFlight("", "FL", dep, "AAA", "BBB", "N1")
		flight.FlightNumber = flight.FlightNumber + string(rune('0'+i))
		if err := flightOperation.AddFlight(flight); err != nil {
			t.Fatalf("AddFlight failed: %v", err)
		}
	}

	flights, err := flightOperation.GetFlights()
	if err != nil {
		t.Fatalf("GetFlights failed: %v", err)
	}
	if len(flights) != len(departures) {
		t.Fatalf("expected %d flights, got %d", len(departures), len(flights))
	}
	for i := 1; i < len(flights); i++ {
		if flights[i-1].DepartureTime > flights[i].DepartureTime {
			t.Errorf("flights out of order: %q before %q", flights[i-1].DepartureTime, flights[i].DepartureTime)
		}
	}
}
