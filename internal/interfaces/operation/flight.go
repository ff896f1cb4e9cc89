// Package operation
package operation

// FlightOperationInterface 航班记录操作接口
type FlightOperationInterface interface {
	// NewFlight builds a flight record without writing it to the database
	NewFlight(pilotName, flightNumber, departureTime, origin, destination, aircraft string) (flight *Flight)
	// AddFlight durably persists one flight row, err is nil on success
	AddFlight(flight *Flight) (err error)
	// GetFlights returns all flights ordered by departure time ascending,
	// an empty table yields an empty slice and a nil error
	GetFlights() (flights []*Flight, err error)
}
