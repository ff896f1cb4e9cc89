// Package database
package database

import (
	"context"
	"time"

	. "github.com/aviodesk/charterops/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightOperation(db *gorm.DB, queryTimeout time.Duration) *FlightOperation {
	return &FlightOperation{db: db, queryTimeout: queryTimeout}
}

func (flightOperation *FlightOperation) NewFlight(pilotName, flightNumber, departureTime, origin, destination, aircraft string) *Flight {
	return &Flight{
		PilotName:     pilotName,
		FlightNumber:  flightNumber,
		DepartureTime: departureTime,
		Origin:        origin,
		Destination:   destination,
		Aircraft:      aircraft,
	}
}

func (flightOperation *FlightOperation) AddFlight(flight *Flight) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	return flightOperation.db.WithContext(ctx).Create(flight).Error
}

// GetFlights lists every flight, departure time ascending. Departure times
// are stored as text, so the order is lexicographic.
func (flightOperation *FlightOperation) GetFlights() (flights []*Flight, err error) {
	flights = make([]*Flight, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightOperation.queryTimeout)
	defer cancel()
	err = flightOperation.db.WithContext(ctx).Order("departure_time asc").Find(&flights).Error
	return
}
