// Package service
package service

import (
	"strconv"

	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/aviodesk/charterops/internal/interfaces/operation"
)

// FleetService carries the create and list flows for flights, maintenance
// tasks and crew members. Records are immutable once created, there are no
// update or delete flows.
type FleetService struct {
	logger               log.LoggerInterface
	flightOperation      operation.FlightOperationInterface
	maintenanceOperation operation.MaintenanceOperationInterface
	crewOperation        operation.CrewOperationInterface
}

func NewFleetService(
	logger log.LoggerInterface,
	flightOperation operation.FlightOperationInterface,
	maintenanceOperation operation.MaintenanceOperationInterface,
	crewOperation operation.CrewOperationInterface,
) *FleetService {
	return &FleetService{
		logger:               logger,
		flightOperation:      flightOperation,
		maintenanceOperation: maintenanceOperation,
		crewOperation:        crewOperation,
	}
}

func (fleetService *FleetService) ListFlights() ([]*operation.Flight, error) {
	return fleetService.flightOperation.GetFlights()
}

// CreateFlight validates the required form fields, pilot_name stays
// optional.
func (fleetService *FleetService) CreateFlight(req *RequestAddFlight) (*operation.Flight, error) {
	required := []struct{ field, value string }{
		{"flight_number", req.FlightNumber},
		{"departure_time", req.DepartureTime},
		{"origin", req.Origin},
		{"destination", req.Destination},
		{"aircraft", req.Aircraft},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &ValidationError{Field: r.field}
		}
	}

	flight := fleetService.flightOperation.NewFlight(
		req.PilotName, req.FlightNumber, req.DepartureTime, req.Origin, req.Destination, req.Aircraft)
	if err := fleetService.flightOperation.AddFlight(flight); err != nil {
		fleetService.logger.ErrorF("Failed to insert flight %s: %v", req.FlightNumber, err)
		return nil, err
	}
	return flight, nil
}

func (fleetService *FleetService) ListMaintenanceTasks() ([]*operation.MaintenanceTask, error) {
	return fleetService.maintenanceOperation.GetMaintenanceTasks()
}

func (fleetService *FleetService) CreateMaintenanceTask(req *RequestAddMaintenance) (*operation.MaintenanceTask, error) {
	required := []struct{ field, value string }{
		{"aircraft", req.Aircraft},
		{"description", req.Description},
		{"due_date", req.DueDate},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &ValidationError{Field: r.field}
		}
	}

	task := fleetService.maintenanceOperation.NewMaintenanceTask(req.Aircraft, req.Description, req.DueDate)
	if err := fleetService.maintenanceOperation.AddMaintenanceTask(task); err != nil {
		fleetService.logger.ErrorF("Failed to insert maintenance task for %s: %v", req.Aircraft, err)
		return nil, err
	}
	return task, nil
}

func (fleetService *FleetService) ListCrewMembers() ([]*operation.CrewMember, error) {
	return fleetService.crewOperation.GetCrewMembers()
}

// CreateCrewMember parses total_hours and derives the rest status once at
// creation, last_flight stays optional.
func (fleetService *FleetService) CreateCrewMember(req *RequestAddCrew) (*operation.CrewMember, error) {
	if req.Name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	if req.TotalHours == "" {
		return nil, &ValidationError{Field: "total_hours"}
	}
	totalHours, err := strconv.ParseFloat(req.TotalHours, 64)
	if err != nil {
		return nil, &ValidationError{Field: "total_hours"}
	}

	member := fleetService.crewOperation.NewCrewMember(req.Name, totalHours, req.LastFlight)
	if err := fleetService.crewOperation.AddCrewMember(member); err != nil {
		fleetService.logger.ErrorF("Failed to insert crew member %s: %v", req.Name, err)
		return nil, err
	}
	return member, nil
}
