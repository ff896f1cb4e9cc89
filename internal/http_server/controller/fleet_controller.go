// Package controller
package controller

import (
	"net/http"

	"github.com/aviodesk/charterops/internal/http_server/service"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/labstack/echo/v4"
)

type FleetController struct {
	logger  log.LoggerInterface
	service *service.FleetService
}

func NewFleetController(logger log.LoggerInterface, fleetService *service.FleetService) *FleetController {
	return &FleetController{logger: logger, service: fleetService}
}

func (controller *FleetController) FlightsPage(ctx echo.Context) error {
	flights, err := controller.service.ListFlights()
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "flights.html", echo.Map{"Flights": flights})
}

func (controller *FleetController) AddFlightPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "add_flight.html", echo.Map{})
}

func (controller *FleetController) AddFlightSubmit(ctx echo.Context) error {
	req := &service.RequestAddFlight{}
	if err := ctx.Bind(req); err != nil {
		controller.logger.ErrorF("error binding data: %v", err)
		return ctx.Render(http.StatusBadRequest, "add_flight.html", echo.Map{"Error": "Malformed form submission"})
	}
	if _, err := controller.service.CreateFlight(req); err != nil {
		if service.IsValidationError(err) {
			return ctx.Render(http.StatusBadRequest, "add_flight.html", echo.Map{"Error": err.Error()})
		}
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/flights")
}

func (controller *FleetController) MaintenancePage(ctx echo.Context) error {
	tasks, err := controller.service.ListMaintenanceTasks()
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "maintenance.html", echo.Map{"Tasks": tasks})
}

func (controller *FleetController) AddMaintenancePage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "add_maintenance.html", echo.Map{})
}

func (controller *FleetController) AddMaintenanceSubmit(ctx echo.Context) error {
	req := &service.RequestAddMaintenance{}
	if err := ctx.Bind(req); err != nil {
		controller.logger.ErrorF("error binding data: %v", err)
		return ctx.Render(http.StatusBadRequest, "add_maintenance.html", echo.Map{"Error": "Malformed form submission"})
	}
	if _, err := controller.service.CreateMaintenanceTask(req); err != nil {
		if service.IsValidationError(err) {
			return ctx.Render(http.StatusBadRequest, "add_maintenance.html", echo.Map{"Error": err.Error()})
		}
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/maintenance")
}

func (controller *FleetController) CrewPage(ctx echo.Context) error {
	members, err := controller.service.ListCrewMembers()
	if err != nil {
		return err
	}
	return ctx.Render(http.StatusOK, "crew.html", echo.Map{"Crew": members})
}

func (controller *FleetController) AddCrewPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "add_crew.html", echo.Map{})
}

func (controller *FleetController) AddCrewSubmit(ctx echo.Context) error {
	req := &service.RequestAddCrew{}
	if err := ctx.Bind(req); err != nil {
		controller.logger.ErrorF("error binding data: %v", err)
		return ctx.Render(http.StatusBadRequest, "add_crew.html", echo.Map{"Error": "Malformed form submission"})
	}
	if _, err := controller.service.CreateCrewMember(req); err != nil {
		if service.IsValidationError(err) {
			return ctx.Render(http.StatusBadRequest, "add_crew.html", echo.Map{"Error": err.Error()})
		}
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/crew")
}
