// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/aviodesk/charterops/internal/http_server/controller"
	mid "github.com/aviodesk/charterops/internal/http_server/middleware"
	impl "github.com/aviodesk/charterops/internal/http_server/service"
	. "github.com/aviodesk/charterops/internal/interfaces"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	slogecho "github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// route is one row of the access policy table. Whether an operation
// requires a session is declared here, in one place, never ad hoc at the
// handler.
type route struct {
	method    string
	path      string
	handler   echo.HandlerFunc
	protected bool
}

// BuildServer assembles the echo instance with every middleware, page and
// route. Split from StartHttpServer so tests can drive the full stack
// through httptest.
func BuildServer(applicationContent *ApplicationContent) (*echo.Echo, error) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.HttpServer

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	e.HideBanner = true

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	flightOperation := applicationContent.Operations().FlightOperation()
	maintenanceOperation := applicationContent.Operations().MaintenanceOperation()
	crewOperation := applicationContent.Operations().CrewOperation()
	userOperation := applicationContent.Operations().UserOperation()

	fleetService := impl.NewFleetService(logger, flightOperation, maintenanceOperation, crewOperation)
	userService := impl.NewUserService(logger, httpConfig.Session, userOperation)

	fleetController := controller.NewFleetController(logger, fleetService)
	userController := controller.NewUserController(logger, httpConfig.Session, userService)

	routes := []route{
		{http.MethodGet, "/", userController.IndexPage, true},
		{http.MethodGet, "/flights", fleetController.FlightsPage, false},
		{http.MethodGet, "/add_flight", fleetController.AddFlightPage, false},
		{http.MethodPost, "/add_flight", fleetController.AddFlightSubmit, false},
		{http.MethodGet, "/maintenance", fleetController.MaintenancePage, false},
		{http.MethodGet, "/add_maintenance", fleetController.AddMaintenancePage, false},
		{http.MethodPost, "/add_maintenance", fleetController.AddMaintenanceSubmit, false},
		{http.MethodGet, "/crew", fleetController.CrewPage, false},
		{http.MethodGet, "/add_crew", fleetController.AddCrewPage, false},
		{http.MethodPost, "/add_crew", fleetController.AddCrewSubmit, false},
		{http.MethodGet, "/register", userController.RegisterPage, false},
		{http.MethodPost, "/register", userController.RegisterSubmit, false},
		{http.MethodGet, "/login", userController.LoginPage, false},
		{http.MethodPost, "/login", userController.LoginSubmit, false},
		{http.MethodGet, "/logout", userController.Logout, false},
		{http.MethodGet, "/protected", userController.ProtectedPage, true},
	}

	sessionGate := mid.SessionGate(httpConfig.Session)
	loadIdentity := mid.LoadIdentity(logger, userOperation)

	for _, r := range routes {
		if r.protected {
			e.Add(r.method, r.path, r.handler, sessionGate, loadIdentity)
		} else {
			e.Add(r.method, r.path, r.handler)
		}
	}

	return e, nil
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e, err := BuildServer(applicationContent)
	if err != nil {
		logger.FatalF("Failed to build http server: %v", err)
		return
	}

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	logger.InfoF("Starting http server on %s", config.HttpServer.Address)

	if err := e.Start(config.HttpServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
