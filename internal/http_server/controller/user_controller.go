// Package controller
package controller

import (
	"errors"
	"net/http"

	mid "github.com/aviodesk/charterops/internal/http_server/middleware"
	"github.com/aviodesk/charterops/internal/http_server/service"
	c "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	logger  log.LoggerInterface
	config  *c.SessionConfig
	service *service.UserService
}

func NewUserController(logger log.LoggerInterface, config *c.SessionConfig, userService *service.UserService) *UserController {
	return &UserController{logger: logger, config: config, service: userService}
}

func (controller *UserController) IndexPage(ctx echo.Context) error {
	identity := mid.CurrentIdentity(ctx)
	data := echo.Map{}
	if identity != nil {
		data["Username"] = identity.Username
	}
	return ctx.Render(http.StatusOK, "index.html", data)
}

func (controller *UserController) RegisterPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "register.html", echo.Map{})
}

func (controller *UserController) RegisterSubmit(ctx echo.Context) error {
	req := &service.RequestRegister{}
	if err := ctx.Bind(req); err != nil {
		controller.logger.ErrorF("error binding data: %v", err)
		return ctx.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": "Malformed form submission"})
	}
	if _, err := controller.service.RegisterUser(req); err != nil {
		switch {
		case service.IsValidationError(err):
			return ctx.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": err.Error()})
		case errors.Is(err, service.ErrAccountExists):
			// Deliberately generic, never reveals whether the username or
			// the email collided
			return ctx.Render(http.StatusBadRequest, "register.html", echo.Map{"Error": "Username or email already exists"})
		default:
			return err
		}
	}
	return ctx.Redirect(http.StatusSeeOther, mid.LoginPath)
}

func (controller *UserController) LoginPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "login.html", echo.Map{})
}

func (controller *UserController) LoginSubmit(ctx echo.Context) error {
	req := &service.RequestLogin{}
	if err := ctx.Bind(req); err != nil {
		controller.logger.ErrorF("error binding data: %v", err)
		return ctx.Render(http.StatusBadRequest, "login.html", echo.Map{"Error": "Malformed form submission"})
	}
	token, err := controller.service.LoginUser(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ctx.Render(http.StatusUnauthorized, "login.html", echo.Map{"Error": "Invalid username or password"})
		}
		return err
	}
	ctx.SetCookie(controller.sessionCookie(token))
	return ctx.Redirect(http.StatusSeeOther, "/")
}

func (controller *UserController) Logout(ctx echo.Context) error {
	cookie := controller.sessionCookie("")
	cookie.MaxAge = -1
	ctx.SetCookie(cookie)
	return ctx.Redirect(http.StatusSeeOther, mid.LoginPath)
}

func (controller *UserController) ProtectedPage(ctx echo.Context) error {
	identity := mid.CurrentIdentity(ctx)
	if identity == nil {
		return ctx.Redirect(http.StatusSeeOther, mid.LoginPath)
	}
	return ctx.String(http.StatusOK, "Hello "+identity.Username+", this page requires a session.")
}

func (controller *UserController) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     controller.config.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
