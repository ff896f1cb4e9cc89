// Package middleware
package middleware

import (
	"errors"
	"net/http"

	"github.com/aviodesk/charterops/internal/http_server/service"
	c "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/aviodesk/charterops/internal/interfaces/operation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const identityKey = "identity"

// LoginPath is where anonymous clients get redirected when they hit a
// protected route.
const LoginPath = "/login"

// SessionGate verifies the signed session cookie. Anonymous or expired
// sessions never reach the handler, they are redirected to the login page
// instead of receiving an API-style 401.
func SessionGate(config *c.SessionConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(config.Secret),
		TokenLookup:   "cookie:" + config.CookieName,
		SigningMethod: "HS512",
		NewClaimsFunc: func(ctx echo.Context) jwt.Claims {
			return new(service.SessionClaims)
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.Redirect(http.StatusSeeOther, LoginPath)
		},
	})
}

// LoadIdentity resolves the full account record for the uid carried in the
// verified session token. The record is fetched from storage on every
// request, nothing but the id lives in the cookie. Accounts deleted since
// the cookie was issued count as anonymous.
func LoadIdentity(logger log.LoggerInterface, userOperation operation.UserOperationInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, ok := ctx.Get("user").(*jwt.Token)
			if !ok {
				return ctx.Redirect(http.StatusSeeOther, LoginPath)
			}
			claims, ok := token.Claims.(*service.SessionClaims)
			if !ok {
				return ctx.Redirect(http.StatusSeeOther, LoginPath)
			}
			user, err := userOperation.GetUserByUid(claims.Uid)
			if err != nil {
				if !errors.Is(err, operation.ErrUserNotFound) {
					logger.ErrorF("Failed to load session identity %d: %v", claims.Uid, err)
				}
				return ctx.Redirect(http.StatusSeeOther, LoginPath)
			}
			ctx.Set(identityKey, user)
			return next(ctx)
		}
	}
}

// CurrentIdentity returns the authenticated account for this request, nil
// when the request is anonymous.
func CurrentIdentity(ctx echo.Context) *operation.User {
	user, _ := ctx.Get(identityKey).(*operation.User)
	return user
}
