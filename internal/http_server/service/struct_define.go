// Package service
package service

import (
	"errors"
	"fmt"
	"time"

	c "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/operation"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrAccountExists is deliberately silent about which field collided
	ErrAccountExists = errors.New("username or email already registered")
	// ErrInvalidCredentials covers both unknown account and wrong password
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ValidationError reports a missing required form field. It fails the
// request with a client error instead of surfacing an internal one.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

type RequestAddFlight struct {
	PilotName     string `form:"pilot_name"`
	FlightNumber  string `form:"flight_number"`
	DepartureTime string `form:"departure_time"`
	Origin        string `form:"origin"`
	Destination   string `form:"destination"`
	Aircraft      string `form:"aircraft"`
}

type RequestAddMaintenance struct {
	Aircraft    string `form:"aircraft"`
	Description string `form:"description"`
	DueDate     string `form:"due_date"`
}

type RequestAddCrew struct {
	Name       string `form:"name"`
	TotalHours string `form:"total_hours"`
	LastFlight string `form:"last_flight"`
}

type RequestRegister struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

type RequestLogin struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// SessionClaims is the cookie token payload. It carries nothing but the
// account id, the full identity record is reloaded from storage on every
// request.
type SessionClaims struct {
	Uid    uint `json:"uid"`
	config *c.SessionConfig
	jwt.RegisteredClaims
}

func NewSessionClaims(config *c.SessionConfig, user *operation.User) *SessionClaims {
	return &SessionClaims{
		Uid:    user.ID,
		config: config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "CharterOpsServer",
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.ExpiresDuration)),
		},
	}
}

func (claims *SessionClaims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	tokenString, _ := token.SignedString([]byte(claims.config.Secret))
	return tokenString
}
