// Package service
package service

import (
	"errors"

	c "github.com/aviodesk/charterops/internal/interfaces/config"
	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/aviodesk/charterops/internal/interfaces/operation"
)

type UserService struct {
	logger        log.LoggerInterface
	config        *c.SessionConfig
	userOperation operation.UserOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	config *c.SessionConfig,
	userOperation operation.UserOperationInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		config:        config,
		userOperation: userOperation,
	}
}

// RegisterUser hashes the password and inserts the account. A uniqueness
// conflict on either username or email comes back as ErrAccountExists
// without naming the colliding field.
func (userService *UserService) RegisterUser(req *RequestRegister) (*operation.User, error) {
	required := []struct{ field, value string }{
		{"username", req.Username},
		{"email", req.Email},
		{"password", req.Password},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, &ValidationError{Field: r.field}
		}
	}

	user, err := userService.userOperation.NewUser(req.Username, req.Email, req.Password)
	if err != nil {
		userService.logger.ErrorF("Failed to build account %s: %v", req.Username, err)
		return nil, err
	}
	if err := userService.userOperation.AddUser(user); err != nil {
		if operation.IsConstraintViolation(err) {
			userService.logger.InfoF("Registration rejected, identifier already taken")
			return nil, ErrAccountExists
		}
		userService.logger.ErrorF("Failed to insert account %s: %v", req.Username, err)
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates and issues the signed session token. Unknown
// accounts and wrong passwords are indistinguishable to the caller.
func (userService *UserService) LoginUser(req *RequestLogin) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := userService.userOperation.GetUserByUsername(req.Username)
	if err != nil {
		if !errors.Is(err, operation.ErrUserNotFound) {
			userService.logger.ErrorF("Failed to look up account %s: %v", req.Username, err)
			return "", err
		}
		return "", ErrInvalidCredentials
	}

	if !userService.userOperation.VerifyUserPassword(user, req.Password) {
		return "", ErrInvalidCredentials
	}

	claims := NewSessionClaims(userService.config, user)
	return claims.GenerateKey(), nil
}
