// Package config
package config

import (
	"errors"
	"time"

	"github.com/aviodesk/charterops/internal/interfaces/log"
	"github.com/thanhpk/randstr"
)

type SessionConfig struct {
	Secret          string        `json:"secret"`
	CookieName      string        `json:"cookie_name"`
	ExpiresTime     string        `json:"expires_time"`
	ExpiresDuration time.Duration `json:"-"`
}

func defaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Secret:      randstr.String(64),
		CookieName:  "charterops_session",
		ExpiresTime: "12h",
	}
}

func (config *SessionConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.session.expires_time"), err)
	} else {
		config.ExpiresDuration = duration
	}

	if config.CookieName == "" {
		return ValidFail(errors.New("invalid json field http_server.session.cookie_name, must not be empty"))
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.DebugF("Generated random session secret: %s", config.Secret)
	}

	return ValidPass()
}
