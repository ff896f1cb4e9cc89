// Package config
package config

import (
	"errors"
	"fmt"

	"github.com/aviodesk/charterops/internal/interfaces/log"
)

type HttpServerConfig struct {
	Host      string         `json:"host"`
	Port      uint           `json:"port"`
	Address   string         `json:"-"`
	ProxyType int            `json:"proxy_type"`
	BodyLimit string         `json:"body_limit"`
	Session   *SessionConfig `json:"session"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Host:      "0.0.0.0",
		Port:      5000,
		ProxyType: 0,
		BodyLimit: "1MB",
		Session:   defaultSessionConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.Port == 0 || config.Port > 65535 {
		return ValidFail(errors.New("invalid json field http_server.port, must be between 1 and 65535"))
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.Warn("body_limit is empty, the length of the request body will not be restricted")
	}

	if result := config.Session.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
