// Package config
package config

import (
	"github.com/aviodesk/charterops/internal/interfaces/log"
)

type Config struct {
	HttpServer *HttpServerConfig `json:"http_server"`
	Database   *DatabaseConfig   `json:"database"`
	General    *GeneralConfig    `json:"general"`
}

func DefaultConfig() *Config {
	return &Config{
		HttpServer: defaultHttpServerConfig(),
		Database:   defaultDatabaseConfig(),
		General:    defaultGeneralConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.HttpServer.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.General.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
