// Package interfaces
package interfaces

import (
	"github.com/aviodesk/charterops/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *config.Config
	SaveConfig() error
}
