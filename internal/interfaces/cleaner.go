// Package interfaces
package interfaces

import (
	"github.com/aviodesk/charterops/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
