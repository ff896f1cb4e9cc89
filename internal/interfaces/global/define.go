// Package global
package global

import (
	"context"
	"flag"
)

const DefaultFilePermissions = 0644

var (
	ConfigFilePath = flag.String("config", "config.json", "path to the configuration file")
	DebugMode      = flag.Bool("debug", false, "enable debug logging")
)

type Callable interface {
	Invoke(ctx context.Context) error
}
