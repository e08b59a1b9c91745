// Package autoload initializes the global logger from LOGGER_* environment
// variables when blank-imported.
package autoload

import (
	configx "github.com/tanpawarit/Libria-Library-Backend/pkg/config"
	logx "github.com/tanpawarit/Libria-Library-Backend/pkg/logger"
)

func init() {
	conf := configx.MustNew[logx.Config]("LOGGER")
	logx.Init(*conf)
}
