package modkit

import (
	"chardetcompat/internal/platform/config"
	"chardetcompat/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log, or a named child of the root logger when unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		l := d.Log.With().Str("component", component).Logger()
		return &l
	}
	return logger.Named(component)
}
