package sqlpager

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var _logger atomic.Pointer[zerolog.Logger]

func init() {
	SetLogger(zerolog.Nop())
}

// SetLogger replaces the package logger. The package only logs at debug
// level, e.g. when an undecodable cursor is discarded.
func SetLogger(l zerolog.Logger) {
	_logger.Store(&l)
}

func logger() *zerolog.Logger {
	return _logger.Load()
}
