//go:build windows || plan9

package obs

import (
	"errors"

	"github.com/rs/zerolog"
)

func newSyslogLogger(tag string) (zerolog.Logger, error) {
	return zerolog.Nop(), errors.New("obs: system log is not available on this platform")
}
