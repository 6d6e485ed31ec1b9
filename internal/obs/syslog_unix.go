//go:build !windows && !plan9

package obs

import (
	"log/syslog"

	"github.com/rs/zerolog"
)

func newSyslogLogger(tag string) (zerolog.Logger, error) {
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_DAEMON, tag)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.SyslogLevelWriter(w)), nil
}
