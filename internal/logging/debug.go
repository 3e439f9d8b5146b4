package logging

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugEnabled returns true if the global level lets debug messages through
func DebugEnabled() bool {
	level := zerolog.GlobalLevel()
	return level <= zerolog.DebugLevel && level != zerolog.Disabled
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Debug().Msg(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
	}
}
