package obs

import (
	"fmt"

	"github.com/infinit-lab/yolanda/logutils"
)

// YolandaLogger bridges Logf calls to the yolanda logging package used by
// the cmd binaries.
type YolandaLogger struct {
	Min Level
}

func (y YolandaLogger) Logf(level Level, format string, args ...interface{}) {
	if level < y.Min {
		return
	}
	msg := fmt.Sprintf(format, args...)
	switch level {
	case Debug:
		logutils.Trace(msg)
	case Info:
		logutils.Info(msg)
	default:
		logutils.Error(msg)
	}
}
