package util

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// exit is replaced in tests.
var exit = os.Exit

func Warnf(format string, v ...interface{}) {
	Log.Warn(fmt.Sprintf(format, v...))
}

func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Log.Warn("warning", zap.Error(err))
		} else {
			format := v[0].(string)
			v = v[1:]
			Log.Warn(fmt.Sprintf(format, v...), zap.Error(err))
		}
		return true
	}
	return false
}

// Fatalf prints the message to stderr (and the log) and exits.
func Fatalf(format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	Log.Error(msg)
	_ = Log.Sync()
	fmt.Fprintln(os.Stderr, msg)
	exit(1)
}

func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s", fmt.Sprintf(format, v...), err)
		}
	}
}
