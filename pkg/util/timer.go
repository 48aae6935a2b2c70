package util

import (
	"fmt"
	"time"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("util")

/*
	usage:

	func foo() {
		defer TimeThis(Msg("foo"))
		// code to measure
	}

*/

func Msg(msg string) (string, time.Time) {
	return msg, time.Now()
}

// TimeThis logs the time elapsed since start and returns it
func TimeThis(msg string, start time.Time) time.Duration {
	d := time.Since(start)
	log.Infof("%v: %v", msg, d)
	return d
}

// FormatTime renders d in seconds with microsecond precision
func FormatTime(msg string, d time.Duration) string {
	return fmt.Sprintf("%s: %0.6f sec", msg, d.Seconds())
}
