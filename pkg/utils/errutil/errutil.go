// Package errutil provides the fail-fast error helpers used by the command
// line entry points.
package errutil

import (
	"github.com/sirupsen/logrus"
)

// Check logs the supplied error and exits if it is non-nil.
func Check(err error) {
	if err != nil {
		logrus.Debugf("%+v", err)
		logrus.Fatalf("%v", err)
	}
}

// CheckWithContext checks the error and exits if it is not nil. Logs additional context information.
func CheckWithContext(err error, context string) {
	if err != nil {
		logrus.Debugf("%s: %+v", context, err)
		logrus.Fatalf("%s: %v", context, err)
	}
}
