// Package errcollection aggregates multiple errors into one.
package errcollection

import (
	"strings"

	"github.com/pkg/errors"
)

const delimiter = "; "

// ErrorCollection gives the ability to return multiple errors instead of one.
// It gathers errors and returns an error combining the messages of all
// collected errors, delimited by "; ".
type ErrorCollection struct {
	errorList []error
}

// Add inserts a new error into the collection. Nil errors are ignored.
func (e *ErrorCollection) Add(err error) {
	if err != nil {
		e.errorList = append(e.errorList, err)
	}
}

// GetErrIfAny returns an error with the combined message of all collected
// errors, or nil when none were collected.
func (e *ErrorCollection) GetErrIfAny() error {
	if len(e.errorList) == 0 {
		return nil
	}

	messages := make([]string, 0, len(e.errorList))
	for _, err := range e.errorList {
		messages = append(messages, err.Error())
	}
	return errors.New(strings.Join(messages, delimiter))
}
