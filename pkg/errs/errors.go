// Package errs defines the error taxonomy shared by the generator core.
// Every failure raised by fitting, sampling, persistence or the inference
// facade belongs to exactly one of these types, so callers (the HTTP layer,
// the CLIs) can map them to user-visible behavior without string matching.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// DataError signals malformed or insufficient training data, like a column
// with no non-missing values or a table with too few rows.
type DataError struct {
	msg string
}

// NewData returns a new DataError with a formatted message.
func NewData(format string, args ...interface{}) *DataError {
	return &DataError{msg: fmt.Sprintf(format, args...)}
}

func (e *DataError) Error() string {
	return e.msg
}

// IsData checks whether the root cause of err is a DataError.
func IsData(err error) bool {
	_, ok := errors.Cause(err).(*DataError)
	return ok
}

// NotFittedError signals an internal inconsistency between a model container
// and the sampler, like a declared column without a fitted summary.
type NotFittedError struct {
	msg string
}

// NewNotFitted returns a new NotFittedError with a formatted message.
func NewNotFitted(format string, args ...interface{}) *NotFittedError {
	return &NotFittedError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFittedError) Error() string {
	return e.msg
}

// IsNotFitted checks whether the root cause of err is a NotFittedError.
func IsNotFitted(err error) bool {
	_, ok := errors.Cause(err).(*NotFittedError)
	return ok
}

// InvalidArgumentError signals a caller mistake, like a non-positive sample
// count or a categorical column name missing from the table.
type InvalidArgumentError struct {
	msg string
}

// NewInvalidArgument returns a new InvalidArgumentError with a formatted message.
func NewInvalidArgument(format string, args ...interface{}) *InvalidArgumentError {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

func (e *InvalidArgumentError) Error() string {
	return e.msg
}

// IsInvalidArgument checks whether the root cause of err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	_, ok := errors.Cause(err).(*InvalidArgumentError)
	return ok
}

// NotFoundError signals a missing model file.
type NotFoundError struct {
	msg string
}

// NewNotFound returns a new NotFoundError with a formatted message.
func NewNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string {
	return e.msg
}

// IsNotFound checks whether the root cause of err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*NotFoundError)
	return ok
}

// CorruptModelError signals an unreadable or structurally invalid persisted
// container, including payloads written by an incompatible format version.
type CorruptModelError struct {
	msg string
}

// NewCorruptModel returns a new CorruptModelError with a formatted message.
func NewCorruptModel(format string, args ...interface{}) *CorruptModelError {
	return &CorruptModelError{msg: fmt.Sprintf(format, args...)}
}

func (e *CorruptModelError) Error() string {
	return e.msg
}

// IsCorruptModel checks whether the root cause of err is a CorruptModelError.
func IsCorruptModel(err error) bool {
	_, ok := errors.Cause(err).(*CorruptModelError)
	return ok
}
