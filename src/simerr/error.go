// Package simerr defines the errors returned by the simulator and how they map
// to process exit codes.
package simerr

import (
	"errors"
	"fmt"
)

// Error is an error returned while validating or running a simulation.
type Error struct {
	Code string
	Msg  string
}

const (
	Unknown          = "Unknown"
	Usage            = "Usage"
	UnknownAlgorithm = "UnknownAlgorithm"
	MalformedNumeric = "MalformedNumeric"
	BadGeometry      = "BadGeometry"
	Internal         = "Internal"
)

// Error returns a string version of the error.
func (e Error) Error() string {
	return fmt.Sprintf("diskarm: %s - %s", e.Code, e.Msg)
}

// Errorf builds an Error with a formatted message.
func Errorf(code, format string, args ...any) Error {
	return Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CanonicalCode returns the error's code, looking through wrapped errors.
func CanonicalCode(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}

// ExitCode maps err to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
