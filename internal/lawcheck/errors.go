package lawcheck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLawViolated is wrapped by every ViolationError.
	ErrLawViolated = errors.New("optic law violated")

	// ErrUnknownSuite is returned when a configured suite is not registered.
	ErrUnknownSuite = errors.New("unknown suite")

	// ErrUnknownFormat is returned by Encode for an unsupported report format.
	ErrUnknownFormat = errors.New("unknown report format")
)

// ViolationError lists the properties that failed during a run.
type ViolationError struct {
	Failures []Result
}

// Error implements the error interface.
func (e *ViolationError) Error() string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Suite+"/"+f.Property)
	}
	return fmt.Sprintf("%v: %s", ErrLawViolated, strings.Join(names, ", "))
}

// Unwrap returns ErrLawViolated for errors.Is.
func (e *ViolationError) Unwrap() error {
	return ErrLawViolated
}
