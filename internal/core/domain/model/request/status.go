package request

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Status of an orders request. Cancelled is terminal.
type Status int

const (
	UnknownStatus Status = iota
	InProgress
	Cancelled
)

var statusNames = map[Status]string{
	InProgress: "in-progress",
	Cancelled:  "cancelled",
}

func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a request status", s))
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a request status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Cancel moves an in-progress request to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != InProgress {
		return UnknownStatus, ErrRequestIsCancelled
	}
	return Cancelled, nil
}
