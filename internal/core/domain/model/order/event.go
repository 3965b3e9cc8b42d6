package order

import (
	"fmt"
	"time"

	"dashboard/internal/pkg/errs"
)

// EventKind mirrors the remote event log: the first entry is "created",
// every later status change is "updated".
type EventKind int

const (
	UnknownEvent EventKind = iota
	Created
	Updated
)

var eventKindNames = map[EventKind]string{
	Created: "created",
	Updated: "updated",
}

func ParseEventKind(s string) (EventKind, error) {
	for kind, name := range eventKindNames {
		if name == s {
			return kind, nil
		}
	}
	return UnknownEvent, errs.NewValueIsInvalidErrorWithCause("event type is invalid", fmt.Errorf("%q is not an event type", s))
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is one entry of the append-only status log of an order.
type Event struct {
	Kind   EventKind
	Time   time.Time
	Status Status
}

// Image is a before/after photo stored by the remote file service.
type Image struct {
	ID          string
	ContentType string
	URL         string
}
