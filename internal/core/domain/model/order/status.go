package order

import (
	"fmt"
	"slices"

	"dashboard/internal/pkg/errs"
)

// Status is the fulfillment state of an order.
//
// Physical orders:
//
//	Deposited ──> DeliveredStore ──> Cleaned ──> RetrievedBack
//
// Locker orders:
//
//	OpenedLocker ──┬──> Deposited ──> RetrievedStore ──> DeliveredStore ──> Cleaned ──> DeliveredBack ──> RetrievedBack
//	               └──> Cancelled
//
// Statuses only move one step forward at a time. The only way back is an
// explicit undo, which restores the previous status from the event log.
type Status int

const (
	UnknownStatus Status = iota
	OpenedLocker
	Cancelled
	Deposited
	RetrievedStore
	DeliveredStore
	Cleaned
	DeliveredBack
	RetrievedBack
)

var statusNames = map[Status]string{
	OpenedLocker:   "opened-locker",
	Cancelled:      "cancelled",
	Deposited:      "deposited",
	RetrievedStore: "retrieved-store",
	DeliveredStore: "delivered-store",
	Cleaned:        "cleaned",
	DeliveredBack:  "delivered-back",
	RetrievedBack:  "retrieved-back",
}

// ParseStatus converts a kebab-case wire name such as "delivered-store".
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the value is one of the known statuses, regardless of type.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidateFor checks the status belongs to the status set of the order type.
func (s Status) ValidateFor(t Type) error {
	if err := firstError(t.Validate(), s.Validate()); err != nil {
		return err
	}
	if s == Cancelled && t == Locker {
		return nil
	}
	if !slices.Contains(t.Sequence(), s) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status for a %s order", s, t),
		)
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Label is the human readable form, e.g. "Delivered store".
func (s Status) Label() string {
	name := []byte(s.String())
	for i, c := range name {
		if c == '-' {
			name[i] = ' '
		}
	}
	if len(name) > 0 && name[0] >= 'a' && name[0] <= 'z' {
		name[0] -= 'a' - 'A'
	}
	return string(name)
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal(t Type) bool {
	if s == Cancelled {
		return true
	}
	seq := t.Sequence()
	return len(seq) > 0 && seq[len(seq)-1] == s
}

// Advance returns the next status on the forward path of the type.
//
// Returns:
//   - (next, nil) when the status is valid for the type and not terminal
//   - (UnknownStatus, error) otherwise
func (s Status) Advance(t Type) (Status, error) {
	if err := s.ValidateFor(t); err != nil {
		return UnknownStatus, err
	}
	seq := t.Sequence()
	i := slices.Index(seq, s)
	if i < 0 || i == len(seq)-1 {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is a final status of a %s order", s, t),
		)
	}
	return seq[i+1], nil
}

// Cancel moves a locker order that was never deposited to Cancelled.
func (s Status) Cancel(t Type) (Status, error) {
	if t != Locker || s != OpenedLocker {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel a %s order", s, t),
		)
	}
	return Cancelled, nil
}

// CanTransition reports whether from -> to is a single legal step for the type.
func CanTransition(t Type, from, to Status) bool {
	if next, err := from.Advance(t); err == nil && next == to {
		return true
	}
	if cancelled, err := from.Cancel(t); err == nil && cancelled == to {
		return true
	}
	return false
}

func firstError(candidates ...error) error {
	for _, err := range candidates {
		if err != nil {
			return err
		}
	}
	return nil
}
