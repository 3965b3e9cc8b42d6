package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Type tells how the garment reaches the store. It is fixed when the order is
// created and selects the status sequence the order walks through.
type Type int

const (
	UnknownType Type = iota

	// Physical orders are dropped off at the store counter.
	Physical

	// Locker orders are deposited by the customer into a locker unit and
	// travel between the locker and the store.
	Locker
)

var typeNames = map[Type]string{
	Physical: "physical",
	Locker:   "locker",
}

// ParseType converts the wire name ("physical" or "locker").
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not an order type", s))
}

func (t Type) Validate() error {
	if _, ok := typeNames[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Initial is the status an order of this type is created in.
//
// A physical order starts as deposited: it is at the counter but the
// before-images have not been taken yet. Adding them moves it to
// delivered-store.
func (t Type) Initial() Status {
	switch t {
	case Physical:
		return Deposited
	case Locker:
		return OpenedLocker
	default:
		return UnknownStatus
	}
}

// IsEntry reports whether a remote history of this type may start at s.
// Besides the initial status, physical orders keyed in at the counter are
// recorded straight as delivered-store.
func (t Type) IsEntry(s Status) bool {
	return s == t.Initial() || (t == Physical && s == DeliveredStore)
}

// Sequence returns the forward path of the type, initial status first.
// Cancelled is not part of it: it branches off OpenedLocker.
func (t Type) Sequence() []Status {
	switch t {
	case Physical:
		return []Status{Deposited, DeliveredStore, Cleaned, RetrievedBack}
	case Locker:
		return []Status{OpenedLocker, Deposited, RetrievedStore, DeliveredStore, Cleaned, DeliveredBack, RetrievedBack}
	default:
		return nil
	}
}
