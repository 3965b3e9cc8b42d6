package order

import (
	"fmt"

	"dashboard/internal/pkg/errs"
)

// Action is a user step that moves an order forward. At any time an order
// offers at most one of them; see NextAction.
type Action int

const (
	NoAction Action = iota
	RetrieveFromLocker
	AddBeforeImages
	UpdateServiceProgress
	AddAfterImages
	DeliverToLocker
	ConfirmRetrieval
)

var actionNames = map[Action]string{
	RetrieveFromLocker:    "retrieve-from-locker",
	AddBeforeImages:       "add-before-images",
	UpdateServiceProgress: "update-service-progress",
	AddAfterImages:        "add-after-images",
	DeliverToLocker:       "deliver-to-locker",
	ConfirmRetrieval:      "confirm-retrieval",
}

func ParseAction(s string) (Action, error) {
	for action, name := range actionNames {
		if name == s {
			return action, nil
		}
	}
	return NoAction, errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%q is not an action", s))
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// NeedsLockerUnit reports whether the action goes through the two-phase
// open-unit / confirm-closed protocol.
func (a Action) NeedsLockerUnit() bool {
	return a == RetrieveFromLocker || a == DeliverToLocker
}

// NextAction is the single action an order offers, derived only from its
// type, its status and whether every ordered service is done. The second
// result is false when nothing can be done from the dashboard.
//
//	type      status           all done   action
//	locker    deposited        -          retrieve-from-locker
//	physical  deposited        -          add-before-images
//	locker    retrieved-store  -          add-before-images
//	any       delivered-store  no         update-service-progress
//	any       delivered-store  yes        add-after-images
//	locker    cleaned          -          deliver-to-locker
//	physical  cleaned          -          confirm-retrieval
func NextAction(t Type, s Status, allServicesDone bool) (Action, bool) {
	switch {
	case t == Locker && s == Deposited:
		return RetrieveFromLocker, true
	case t == Physical && s == Deposited,
		t == Locker && s == RetrievedStore:
		return AddBeforeImages, true
	case t.Validate() == nil && s == DeliveredStore && !allServicesDone:
		return UpdateServiceProgress, true
	case t.Validate() == nil && s == DeliveredStore && allServicesDone:
		return AddAfterImages, true
	case t == Locker && s == Cleaned:
		return DeliverToLocker, true
	case t == Physical && s == Cleaned:
		return ConfirmRetrieval, true
	default:
		return NoAction, false
	}
}

// Target is the status the order is in once the action has completed on
// the remote side. UpdateServiceProgress keeps the order in delivered-store.
func (a Action) Target(t Type, from Status) (Status, error) {
	// done only matters in delivered-store, where it picks between the two service actions.
	next, ok := NextAction(t, from, a == AddAfterImages)
	if !ok || next != a {
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
			"action is not available",
			fmt.Errorf("%s is not the next action of a %s order in %s status", a, t, from),
		)
	}
	if a == UpdateServiceProgress {
		return from, nil
	}
	return from.Advance(t)
}
