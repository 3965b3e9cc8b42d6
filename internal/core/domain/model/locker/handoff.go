package locker

import (
	"errors"
	"fmt"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/order"
	"dashboard/internal/pkg/errs"
)

var ErrHandoffIsNotConstructed = errors.New("Handoff must be created via NewHandoff or RestoreHandoff")

// HandoffKind tells which way the garment moves through the locker.
type HandoffKind int

const (
	UnknownHandoffKind HandoffKind = iota
	// Retrieve takes a deposited garment out of the locker for the store.
	Retrieve
	// Deliver puts a cleaned garment back into the locker.
	Deliver
)

var handoffKindNames = map[HandoffKind]string{
	Retrieve: "retrieve",
	Deliver:  "deliver",
}

func ParseHandoffKind(s string) (HandoffKind, error) {
	for k, name := range handoffKindNames {
		if name == s {
			return k, nil
		}
	}
	return UnknownHandoffKind, errs.NewValueIsInvalidErrorWithCause(
		"handoff kind is invalid", fmt.Errorf("%q is not a handoff kind", s))
}

// HandoffKindFor maps an order action to the handoff that carries it out.
func HandoffKindFor(action order.Action) (HandoffKind, error) {
	switch action {
	case order.RetrieveFromLocker:
		return Retrieve, nil
	case order.DeliverToLocker:
		return Deliver, nil
	default:
		return UnknownHandoffKind, errs.NewValueIsInvalidErrorWithCause(
			"action is invalid", fmt.Errorf("%s does not go through a locker unit", action))
	}
}

func (k HandoffKind) String() string {
	if name, ok := handoffKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Action is the order action the handoff completes.
func (k HandoffKind) Action() order.Action {
	switch k {
	case Retrieve:
		return order.RetrieveFromLocker
	case Deliver:
		return order.DeliverToLocker
	default:
		return order.NoAction
	}
}

// State of a handoff:
//
//	Idle ──Open──> UnitOpened ──ConfirmClosed──> ClosedConfirmed
//	                   └─────────Abandon───────> Abandoned
//
// Only a handoff in ClosedConfirmed has moved the order forward.
type State int

const (
	UnknownState State = iota
	Idle
	UnitOpened
	ClosedConfirmed
	Abandoned
)

var stateNames = map[State]string{
	Idle:            "idle",
	UnitOpened:      "unit-opened",
	ClosedConfirmed: "closed-confirmed",
	Abandoned:       "abandoned",
}

func ParseState(s string) (State, error) {
	for st, name := range stateNames {
		if name == s {
			return st, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%q is not a handoff state", s))
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s State) IsFinal() bool {
	return s == ClosedConfirmed || s == Abandoned
}

// Handoff tracks one run of the two-phase locker protocol for an order.
type Handoff struct {
	id        kernel.UUID
	kind      HandoffKind
	requestID kernel.ID
	orderID   kernel.ID
	state     State
	layout    Layout
	openedAt  time.Time
	closedAt  time.Time

	isConstructed bool
}

func NewHandoff(kind HandoffKind, requestID, orderID kernel.ID) (*Handoff, error) {
	if _, ok := handoffKindNames[kind]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"handoff kind is invalid", fmt.Errorf("%d is not a handoff kind", kind))
	}
	if err := errors.Join(requestID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	return &Handoff{
		id:            kernel.NewUUID(),
		kind:          kind,
		requestID:     requestID,
		orderID:       orderID,
		state:         Idle,
		isConstructed: true,
	}, nil
}

// RestoreHandoff rebuilds a persisted handoff. Opened and later states need a
// layout.
func RestoreHandoff(
	id kernel.UUID, kind HandoffKind, requestID, orderID kernel.ID,
	state State, layout Layout, openedAt, closedAt time.Time,
) (*Handoff, error) {
	h, err := NewHandoff(kind, requestID, orderID)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if _, ok := stateNames[state]; !ok {
		return nil, errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a handoff state", state))
	}
	if state != Idle && layout.IsZero() {
		return nil, errs.NewValueIsRequiredErrorWithCause("layout", fmt.Errorf("a %s handoff has no layout", state))
	}
	h.id, h.state, h.layout, h.openedAt, h.closedAt = id, state, layout, openedAt, closedAt
	return h, nil
}

func (h *Handoff) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHandoffIsNotConstructed
	}
	return nil
}

func (h *Handoff) ID() kernel.UUID         { return h.id }
func (h *Handoff) Kind() HandoffKind       { return h.kind }
func (h *Handoff) RequestID() kernel.ID    { return h.requestID }
func (h *Handoff) OrderID() kernel.ID      { return h.orderID }
func (h *Handoff) State() State            { return h.state }
func (h *Handoff) Layout() Layout          { return h.layout }
func (h *Handoff) OpenedAt() time.Time     { return h.openedAt }
func (h *Handoff) ClosedAt() time.Time     { return h.closedAt }
func (h *Handoff) UnitID() kernel.ID       { return h.layout.Unit().ID() }
func (h *Handoff) IsClosedConfirmed() bool { return h.state == ClosedConfirmed }

// Open is phase one: the remote has opened a unit and returned its layout.
func (h *Handoff) Open(layout Layout, at time.Time) error {
	if err := h.expect(Idle, UnitOpened); err != nil {
		return err
	}
	if layout.IsZero() {
		return ErrIncompleteLayout
	}
	h.layout = layout
	h.state = UnitOpened
	h.openedAt = at
	return nil
}

// ConfirmClosed is phase two: the operator closed the door and the remote
// accepted the confirmation.
func (h *Handoff) ConfirmClosed(at time.Time) error {
	if err := h.expect(UnitOpened, ClosedConfirmed); err != nil {
		return err
	}
	h.state = ClosedConfirmed
	h.closedAt = at
	return nil
}

// Abandon gives up on a handoff that was never confirmed.
func (h *Handoff) Abandon(at time.Time) error {
	if h.state.IsFinal() {
		return h.transitionError(Abandoned)
	}
	h.state = Abandoned
	h.closedAt = at
	return nil
}

// IsExpired reports whether an opened unit has waited for confirmation longer than ttl.
func (h *Handoff) IsExpired(now time.Time, ttl time.Duration) bool {
	return h.state == UnitOpened && now.Sub(h.openedAt) > ttl
}

func (h *Handoff) expect(from, to State) error {
	if h.state != from {
		return h.transitionError(to)
	}
	return nil
}

func (h *Handoff) transitionError(to State) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"state is invalid",
		fmt.Errorf("%s handoff cannot move from %s to %s", h.kind, h.state, to),
	)
}
