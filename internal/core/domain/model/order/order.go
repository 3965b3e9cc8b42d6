package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that did not come from NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrNoServiceChosen is the validation error for an empty service selection.
	ErrNoServiceChosen = errs.NewValueIsRequiredError("please choose a service first")

	ErrNoImageChosen = errs.NewValueIsRequiredError("please add at least one image")

	// ErrNothingToUndo is returned when the event log has a single entry.
	ErrNothingToUndo = errs.NewValueIsInvalidErrorWithCause(
		"undo is not available", errors.New("the order has no earlier status to revert to"))
)

// Order is one service job inside an orders request. The remote API owns
// its state; the dashboard rebuilds it from every fetch with RestoreOrder
// and uses it to decide which single action to offer.
//
// Invariants:
//   - the status belongs to the status set of the type
//   - the event log starts at the initial status of the type, moves one
//     legal step at a time and ends at the current status
//   - a service that is done stays done
type Order struct {
	id           kernel.ID
	name         string
	kind         Type
	status       Status
	createdAt    time.Time
	services     []ServiceOrdered
	imagesBefore []Image
	imagesAfter  []Image
	events       []Event

	isConstructed bool
}

// NewOrder creates an order in the initial status of its type with a single
// "created" event.
//
// Example:
//
//	o, err := order.NewOrder(id, "Air Max 90", order.Physical, services, time.Now())
//	if err != nil {
//	    return err
//	}
//	action, _ := o.NextAction() // add-before-images
func NewOrder(id kernel.ID, name string, kind Type, services []ServiceOrdered, at time.Time) (*Order, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	return RestoreOrder(RestoreParams{
		ID:       id,
		Name:     name,
		Type:     kind,
		Status:   kind.Initial(),
		Time:     at,
		Services: services,
		Events:   []Event{{Kind: Created, Time: at, Status: kind.Initial()}},
	})
}

// RestoreParams carries an order as reported by the remote API.
type RestoreParams struct {
	ID           kernel.ID
	Name         string
	Type         Type
	Status       Status
	Time         time.Time
	Services     []ServiceOrdered
	ImagesBefore []Image
	ImagesAfter  []Image
	Events       []Event
}

// RestoreOrder rebuilds an order from a remote snapshot and checks every
// invariant, including the event log walk.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		id:           p.ID,
		name:         p.Name,
		kind:         p.Type,
		status:       p.Status,
		createdAt:    p.Time,
		services:     slices.Clone(p.Services),
		imagesBefore: slices.Clone(p.ImagesBefore),
		imagesAfter:  slices.Clone(p.ImagesAfter),
		events:       slices.Clone(p.Events),
	}

	if err := errors.Join(
		p.ID.Validate(),
		p.Status.ValidateFor(p.Type),
		o.validateServices(),
	); err != nil {
		return nil, err
	}
	if err := validateHistory(p.Type, p.Status, p.Events); err != nil {
		return nil, err
	}

	o.isConstructed = true
	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID              { return o.id }
func (o *Order) Name() string               { return o.name }
func (o *Order) Type() Type                 { return o.kind }
func (o *Order) Status() Status             { return o.status }
func (o *Order) Time() time.Time            { return o.createdAt }
func (o *Order) Services() []ServiceOrdered { return slices.Clone(o.services) }
func (o *Order) ImagesBefore() []Image      { return slices.Clone(o.imagesBefore) }
func (o *Order) ImagesAfter() []Image       { return slices.Clone(o.imagesAfter) }
func (o *Order) Events() []Event            { return slices.Clone(o.events) }

// Price is the sum of the assigned prices of the ordered services.
func (o *Order) Price() kernel.Money {
	total := kernel.Zero()
	for _, s := range o.services {
		total = total.Add(s.AssignedPrice())
	}
	return total
}

// AllServicesDone reports whether every ordered service is marked done.
// An order without services counts as done.
func (o *Order) AllServicesDone() bool {
	for _, s := range o.services {
		if !s.Done() {
			return false
		}
	}
	return true
}

// PendingServices returns the services that are not done yet, in order.
func (o *Order) PendingServices() []ServiceOrdered {
	pending := make([]ServiceOrdered, 0, len(o.services))
	for _, s := range o.services {
		if !s.Done() {
			pending = append(pending, s)
		}
	}
	return pending
}

// NextAction is the single action the dashboard offers for this order.
func (o *Order) NextAction() (Action, bool) {
	return NextAction(o.kind, o.status, o.AllServicesDone())
}

// CanUndo reports whether the most recent transition can be reverted.
func (o *Order) CanUndo() bool {
	return len(o.events) > 1
}

// CanEditServices reports whether the service lines may still be changed.
// Once the garment is cleaned the services are settled.
func (o *Order) CanEditServices() bool {
	switch o.kind {
	case Physical:
		return o.status == Deposited || o.status == DeliveredStore
	case Locker:
		return o.status == OpenedLocker || o.status == Deposited ||
			o.status == RetrievedStore || o.status == DeliveredStore
	default:
		return false
	}
}

// ValidateAction returns an error unless action is the order's next action.
func (o *Order) ValidateAction(action Action) error {
	next, ok := o.NextAction()
	if !ok || next != action {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is not available",
			fmt.Errorf("%s is not the next action of %s order %s in %s status", action, o.kind, o.id, o.status),
		)
	}
	return nil
}

// ValidateServicesDone checks a progress update: at least one service, every
// id belongs to the order and none of them is done already.
func (o *Order) ValidateServicesDone(ids []kernel.ID) error {
	if len(ids) == 0 {
		return ErrNoServiceChosen
	}
	for _, id := range ids {
		i := o.serviceIndex(id)
		if i < 0 {
			return errs.NewObjectNotFoundError("serviceId", id.String())
		}
		if o.services[i].Done() {
			return errs.NewValueIsInvalidErrorWithCause(
				"service is invalid", fmt.Errorf("%s is already done", o.services[i].Name()))
		}
	}
	return nil
}

// Apply performs the status transition of action locally. It mirrors what
// the remote API does once the action has been confirmed; services progress
// goes through MarkServicesDone instead.
func (o *Order) Apply(action Action, at time.Time) error {
	if action == UpdateServiceProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid", errors.New("service progress is recorded with MarkServicesDone"))
	}
	if err := o.ValidateAction(action); err != nil {
		return err
	}
	target, err := action.Target(o.kind, o.status)
	if err != nil {
		return err
	}
	o.transition(target, at)
	return nil
}

// AddImages records before or after photos and performs the matching
// transition.
func (o *Order) AddImages(action Action, images []Image, at time.Time) error {
	if action != AddBeforeImages && action != AddAfterImages {
		return errs.NewValueIsInvalidErrorWithCause(
			"action is invalid", fmt.Errorf("%s does not take images", action))
	}
	if len(images) == 0 {
		return ErrNoImageChosen
	}
	if err := o.Apply(action, at); err != nil {
		return err
	}
	if action == AddBeforeImages {
		o.imagesBefore = append(o.imagesBefore, images...)
	} else {
		o.imagesAfter = append(o.imagesAfter, images...)
	}
	return nil
}

// MarkServicesDone flags the given services done. The status does not change.
func (o *Order) MarkServicesDone(ids []kernel.ID) error {
	if err := o.ValidateAction(UpdateServiceProgress); err != nil {
		return err
	}
	if err := o.ValidateServicesDone(ids); err != nil {
		return err
	}
	for _, id := range ids {
		i := o.serviceIndex(id)
		o.services[i] = o.services[i].markDone()
	}
	return nil
}

// Cancel abandons a locker order whose locker was opened but never deposited into.
func (o *Order) Cancel(at time.Time) error {
	target, err := o.status.Cancel(o.kind)
	if err != nil {
		return err
	}
	o.transition(target, at)
	return nil
}

// Undo reverts the most recent transition by dropping the last event.
func (o *Order) Undo() error {
	if !o.CanUndo() {
		return ErrNothingToUndo
	}
	o.events = o.events[:len(o.events)-1]
	o.status = o.events[len(o.events)-1].Status
	return nil
}

func (o *Order) transition(target Status, at time.Time) {
	o.status = target
	o.events = append(o.events, Event{Kind: Updated, Time: at, Status: target})
}

func (o *Order) serviceIndex(id kernel.ID) int {
	return slices.IndexFunc(o.services, func(s ServiceOrdered) bool {
		return s.ID().IsEqual(id)
	})
}

func (o *Order) validateServices() error {
	seen := make(map[string]struct{}, len(o.services))
	for _, s := range o.services {
		if err := s.Validate(); err != nil {
			return err
		}
		if _, dup := seen[s.ID().String()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"services are invalid", fmt.Errorf("service %s is ordered twice", s.ID()))
		}
		seen[s.ID().String()] = struct{}{}
	}
	return nil
}

// validateHistory checks the event log is a legal walk from an entry status
// of the type to current. Repeated statuses are allowed: the remote records
// updates that do not change the status. A single step back is an undo
// recorded as a new event.
func validateHistory(kind Type, current Status, events []Event) error {
	if len(events) == 0 {
		if current != kind.Initial() {
			return errs.NewValueIsInvalidErrorWithCause(
				"events are invalid", fmt.Errorf("%s order in %s status has no history", kind, current))
		}
		return nil
	}
	if first := events[0].Status; !kind.IsEntry(first) {
		return errs.NewValueIsInvalidErrorWithCause(
			"events are invalid", fmt.Errorf("%s order history starts at %s instead of %s", kind, first, kind.Initial()))
	}
	for i := 1; i < len(events); i++ {
		from, to := events[i-1].Status, events[i].Status
		if from != to && !CanTransition(kind, from, to) && !CanTransition(kind, to, from) {
			return errs.NewValueIsInvalidErrorWithCause(
				"events are invalid", fmt.Errorf("%s order cannot move from %s to %s", kind, from, to))
		}
	}
	if last := events[len(events)-1].Status; last != current {
		return errs.NewValueIsInvalidErrorWithCause(
			"events are invalid", fmt.Errorf("history ends at %s but the order is %s", last, current))
	}
	return nil
}
