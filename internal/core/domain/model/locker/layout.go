package locker

import (
	"errors"

	"dashboard/internal/core/domain/model/kernel"
)

// ErrIncompleteLayout is shown to the operator verbatim when the remote opened
// a unit but did not report the locker it belongs to.
var ErrIncompleteLayout = errors.New("failed to fetch the whole locker layout")

// Layout is the result of opening a unit: the unit together with the whole
// locker, so the operator can find the open door.
type Layout struct {
	unit   Unit
	locker *Locker
}

// NewLayout fails with ErrIncompleteLayout when the locker or its units are
// missing, or when the opened unit is not one of them.
func NewLayout(unitID kernel.ID, l *Locker) (Layout, error) {
	if err := unitID.Validate(); err != nil {
		return Layout{}, err
	}
	if l.Validate() != nil || !l.hasUnits() {
		return Layout{}, ErrIncompleteLayout
	}
	unit, ok := l.Unit(unitID)
	if !ok {
		return Layout{}, ErrIncompleteLayout
	}
	return Layout{unit: unit, locker: l}, nil
}

func (l Layout) Unit() Unit      { return l.unit }
func (l Layout) Locker() *Locker { return l.locker }
func (l Layout) IsZero() bool    { return l.locker == nil }
