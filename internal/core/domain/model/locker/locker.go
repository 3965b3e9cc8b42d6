package locker

import (
	"errors"
	"fmt"
	"slices"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

var (
	ErrUnitIsNotConstructed   = errors.New("Unit must be created via NewUnit")
	ErrLockerIsNotConstructed = errors.New("Locker must be created via NewLocker")
)

// Unit is a single compartment of a locker.
type Unit struct { //nolint:recvcheck //using for validation
	id     kernel.ID
	number int
	cell   Cell
	guard  guard.ConstructorGuard
}

func NewUnit(id kernel.ID, number int, cell Cell) (Unit, error) {
	if err := errors.Join(id.Validate(), cell.Validate()); err != nil {
		return Unit{}, err
	}
	return Unit{id: id, number: number, cell: cell, guard: guard.NewConstructorGuard()}, nil
}

func (u Unit) Validate() error {
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

func (u Unit) ID() kernel.ID { return u.id }
func (u Unit) Number() int   { return u.number }
func (u Unit) Cell() Cell    { return u.cell }

// Locker is a grid of rows × columns units. Units are unique by id and by cell.
type Locker struct {
	id      kernel.ID
	name    string
	rows    int
	columns int
	units   []Unit

	isConstructed bool
}

// NewLocker builds a locker layout. A nil units slice means the remote did not
// report the units; such a locker cannot back a Layout.
func NewLocker(id kernel.ID, name string, rows, columns int, units []Unit) (*Locker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if rows < MinPosition {
		return nil, errs.NewValueIsOutOfRangeError("rows", rows, MinPosition, "unbounded")
	}
	if columns < MinPosition {
		return nil, errs.NewValueIsOutOfRangeError("columns", columns, MinPosition, "unbounded")
	}

	ids := make(map[string]struct{}, len(units))
	for i, u := range units {
		if err := u.Validate(); err != nil {
			return nil, err
		}
		if err := u.Cell().Within(rows, columns); err != nil {
			return nil, err
		}
		if _, dup := ids[u.ID().String()]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"units are invalid", fmt.Errorf("unit %s appears twice", u.ID()))
		}
		ids[u.ID().String()] = struct{}{}
		if slices.ContainsFunc(units[:i], func(o Unit) bool { return o.Cell().IsEqual(u.Cell()) }) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"units are invalid", fmt.Errorf("two units share %s", u.Cell()))
		}
	}

	return &Locker{
		id:            id,
		name:          name,
		rows:          rows,
		columns:       columns,
		units:         slices.Clone(units),
		isConstructed: true,
	}, nil
}

func (l *Locker) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLockerIsNotConstructed
	}
	return nil
}

func (l *Locker) ID() kernel.ID  { return l.id }
func (l *Locker) Name() string   { return l.name }
func (l *Locker) Rows() int      { return l.rows }
func (l *Locker) Columns() int   { return l.columns }
func (l *Locker) Units() []Unit  { return slices.Clone(l.units) }
func (l *Locker) hasUnits() bool { return l.units != nil }

// Unit finds a unit by id.
func (l *Locker) Unit(id kernel.ID) (Unit, bool) {
	i := slices.IndexFunc(l.units, func(u Unit) bool { return u.ID().IsEqual(id) })
	if i < 0 {
		return Unit{}, false
	}
	return l.units[i], true
}

// UnitAt finds the unit occupying cell.
func (l *Locker) UnitAt(cell Cell) (Unit, bool) {
	i := slices.IndexFunc(l.units, func(u Unit) bool { return u.Cell().IsEqual(cell) })
	if i < 0 {
		return Unit{}, false
	}
	return l.units[i], true
}
