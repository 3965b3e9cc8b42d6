// Package handoffrepo persists locker handoffs so an opened unit can still be
// confirmed closed after a restart.
package handoffrepo

import (
	"time"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/locker"

	"github.com/google/uuid"
)

// HandoffDTO represents one run of the locker protocol. The layout is kept as
// jsonb exactly as the remote reported it when the unit was opened.
type HandoffDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Kind      string     `gorm:"type:varchar(16);not null"`
	RequestID string     `gorm:"type:varchar(64);not null;index"`
	OrderID   string     `gorm:"type:varchar(64);not null;index"`
	State     string     `gorm:"type:varchar(32);not null;index"`
	UnitID    *string    `gorm:"type:varchar(64);index"`
	Layout    *LayoutDTO `gorm:"type:jsonb;serializer:json"`
	OpenedAt  *time.Time
	ClosedAt  *time.Time
}

func (HandoffDTO) TableName() string {
	return "locker_handoffs"
}

type LayoutDTO struct {
	LockerID string    `json:"lockerId"`
	Name     string    `json:"name"`
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
	UnitID   string    `json:"unitId"`
	Units    []UnitDTO `json:"units"`
}

type UnitDTO struct {
	ID     string `json:"id"`
	Number int    `json:"number"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

func fromDomain(h *locker.Handoff) HandoffDTO {
	dto := HandoffDTO{
		ID:        h.ID().Value(),
		Kind:      h.Kind().String(),
		RequestID: h.RequestID().String(),
		OrderID:   h.OrderID().String(),
		State:     h.State().String(),
		OpenedAt:  optionalTime(h.OpenedAt()),
		ClosedAt:  optionalTime(h.ClosedAt()),
	}

	if layout := h.Layout(); !layout.IsZero() {
		unitID := layout.Unit().ID().String()
		l := layout.Locker()
		units := make([]UnitDTO, 0, len(l.Units()))
		for _, u := range l.Units() {
			units = append(units, UnitDTO{
				ID:     u.ID().String(),
				Number: u.Number(),
				Row:    u.Cell().Row(),
				Column: u.Cell().Column(),
			})
		}
		dto.UnitID = &unitID
		dto.Layout = &LayoutDTO{
			LockerID: l.ID().String(),
			Name:     l.Name(),
			Rows:     l.Rows(),
			Columns:  l.Columns(),
			UnitID:   unitID,
			Units:    units,
		}
	}
	return dto
}

func toDomain(dto HandoffDTO) (*locker.Handoff, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	kind, err := locker.ParseHandoffKind(dto.Kind)
	if err != nil {
		return nil, err
	}
	state, err := locker.ParseState(dto.State)
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.NewID(dto.RequestID)
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.NewID(dto.OrderID)
	if err != nil {
		return nil, err
	}

	var layout locker.Layout
	if dto.Layout != nil {
		layout, err = layoutToDomain(*dto.Layout)
		if err != nil {
			return nil, err
		}
	}

	return locker.RestoreHandoff(id, kind, requestID, orderID, state, layout,
		derefTime(dto.OpenedAt), derefTime(dto.ClosedAt))
}

func layoutToDomain(dto LayoutDTO) (locker.Layout, error) {
	units := make([]locker.Unit, 0, len(dto.Units))
	for _, u := range dto.Units {
		id, err := kernel.NewID(u.ID)
		if err != nil {
			return locker.Layout{}, err
		}
		cell, err := locker.NewCell(u.Row, u.Column)
		if err != nil {
			return locker.Layout{}, err
		}
		unit, err := locker.NewUnit(id, u.Number, cell)
		if err != nil {
			return locker.Layout{}, err
		}
		units = append(units, unit)
	}

	lockerID, err := kernel.NewID(dto.LockerID)
	if err != nil {
		return locker.Layout{}, err
	}
	l, err := locker.NewLocker(lockerID, dto.Name, dto.Rows, dto.Columns, units)
	if err != nil {
		return locker.Layout{}, err
	}
	unitID, err := kernel.NewID(dto.UnitID)
	if err != nil {
		return locker.Layout{}, err
	}
	return locker.NewLayout(unitID, l)
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
