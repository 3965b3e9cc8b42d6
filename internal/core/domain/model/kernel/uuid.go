package kernel

import (
	"fmt"

	"dashboard/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFrom")

// UUID identifies records the dashboard creates itself: locker handoffs and
// the correlation ids sent with every GraphQL call. Identifiers issued by the
// remote API use ID instead.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the canonical textual form.
//
// Example:
//
//	handoffID, err := kernel.UUIDFromString(ctx.Param("handoffId"))
//	if err != nil {
//	    return err
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUIDFrom(id)
}

// UUIDFrom wraps a value read back from storage. The nil UUID is rejected.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	wrapped := UUID{id: id}
	if err := wrapped.Validate(); err != nil {
		return UUID{}, err
	}
	return wrapped, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Value exposes the underlying uuid.UUID for persistence mappings.
func (u UUID) Value() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
