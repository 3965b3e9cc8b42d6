package kernel

import (
	"fmt"
	"strings"

	"dashboard/internal/pkg/errs"
	"dashboard/internal/pkg/guard"
)

// ErrIDIsNotConstructed is returned when a zero-value ID is validated.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID identifies a record owned by the remote API (requests, orders, services,
// locker units, users). The remote assigns them, so ID treats the value as
// an opaque string and only checks that it is present and printable.
type ID struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewID wraps a remote identifier.
//
// Example:
//
//	orderID, err := kernel.NewID("ord_4f1c")
//	if err != nil {
//	    return err
//	}
func NewID(value string) (ID, error) {
	if value == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if strings.ContainsAny(value, " \t\r\n\"") {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q contains whitespace or quotes", value))
	}
	return ID{value: value, guard: guard.NewConstructorGuard()}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value string) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// NewIDs converts a list of remote identifiers, failing on the first invalid one.
func NewIDs(values []string) ([]ID, error) {
	ids := make([]ID, 0, len(values))
	for _, value := range values {
		id, err := NewID(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (id ID) Validate() error {
	return id.guard.Validate(ErrIDIsNotConstructed)
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Strings converts ids back to their wire form.
func Strings(ids []ID) []string {
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.value
	}
	return values
}
