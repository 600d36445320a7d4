package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the zero UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("uuid")

// UUID identifies orders, couriers, customers, menu items and reviews.
// The zero value is invalid; use NewUUID or ParseUUID.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// ParseUUID parses the textual form of an identifier. paramName is reported in
// the validation error so callers can tell which input was malformed.
func ParseUUID(paramName, s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, errs.NewValueIsRequiredError(paramName)
	}
	return parsed, nil
}

// FromGoogleUUID wraps a github.com/google/uuid value read from storage.
func FromGoogleUUID(id uuid.UUID) (UUID, error) {
	wrapped := UUID{id: id}
	if err := wrapped.Validate(); err != nil {
		return UUID{}, err
	}
	return wrapped, nil
}

// MustParseUUID is ParseUUID for literals in tests and seeds. It panics on invalid input.
func MustParseUUID(s string) UUID {
	id, err := ParseUUID("uuid", s)
	if err != nil {
		panic(fmt.Sprintf("kernel: invalid uuid literal %q: %v", s, err))
	}
	return id
}

func (u UUID) String() string {
	return u.id.String()
}

// Google returns the underlying github.com/google/uuid value for persistence adapters.
func (u UUID) Google() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

func (u UUID) Validate() error {
	if u.IsZero() {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText lets UUIDs appear directly in JSON responses and map keys.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

func (u *UUID) UnmarshalText(data []byte) error {
	parsed, err := ParseUUID("uuid", string(data))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
