package courier

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

const phoneDigits = 11

var (
	// ErrCourierIsNotConstructed is returned when using a Courier not built by NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("courier must be created via NewCourier constructor")

	// ErrAlreadyActive is returned when a courier who already carries an order tries to claim another.
	ErrAlreadyActive = errors.New("courier already has an active order")

	// ErrCourierUnavailable is returned when an administrator assigns an order to a busy courier.
	ErrCourierUnavailable = errors.New("courier is not available")

	// ErrNotOwner is returned when a courier acts on an order they do not hold.
	ErrNotOwner = errors.New("order is not held by this courier")
)

// Courier is the aggregate root for a delivery person.
//
// Invariants:
//   - status is busy iff currentOrderID is set
//   - email is unique across couriers (enforced by the repository)
type Courier struct {
	id             kernel.UUID
	name           string
	email          string
	phone          string
	passwordHash   string
	status         Status
	currentOrderID *kernel.UUID
	createdAt      time.Time
	version        int

	guard guard.ConstructorGuard
}

// NewCourier registers an available courier. id is the courier's identity
// user id; passwordHash is stored as given.
func NewCourier(id kernel.UUID, name, email, phone, passwordHash string, now time.Time) (*Courier, error) {
	c := &Courier{
		status:    Available,
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCourier rebuilds a courier read from storage.
func RestoreCourier(
	id kernel.UUID,
	name, email, phone, passwordHash string,
	status Status,
	currentOrderID *kernel.UUID,
	createdAt time.Time,
	version int,
) (*Courier, error) {
	c := &Courier{
		createdAt: createdAt.UTC(),
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setPasswordHash(passwordHash),
		c.setStatus(status, currentOrderID),
	); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Email() string {
	return c.email
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) PasswordHash() string {
	return c.passwordHash
}

func (c *Courier) Status() Status {
	return c.status
}

// CurrentOrder returns the order being carried, nil when available.
func (c *Courier) CurrentOrder() *kernel.UUID {
	if c.currentOrderID == nil {
		return nil
	}
	id := *c.currentOrderID
	return &id
}

func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Courier) Version() int {
	return c.version
}

func (c *Courier) IsAvailable() bool {
	return c.status == Available
}

// Claim makes the courier busy with orderID.
func (c *Courier) Claim(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if c.status != Available {
		return ErrAlreadyActive
	}
	c.status = Busy
	c.currentOrderID = &orderID
	return nil
}

// Release frees the courier from orderID. It fails with ErrNotOwner unless
// orderID is the courier's current order.
func (c *Courier) Release(orderID kernel.UUID) error {
	if c.status != Busy || c.currentOrderID == nil || !c.currentOrderID.IsEqual(orderID) {
		return ErrNotOwner
	}
	c.status = Available
	c.currentOrderID = nil
	return nil
}

// MarkPersisted advances the in-memory version after a successful conditional write.
func (c *Courier) MarkPersisted() {
	c.version++
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if len(phone) != phoneDigits || strings.IndexFunc(phone, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("expected %d digits", phoneDigits))
	}
	c.phone = phone
	return nil
}

func (c *Courier) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.passwordHash = hash
	return nil
}

func (c *Courier) setStatus(status Status, currentOrderID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == Busy && currentOrderID == nil {
		return errs.NewValueIsInvalidErrorWithCause("courierStatus", errors.New("busy courier must have a current order"))
	}
	if status == Available && currentOrderID != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierStatus", errors.New("available courier cannot have a current order"))
	}
	c.status = status
	if currentOrderID != nil {
		id := *currentOrderID
		c.currentOrderID = &id
	}
	return nil
}
