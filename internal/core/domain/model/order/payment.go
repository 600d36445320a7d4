package order

import (
	"fmt"
	"strings"

	"foodorder/internal/pkg/errs"
)

// DefaultPaymentMethod is recorded when the customer does not choose one.
const DefaultPaymentMethod = "Cash"

const maxPaymentMethodLength = 50

// PaymentStatus is recorded only; no gateway moves it.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

// Payment is the payment label attached to an order.
type Payment struct {
	method string
	status PaymentStatus
}

// NewPayment records a pending payment for method, or DefaultPaymentMethod when empty.
func NewPayment(method string) (Payment, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		method = DefaultPaymentMethod
	}
	if len(method) > maxPaymentMethodLength {
		return Payment{}, errs.NewValueIsOutOfRangeError("paymentMethod", len(method), 1, maxPaymentMethodLength)
	}
	return Payment{method: method, status: PaymentPending}, nil
}

// RestorePayment rebuilds a payment read from storage.
func RestorePayment(method string, status PaymentStatus) (Payment, error) {
	if status != PaymentPending && status != PaymentPaid {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause("paymentStatus", fmt.Errorf("%q is not a payment status", status))
	}
	if strings.TrimSpace(method) == "" {
		return Payment{}, errs.NewValueIsRequiredError("paymentMethod")
	}
	return Payment{method: method, status: status}, nil
}

func (p Payment) Method() string {
	return p.method
}

func (p Payment) Status() PaymentStatus {
	return p.status
}
