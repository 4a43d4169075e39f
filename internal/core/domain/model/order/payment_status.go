package order

import (
	"fmt"

	"scribeassist/internal/pkg/errs"
)

// PaymentStatus tracks the money side of an order independently of the work
// lifecycle. Orders start unpaid; marking paid and refunding are admin
// actions at the application layer.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota

	PaymentPending
	PaymentPaid
	PaymentRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "unknown",
		PaymentPending:  "pending",
		PaymentPaid:     "paid",
		PaymentRefunded: "refunded",
	}
}

// PaymentStatusFromString parses the wire representation of a payment status.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for ps, str := range getPaymentStatusStrings() {
		if str == s && ps != PaymentUnknown {
			return ps, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status",
		fmt.Errorf("%q is not a known payment status", s),
	)
}

// String returns the snake_case name used in APIs and storage.
func (p PaymentStatus) String() string {
	if s, ok := getPaymentStatusStrings()[p]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects PaymentUnknown and out-of-range values.
func (p PaymentStatus) Validate() error {
	if p <= PaymentUnknown || p > PaymentRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status",
			fmt.Errorf("%d is not a valid payment status", p),
		)
	}
	return nil
}
