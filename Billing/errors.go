package Billing

import (
	"errors"
	"fmt"
)

// ErrInvalidPaymentAmount rejects a payment that exceeds the trip's
// pending balance (or is not a positive amount). The payment is not
// applied at all.
var ErrInvalidPaymentAmount = errors.New("payment amount exceeds pending balance")

// ValidationError reports a bad form field. It is surfaced to the user
// at the submission boundary and never affects stored data.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
