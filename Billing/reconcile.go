package Billing

import (
	"Gaadi/Models"
)

type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPartial Status = "Partial"
	StatusPending Status = "Pending"
)

// Reconciliation is the read-side view of a trip's payment position.
type Reconciliation struct {
	TotalCharged  float64 `json:"total_charged"`
	TotalReceived float64 `json:"total_received"`
	PendingAmount float64 `json:"pending_amount"`
	Status        Status  `json:"status"`
}

// TotalReceived sums the amount recorded directly on the trip with all
// payments linked to it. Payments are append-only; negative amounts are
// never netted here.
func TotalReceived(direct float64, payments []Models.Payment) float64 {
	total := direct
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// Pending returns the unpaid balance, never negative.
func Pending(totalCharged, received float64) float64 {
	pending := totalCharged - received
	if pending < 0 {
		return 0
	}
	return pending
}

// DeriveStatus maps the balance to Paid / Partial / Pending.
func DeriveStatus(totalCharged, received float64) Status {
	pending := Pending(totalCharged, received)
	switch {
	case pending == 0:
		return StatusPaid
	case pending == totalCharged:
		return StatusPending
	default:
		return StatusPartial
	}
}

// Reconcile derives the full payment position of a trip from its direct
// amount and linked payments. Pure and idempotent over a snapshot.
func Reconcile(totalCharged, direct float64, payments []Models.Payment) Reconciliation {
	received := TotalReceived(direct, payments)
	return Reconciliation{
		TotalCharged:  totalCharged,
		TotalReceived: received,
		PendingAmount: Pending(totalCharged, received),
		Status:        DeriveStatus(totalCharged, received),
	}
}

// ValidatePayment rejects a submission whose amount is not positive or
// exceeds the trip's current pending balance. The caller must re-check
// inside the write transaction; this pre-check is only advisory.
func ValidatePayment(pendingAmount, amount float64) error {
	if amount <= 0 {
		return ErrInvalidPaymentAmount
	}
	if amount > pendingAmount {
		return ErrInvalidPaymentAmount
	}
	return nil
}
