package Models

import (
	"gorm.io/gorm"
)

// Payment is one collection against a trip invoice. Many payments may
// apply to one trip; the invoice number is copied from the trip so a
// receipt stays valid even when printed standalone.
type Payment struct {
	gorm.Model
	InvoiceNumber string  `json:"invoice_number" gorm:"size:50;not null"`
	TripID        uint    `json:"trip_id" gorm:"not null;index"`
	PaymentDate   string  `json:"payment_date" gorm:"not null"` // YYYY-MM-DD
	PaymentMode   string  `json:"payment_mode" gorm:"size:50;not null"`
	Amount        float64 `json:"amount" gorm:"not null"`
	Notes         string  `json:"notes"`
}
