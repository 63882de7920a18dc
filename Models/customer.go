package Models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null;index"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`

	// Running totals maintained on trip create/update/delete
	TotalTrips     int     `json:"total_trips"`
	TotalBilled    float64 `json:"total_billed"`
	PendingBalance float64 `json:"pending_balance"`
}
