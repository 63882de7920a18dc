package Models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	Name          string  `json:"name" gorm:"not null"`
	Phone         string  `json:"phone"`
	LicenseNumber string  `json:"license_number"`
	JoiningDate   string  `json:"joining_date"` // YYYY-MM-DD
	MonthlySalary float64 `json:"monthly_salary"`
}

// DriverExpense is attributed both to a trip and to the trip's driver
// for the month in which it was recorded.
type DriverExpense struct {
	gorm.Model
	TripID      uint    `json:"trip_id" gorm:"index;constraint:OnDelete:CASCADE"`
	DriverID    uint    `json:"driver_id" gorm:"not null;index"`
	Description string  `json:"description" gorm:"not null"`
	Amount      float64 `json:"amount"`
	Notes       string  `json:"notes"`
}

type DriverSalaryPayment struct {
	gorm.Model
	DriverID uint    `json:"driver_id" gorm:"not null;index"`
	Amount   float64 `json:"amount"`
	PaidOn   string  `json:"paid_on"` // YYYY-MM-DD
	Notes    string  `json:"notes"`
}
