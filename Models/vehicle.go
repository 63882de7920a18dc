package Models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	VehicleNumber string `json:"vehicle_number" gorm:"not null;uniqueIndex"`
	VehicleType   string `json:"vehicle_type"`
	ModelName     string `json:"model_name"`
	Capacity      int    `json:"capacity"`

	// Document list (name + expiry) stored as JSON, e.g. fitness,
	// permit and pollution certificates
	Documents datatypes.JSON `json:"documents"`

	// Running totals maintained on trip/maintenance writes
	TotalTrips           int     `json:"total_trips"`
	TotalKM              float64 `json:"total_km"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost"`
}

// MaintenanceRecord covers EMI, insurance and tax outgo for a vehicle
// over a date window.
type MaintenanceRecord struct {
	gorm.Model
	VehicleNumber   string  `json:"vehicle_number" gorm:"not null;index"`
	MaintenanceType string  `json:"maintenance_type" gorm:"type:varchar(20);not null"` // emi | insurance | tax
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	StartDate       string  `json:"start_date"` // YYYY-MM-DD
	EndDate         string  `json:"end_date"`
}

type FuelEntry struct {
	gorm.Model
	VehicleNumber string  `json:"vehicle_number" gorm:"not null;index"`
	Vendor        string  `json:"vendor"`
	FilledDate    string  `json:"filled_date"` // YYYY-MM-DD
	Litres        float64 `json:"litres"`
	CostPerLitre  float64 `json:"cost_per_litre"`
	TotalCost     float64 `json:"total_cost"`
	OdometerKM    float64 `json:"odometer_km"`
	Notes         string  `json:"notes"`
}

type SparePartEntry struct {
	gorm.Model
	VehicleNumber string  `json:"vehicle_number" gorm:"not null;index"`
	Vendor        string  `json:"vendor"`
	PartName      string  `json:"part_name"`
	Cost          float64 `json:"cost"`
	Quantity      float64 `json:"quantity"`
	ReplacedDate  string  `json:"replaced_date"` // YYYY-MM-DD
	Notes         string  `json:"notes"`
}

// Vendor is a fuel/spare-part supplier used for expense attribution.
type Vendor struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null;uniqueIndex"`
	Contact string `json:"contact"`
	Notes   string `json:"notes"`
}
