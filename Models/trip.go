package Models

import (
	"gorm.io/gorm"
)

// Trip is one billable transport job, the unit of invoicing.
type Trip struct {
	gorm.Model
	InvoiceNumber string `json:"invoice_number" gorm:"size:50;not null;index"`
	TripDate      string `json:"trip_date" gorm:"not null;index"` // YYYY-MM-DD
	FromLocation  string `json:"from_location"`
	ToLocation    string `json:"to_location"`
	RouteDetails  string `json:"route_details"`

	VehicleNumber string `json:"vehicle_number" gorm:"not null;index"`
	DriverID      uint   `json:"driver_id" gorm:"not null;index"`
	CustomerID    uint   `json:"customer_id" gorm:"not null;index"`

	// Odometer and distance; an explicit DistanceKM wins over the
	// value derived from the odometer readings
	StartKM    float64 `json:"start_km"`
	EndKM      float64 `json:"end_km"`
	DistanceKM float64 `json:"distance_km"`

	// Customer-side pricing
	PricingType          string  `json:"pricing_type" gorm:"type:varchar(20);default:per_km"` // per_km | package
	CostPerKM            float64 `json:"cost_per_km"`
	PackageAmount        float64 `json:"package_amount"`
	ChargedTollAmount    float64 `json:"charged_toll_amount"`
	ChargedParkingAmount float64 `json:"charged_parking_amount"`
	DiscountAmount       float64 `json:"discount_amount"`

	// Operator-side costs
	DieselUsed    float64 `json:"diesel_used"`
	PetrolUsed    float64 `json:"petrol_used"`
	FuelLitres    float64 `json:"fuel_litres"`
	TollAmount    float64 `json:"toll_amount"`
	ParkingAmount float64 `json:"parking_amount"`
	OtherExpenses float64 `json:"other_expenses"`
	DriverBhatta  float64 `json:"driver_bhatta"`
	Vendor        string  `json:"vendor"`

	// Stored computed fields, recalculated server-side on every write
	TotalCost      float64 `json:"total_cost"`
	TotalCharged   float64 `json:"total_charged"`
	AmountReceived float64 `json:"amount_received"`
	PendingAmount  float64 `json:"pending_amount"`

	// Relationships
	PricingItems  []TripPricingItem  `json:"pricing_items" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	DriverChanges []TripDriverChange `json:"driver_changes" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
	Payments      []Payment          `json:"payments,omitempty" gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE"`
}

func (Trip) TableName() string {
	return "trips"
}

// TripPricingItem is an invoice line item. Items of type "pricing" make
// up the base charge; items of type "charge" are surcharges.
type TripPricingItem struct {
	gorm.Model
	TripID      uint    `json:"trip_id" gorm:"not null;index"`
	Description string  `json:"description" gorm:"not null"`
	Quantity    float64 `json:"quantity" gorm:"default:1"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	ItemType    string  `json:"item_type" gorm:"type:varchar(20);default:pricing"` // pricing | charge
}

type TripDriverChange struct {
	gorm.Model
	TripID    uint   `json:"trip_id" gorm:"not null;index"`
	DriverID  uint   `json:"driver_id" gorm:"not null"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}
