package Reports

import (
	"testing"

	"Gaadi/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func customer(id uint, name string) Models.Customer {
	return Models.Customer{Model: gorm.Model{ID: id}, Name: name}
}

func TestFilterTrips(t *testing.T) {
	names := CustomerNames([]Models.Customer{
		customer(1, "Acme Transport"),
		customer(2, "Bharat Movers"),
	})
	trips := []Models.Trip{
		{InvoiceNumber: "INV-001", TripDate: "2024-03-15", VehicleNumber: "MH12AB1234", DriverID: 1, CustomerID: 1},
		{InvoiceNumber: "INV-002", TripDate: "2024-04-01", VehicleNumber: "MH12AB1234", DriverID: 2, CustomerID: 2},
		{InvoiceNumber: "INV-003", TripDate: "2024-03-20", VehicleNumber: "MH14XY9999", DriverID: 1, CustomerID: 2},
	}

	// Month filter matches only that month's trips
	out := FilterTrips(trips, names, Filter{Month: "2024-03"})
	assert.Len(t, out, 2)
	for _, trip := range out {
		assert.Equal(t, "2024-03", trip.TripDate[:7])
	}

	// Vehicle filter
	out = FilterTrips(trips, names, Filter{VehicleNumber: "MH14XY9999"})
	assert.Len(t, out, 1)
	assert.Equal(t, "INV-003", out[0].InvoiceNumber)

	// Driver filter
	out = FilterTrips(trips, names, Filter{DriverID: 2})
	assert.Len(t, out, 1)
	assert.Equal(t, "INV-002", out[0].InvoiceNumber)

	// Case-insensitive customer substring
	out = FilterTrips(trips, names, Filter{CustomerQuery: "bharat"})
	assert.Len(t, out, 2)

	// Case-insensitive invoice substring
	out = FilterTrips(trips, names, Filter{InvoiceQuery: "inv-00"})
	assert.Len(t, out, 3)
	out = FilterTrips(trips, names, Filter{InvoiceQuery: "003"})
	assert.Len(t, out, 1)
}

func TestExpensesScopedToFilteredTripVehicles(t *testing.T) {
	// A driver filter narrows trips to one vehicle; fuel for other
	// vehicles must not leak into the report.
	snap := Snapshot{
		Trips: []Models.Trip{
			{InvoiceNumber: "INV-001", TripDate: "2024-03-15", VehicleNumber: "MH12AB1234", DriverID: 1, CustomerID: 1, TotalCharged: 1000},
			{InvoiceNumber: "INV-002", TripDate: "2024-03-16", VehicleNumber: "MH14XY9999", DriverID: 2, CustomerID: 1, TotalCharged: 2000},
		},
		Customers: []Models.Customer{customer(1, "Acme")},
		Fuel: []Models.FuelEntry{
			{VehicleNumber: "MH12AB1234", FilledDate: "2024-03-10", TotalCost: 500},
			{VehicleNumber: "MH14XY9999", FilledDate: "2024-03-11", TotalCost: 700},
		},
	}

	result := Summarize(snap, Filter{DriverID: 1})
	assert.Equal(t, 1, result.Totals.TotalTrips)
	assert.Equal(t, 500.0, result.Totals.FuelExpenses)

	// No trip constraints: all fuel counts
	result = Summarize(snap, Filter{})
	assert.Equal(t, 1200.0, result.Totals.FuelExpenses)
}

func TestSummarizeTotals(t *testing.T) {
	snap := Snapshot{
		Trips: []Models.Trip{
			{
				InvoiceNumber: "INV-001", TripDate: "2024-03-15", VehicleNumber: "V1",
				DriverID: 1, CustomerID: 1, DistanceKM: 100,
				TotalCharged: 1030, AmountReceived: 500, PendingAmount: 530,
				TollAmount: 100, ParkingAmount: 50, OtherExpenses: 25,
			},
		},
		Customers: []Models.Customer{customer(1, "Acme")},
		Fuel: []Models.FuelEntry{
			{VehicleNumber: "V1", FilledDate: "2024-03-12", TotalCost: 300},
		},
		SpareParts: []Models.SparePartEntry{
			{VehicleNumber: "V1", ReplacedDate: "2024-03-13", Cost: 25, Quantity: 2},
		},
		Maintenance: []Models.MaintenanceRecord{
			{VehicleNumber: "V1", MaintenanceType: "insurance", StartDate: "2024-03-01", Amount: 200},
		},
	}

	result := Summarize(snap, Filter{})

	assert.Equal(t, 1, result.Totals.TotalTrips)
	assert.Equal(t, 100.0, result.Totals.TotalDistance)
	assert.Equal(t, 1030.0, result.Totals.TotalRevenue)
	assert.Equal(t, 500.0, result.Totals.TotalPaid)
	assert.Equal(t, 530.0, result.Totals.TotalPending)
	assert.Equal(t, 150.0, result.Totals.TollAndParking)
	assert.Equal(t, 25.0, result.Totals.OtherTripExpenses)
	assert.Equal(t, 300.0, result.Totals.FuelExpenses)
	assert.Equal(t, 50.0, result.Totals.SpareExpenses)
	assert.Equal(t, 200.0, result.Totals.MaintenanceExpenses)
	assert.Equal(t, 725.0, result.Totals.TotalExpenses)
	assert.Equal(t, 305.0, result.Totals.NetProfit)
}

func TestSummarizeIdempotent(t *testing.T) {
	snap := Snapshot{
		Trips: []Models.Trip{
			{InvoiceNumber: "INV-001", TripDate: "2024-03-15", VehicleNumber: "V1", DriverID: 1, CustomerID: 1, TotalCharged: 1000},
		},
		Customers: []Models.Customer{customer(1, "Acme")},
	}
	filter := Filter{Month: "2024-03"}

	first := Summarize(snap, filter)
	second := Summarize(snap, filter)
	assert.Equal(t, first, second)
}

func TestTripRowCustomerFallback(t *testing.T) {
	snap := Snapshot{
		Trips: []Models.Trip{
			{InvoiceNumber: "INV-001", TripDate: "2024-03-15", VehicleNumber: "V1", DriverID: 1, CustomerID: 42},
		},
	}
	result := Summarize(snap, Filter{})
	assert.Len(t, result.Trips, 1)
	assert.Equal(t, "N/A", result.Trips[0].CustomerName)
}

func TestDashboard(t *testing.T) {
	snap := Snapshot{
		Trips: []Models.Trip{
			{TripDate: "2024-03-15", TotalCharged: 1000, TotalCost: 400, PendingAmount: 200},
			{TripDate: "2024-04-01", TotalCharged: 9999, TotalCost: 9999, PendingAmount: 9999},
		},
		Fuel: []Models.FuelEntry{
			{FilledDate: "2024-03-10", TotalCost: 300},
		},
		SpareParts: []Models.SparePartEntry{
			{ReplacedDate: "2024-03-11", Cost: 50, Quantity: 1},
		},
		Maintenance: []Models.MaintenanceRecord{
			{StartDate: "2024-03-01", Amount: 100},
		},
	}

	summary := Dashboard(snap, "2024-03")
	assert.Equal(t, 1, summary.Trips)
	assert.Equal(t, 1000.0, summary.Income)
	assert.Equal(t, 850.0, summary.Expenses)
	assert.Equal(t, 150.0, summary.Profit)
	assert.Equal(t, 200.0, summary.TotalDue)

	// Empty month covers everything
	all := Dashboard(snap, "")
	assert.Equal(t, 2, all.Trips)
}
