package Billing

import (
	"testing"

	"Gaadi/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemAmount(t *testing.T) {
	// Explicit amount wins over quantity*rate
	item := Models.TripPricingItem{Quantity: 3, Rate: 100, Amount: 250}
	assert.Equal(t, 250.0, ItemAmount(item))

	// Quantity * rate when no amount
	item = Models.TripPricingItem{Quantity: 3, Rate: 100}
	assert.Equal(t, 300.0, ItemAmount(item))

	// Quantity defaults to 1
	item = Models.TripPricingItem{Rate: 450}
	assert.Equal(t, 450.0, ItemAmount(item))
}

func TestEffectiveDistance(t *testing.T) {
	// Explicit distance wins over odometer readings
	trip := Models.Trip{StartKM: 1000, EndKM: 1100, DistanceKM: 80}
	assert.Equal(t, 80.0, EffectiveDistance(trip))

	trip = Models.Trip{StartKM: 1000, EndKM: 1100}
	assert.Equal(t, 100.0, EffectiveDistance(trip))

	// Reversed odometer readings floor at zero
	trip = Models.Trip{StartKM: 1100, EndKM: 1000}
	assert.Equal(t, 0.0, EffectiveDistance(trip))
}

func TestTotalChargedPerKM(t *testing.T) {
	trip := Models.Trip{
		PricingType:       PricingPerKM,
		DistanceKM:        100,
		CostPerKM:         10,
		ChargedTollAmount: 50,
		DiscountAmount:    20,
	}
	assert.Equal(t, 1030.0, TotalCharged(trip))
}

func TestTotalChargedPackage(t *testing.T) {
	trip := Models.Trip{
		PricingType:          PricingPackage,
		PackageAmount:        5000,
		ChargedTollAmount:    100,
		ChargedParkingAmount: 50,
	}
	assert.Equal(t, 5150.0, TotalCharged(trip))
}

func TestTotalChargedPricingItemsOverrideBase(t *testing.T) {
	// When pricing-type items exist they replace the per-km base, while
	// charge-type items stack on top as surcharges.
	trip := Models.Trip{
		PricingType: PricingPerKM,
		DistanceKM:  100,
		CostPerKM:   10,
		PricingItems: []Models.TripPricingItem{
			{ItemType: ItemTypePricing, Amount: 2000},
			{ItemType: ItemTypePricing, Quantity: 2, Rate: 250},
			{ItemType: ItemTypeCharge, Amount: 150},
		},
	}
	assert.Equal(t, 2500.0, BaseAmount(trip))
	assert.Equal(t, 150.0, Surcharges(trip))
	assert.Equal(t, 2650.0, TotalCharged(trip))
}

func TestTotalChargedPackageIgnoredWhenItemsPresent(t *testing.T) {
	trip := Models.Trip{
		PricingType:   PricingPackage,
		PackageAmount: 9000,
		PricingItems: []Models.TripPricingItem{
			{ItemType: ItemTypePricing, Amount: 1200},
		},
	}
	assert.Equal(t, 1200.0, TotalCharged(trip))
}

func TestTotalCost(t *testing.T) {
	trip := Models.Trip{
		DieselUsed:    2000,
		PetrolUsed:    100,
		TollAmount:    300,
		ParkingAmount: 50,
		OtherExpenses: 150,
		DriverBhatta:  500,
	}
	assert.Equal(t, 3100.0, TotalCost(trip))
}

func validTrip() Models.Trip {
	return Models.Trip{
		InvoiceNumber: "INV-001",
		TripDate:      "2024-03-15",
		VehicleNumber: "MH12AB1234",
		DriverID:      1,
		CustomerID:    1,
		PricingType:   PricingPerKM,
		DistanceKM:    100,
		CostPerKM:     10,
	}
}

func TestValidateTrip(t *testing.T) {
	require.NoError(t, ValidateTrip(validTrip()))

	trip := validTrip()
	trip.InvoiceNumber = ""
	assert.Error(t, ValidateTrip(trip))

	trip = validTrip()
	trip.VehicleNumber = ""
	assert.Error(t, ValidateTrip(trip))

	trip = validTrip()
	trip.DriverID = 0
	assert.Error(t, ValidateTrip(trip))

	trip = validTrip()
	trip.CustomerID = 0
	assert.Error(t, ValidateTrip(trip))

	trip = validTrip()
	trip.PricingType = "flat"
	assert.Error(t, ValidateTrip(trip))
}

func TestValidateTripPerKMNeedsDistance(t *testing.T) {
	trip := validTrip()
	trip.DistanceKM = 0
	trip.StartKM = 0
	trip.EndKM = 0
	err := ValidateTrip(trip)
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "distance_km", vErr.Field)

	// Odometer-derived distance is enough
	trip.StartKM = 100
	trip.EndKM = 180
	assert.NoError(t, ValidateTrip(trip))
}

func TestValidateTripPackageNeedsAmount(t *testing.T) {
	trip := validTrip()
	trip.PricingType = PricingPackage
	trip.PackageAmount = 0
	assert.Error(t, ValidateTrip(trip))

	trip.PackageAmount = 4500
	assert.NoError(t, ValidateTrip(trip))
}

func TestValidateTripDiscountWindow(t *testing.T) {
	trip := validTrip()

	// Zero discount is always fine
	trip.DiscountAmount = 0
	assert.NoError(t, ValidateTrip(trip))

	trip.DiscountAmount = 499
	assert.Error(t, ValidateTrip(trip))

	trip.DiscountAmount = 500
	assert.NoError(t, ValidateTrip(trip))

	trip.DiscountAmount = 1000
	assert.NoError(t, ValidateTrip(trip))

	trip.DiscountAmount = 1001
	assert.Error(t, ValidateTrip(trip))
}
