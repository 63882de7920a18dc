package Controllers

import (
	"fmt"
	"net/http/httptest"
	"testing"

	"Gaadi/Billing"
	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func tripApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	h := NewTripHandler(db)
	app.Post("/trips", h.CreateTrip)
	app.Put("/trips/:id", h.UpdateTrip)
	app.Delete("/trips/:id", h.DeleteTrip)
	return app
}

func seedParties(t *testing.T, db *gorm.DB) (Models.Customer, Models.Vehicle, Models.Driver) {
	t.Helper()
	customer := Models.Customer{Name: "Acme Transport"}
	require.NoError(t, db.Create(&customer).Error)
	vehicle := Models.Vehicle{VehicleNumber: "MH12AB1234"}
	require.NoError(t, db.Create(&vehicle).Error)
	driver := Models.Driver{Name: "Ramesh"}
	require.NoError(t, db.Create(&driver).Error)
	return customer, vehicle, driver
}

func TestCreateTripComputesTotalsAndStats(t *testing.T) {
	db := setupTestDB(t)
	customer, vehicle, driver := seedParties(t, db)
	app := tripApp(db)

	status, out := postJSON(t, app, "/trips", map[string]interface{}{
		"invoice_number": "INV-100",
		"trip_date":      "2024-03-15",
		"vehicle_number": vehicle.VehicleNumber,
		"driver_id":      driver.ID,
		"customer_id":    customer.ID,
		"pricing_type":   "per_km",
		"distance_km":    100,
		"cost_per_km":    10,
		"charged_toll_amount": 50,
		"toll_amount":         120,
		"driver_bhatta":       300,
	})
	require.Equal(t, fiber.StatusCreated, status, "body: %v", out)
	assert.Equal(t, 1050.0, out["total_charged"])
	assert.Equal(t, 1050.0, out["pending_amount"])
	assert.Equal(t, 420.0, out["total_cost"])

	var updatedCustomer Models.Customer
	require.NoError(t, db.First(&updatedCustomer, customer.ID).Error)
	assert.Equal(t, 1, updatedCustomer.TotalTrips)
	assert.Equal(t, 1050.0, updatedCustomer.TotalBilled)
	assert.Equal(t, 1050.0, updatedCustomer.PendingBalance)

	var updatedVehicle Models.Vehicle
	require.NoError(t, db.First(&updatedVehicle, vehicle.ID).Error)
	assert.Equal(t, 1, updatedVehicle.TotalTrips)
	assert.Equal(t, 100.0, updatedVehicle.TotalKM)
}

func TestCreateTripRejectsBadDiscount(t *testing.T) {
	db := setupTestDB(t)
	customer, vehicle, driver := seedParties(t, db)
	app := tripApp(db)

	status, _ := postJSON(t, app, "/trips", map[string]interface{}{
		"invoice_number":  "INV-101",
		"trip_date":       "2024-03-15",
		"vehicle_number":  vehicle.VehicleNumber,
		"driver_id":       driver.ID,
		"customer_id":     customer.ID,
		"pricing_type":    "per_km",
		"distance_km":     100,
		"cost_per_km":     10,
		"discount_amount": 200,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	db.Model(&Models.Trip{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateTripPricingItemsFormBase(t *testing.T) {
	db := setupTestDB(t)
	customer, vehicle, driver := seedParties(t, db)
	app := tripApp(db)

	status, out := postJSON(t, app, "/trips", map[string]interface{}{
		"invoice_number": "INV-102",
		"trip_date":      "2024-03-15",
		"vehicle_number": vehicle.VehicleNumber,
		"driver_id":      driver.ID,
		"customer_id":    customer.ID,
		"pricing_type":   "package",
		"package_amount": 9000,
		"pricing_items": []map[string]interface{}{
			{"description": "Mumbai-Pune leg", "item_type": "pricing", "amount": 2000},
			{"description": "Loading charges", "item_type": "charge", "quantity": 2, "rate": 100},
		},
	})
	require.Equal(t, fiber.StatusCreated, status, "body: %v", out)
	// Items replace the package amount; charge items add on top
	assert.Equal(t, 2200.0, out["total_charged"])
}

func TestDeleteTripRollsBackStats(t *testing.T) {
	db := setupTestDB(t)
	customer, vehicle, driver := seedParties(t, db)
	app := tripApp(db)

	status, out := postJSON(t, app, "/trips", map[string]interface{}{
		"invoice_number": "INV-103",
		"trip_date":      "2024-03-15",
		"vehicle_number": vehicle.VehicleNumber,
		"driver_id":      driver.ID,
		"customer_id":    customer.ID,
		"pricing_type":   "per_km",
		"distance_km":    100,
		"cost_per_km":    10,
	})
	require.Equal(t, fiber.StatusCreated, status)
	tripID := uint(out["ID"].(float64))

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/trips/%d", tripID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updatedCustomer Models.Customer
	require.NoError(t, db.First(&updatedCustomer, customer.ID).Error)
	assert.Equal(t, 0, updatedCustomer.TotalTrips)
	assert.Equal(t, 0.0, updatedCustomer.TotalBilled)
	assert.Equal(t, 0.0, updatedCustomer.PendingBalance)

	var updatedVehicle Models.Vehicle
	require.NoError(t, db.First(&updatedVehicle, vehicle.ID).Error)
	assert.Equal(t, 0, updatedVehicle.TotalTrips)
	assert.Equal(t, 0.0, updatedVehicle.TotalKM)

	var count int64
	db.Model(&Models.Trip{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateTripPreservesCollections(t *testing.T) {
	db := setupTestDB(t)
	customer, vehicle, driver := seedParties(t, db)
	app := tripApp(db)

	status, out := postJSON(t, app, "/trips", map[string]interface{}{
		"invoice_number": "INV-104",
		"trip_date":      "2024-03-15",
		"vehicle_number": vehicle.VehicleNumber,
		"driver_id":      driver.ID,
		"customer_id":    customer.ID,
		"pricing_type":   "per_km",
		"distance_km":    100,
		"cost_per_km":    10,
	})
	require.Equal(t, fiber.StatusCreated, status)
	tripID := uint(out["ID"].(float64))

	// Record a collection directly
	var trip Models.Trip
	require.NoError(t, db.First(&trip, tripID).Error)
	trip.AmountReceived = 400
	trip.PendingAmount = Billing.Pending(trip.TotalCharged, trip.AmountReceived)
	require.NoError(t, db.Save(&trip).Error)

	// Re-price the trip upward; the received amount must carry over
	body := map[string]interface{}{
		"invoice_number": "INV-104",
		"trip_date":      "2024-03-15",
		"vehicle_number": vehicle.VehicleNumber,
		"driver_id":      driver.ID,
		"customer_id":    customer.ID,
		"pricing_type":   "per_km",
		"distance_km":    150,
		"cost_per_km":    10,
		"amount_received": 99999, // must be ignored
	}
	status, out = putJSON(t, app, fmt.Sprintf("/trips/%d", tripID), body)
	require.Equal(t, fiber.StatusOK, status, "body: %v", out)
	assert.Equal(t, 1500.0, out["total_charged"])
	assert.Equal(t, 400.0, out["amount_received"])
	assert.Equal(t, 1100.0, out["pending_amount"])
}
