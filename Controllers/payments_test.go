package Controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"Gaadi/Billing"
	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&Models.Customer{}, &Models.Vehicle{}, &Models.Driver{},
		&Models.Trip{}, &Models.TripPricingItem{}, &Models.TripDriverChange{},
		&Models.Payment{}, &Models.DriverExpense{},
		&Models.FuelEntry{}, &Models.SparePartEntry{}, &Models.MaintenanceRecord{},
		&Models.DashboardNote{},
	))

	Models.DB = db
	return db
}

func seedTrip(t *testing.T, db *gorm.DB) Models.Trip {
	t.Helper()

	customer := Models.Customer{Name: "Acme Transport"}
	require.NoError(t, db.Create(&customer).Error)
	vehicle := Models.Vehicle{VehicleNumber: "MH12AB1234"}
	require.NoError(t, db.Create(&vehicle).Error)
	driver := Models.Driver{Name: "Ramesh", MonthlySalary: 20000}
	require.NoError(t, db.Create(&driver).Error)

	trip := Models.Trip{
		InvoiceNumber: "INV-001",
		TripDate:      "2024-03-15",
		VehicleNumber: vehicle.VehicleNumber,
		DriverID:      driver.ID,
		CustomerID:    customer.ID,
		PricingType:   Billing.PricingPerKM,
		DistanceKM:    100,
		CostPerKM:     10,
	}
	trip.TotalCharged = Billing.TotalCharged(trip)
	trip.PendingAmount = trip.TotalCharged
	require.NoError(t, db.Create(&trip).Error)
	return trip
}

func paymentApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	pc := NewPaymentController(db)
	app.Post("/payments", pc.CreatePayment)
	app.Delete("/payments/:id", pc.DeletePayment)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func putJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	json.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestCreatePaymentUpdatesBalance(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db)
	app := paymentApp(db)

	status, out := postJSON(t, app, "/payments", map[string]interface{}{
		"trip_id":      trip.ID,
		"payment_date": "2024-03-20",
		"payment_mode": "upi",
		"amount":       400,
	})
	require.Equal(t, fiber.StatusCreated, status, "body: %v", out)
	assert.Equal(t, "Partial", out["payment_status"])
	assert.Equal(t, 600.0, out["pending_amount"])

	var updated Models.Trip
	require.NoError(t, db.First(&updated, trip.ID).Error)
	assert.Equal(t, 400.0, updated.AmountReceived)
	assert.Equal(t, 600.0, updated.PendingAmount)

	// Invoice number copied onto the payment
	var payment Models.Payment
	require.NoError(t, db.Where("trip_id = ?", trip.ID).First(&payment).Error)
	assert.Equal(t, trip.InvoiceNumber, payment.InvoiceNumber)
}

func TestCreatePaymentRejectsOverpayment(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db)
	app := paymentApp(db)

	status, _ := postJSON(t, app, "/payments", map[string]interface{}{
		"trip_id":      trip.ID,
		"payment_date": "2024-03-20",
		"payment_mode": "cash",
		"amount":       trip.TotalCharged + 1,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Settle in full, then any further amount is rejected
	status, _ = postJSON(t, app, "/payments", map[string]interface{}{
		"trip_id":      trip.ID,
		"payment_date": "2024-03-21",
		"payment_mode": "cash",
		"amount":       trip.TotalCharged,
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/payments", map[string]interface{}{
		"trip_id":      trip.ID,
		"payment_date": "2024-03-22",
		"payment_mode": "cash",
		"amount":       1,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var updated Models.Trip
	require.NoError(t, db.First(&updated, trip.ID).Error)
	assert.Equal(t, 0.0, updated.PendingAmount)
	assert.Equal(t, trip.TotalCharged, updated.AmountReceived)
}

func TestDeletePaymentRestoresBalance(t *testing.T) {
	db := setupTestDB(t)
	trip := seedTrip(t, db)
	app := paymentApp(db)

	status, _ := postJSON(t, app, "/payments", map[string]interface{}{
		"trip_id":      trip.ID,
		"payment_date": "2024-03-20",
		"payment_mode": "upi",
		"amount":       400,
	})
	require.Equal(t, fiber.StatusCreated, status)

	var payment Models.Payment
	require.NoError(t, db.Where("trip_id = ?", trip.ID).First(&payment).Error)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/payments/%d", payment.ID), nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated Models.Trip
	require.NoError(t, db.First(&updated, trip.ID).Error)
	assert.Equal(t, 0.0, updated.AmountReceived)
	assert.Equal(t, trip.TotalCharged, updated.PendingAmount)
}
