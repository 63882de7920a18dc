package Controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardListsVehicleMaintenance(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&Models.Vehicle{
		VehicleNumber:        "MH12AB1234",
		TotalMaintenanceCost: 5000,
	}).Error)
	require.NoError(t, db.Create(&Models.Vehicle{
		VehicleNumber: "KA01CD5678",
	}).Error)

	app := fiber.New()
	rc := NewReportController(db)
	app.Get("/dashboard", rc.GetDashboard)

	req := httptest.NewRequest("GET", "/dashboard?month=2024-03", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))

	vehicles, ok := out["vehicles"].([]interface{})
	require.True(t, ok, "body: %s", raw)
	require.Len(t, vehicles, 2)

	// Sorted by vehicle number
	first := vehicles[0].(map[string]interface{})
	assert.Equal(t, "KA01CD5678", first["vehicle_number"])
	assert.Equal(t, 0.0, first["maintenance_cost"])

	second := vehicles[1].(map[string]interface{})
	assert.Equal(t, "MH12AB1234", second["vehicle_number"])
	assert.Equal(t, 5000.0, second["maintenance_cost"])
}
