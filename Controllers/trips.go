package Controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"Gaadi/Billing"
	"Gaadi/Models"
)

// TripHandler handles trip-related API endpoints
type TripHandler struct {
	DB *gorm.DB
}

// NewTripHandler creates a new TripHandler
func NewTripHandler(db *gorm.DB) *TripHandler {
	return &TripHandler{DB: db}
}

// recalculate refreshes the stored computed fields from the trip's
// inputs and its attached pricing items.
func recalculate(trip *Models.Trip) {
	trip.TotalCharged = Billing.TotalCharged(*trip)
	trip.TotalCost = Billing.TotalCost(*trip)
	trip.PendingAmount = Billing.Pending(trip.TotalCharged, trip.AmountReceived)
}

// GetAllTrips lists trips, newest first. Supports the same query
// filters as the reports endpoint for convenience.
func (h *TripHandler) GetAllTrips(ctx *fiber.Ctx) error {
	q := h.DB.Preload("PricingItems").Order("trip_date desc, id desc")

	if month := ctx.Query("month"); month != "" {
		q = q.Where("trip_date LIKE ?", month+"%")
	}
	if customerID := ctx.Query("customer_id"); customerID != "" {
		q = q.Where("customer_id = ?", customerID)
	}
	if vehicleNumber := ctx.Query("vehicle_number"); vehicleNumber != "" {
		q = q.Where("vehicle_number = ?", vehicleNumber)
	}
	if driverID := ctx.Query("driver_id"); driverID != "" {
		q = q.Where("driver_id = ?", driverID)
	}
	if status := ctx.Query("payment_status"); status != "" {
		switch Billing.Status(status) {
		case Billing.StatusPaid:
			q = q.Where("pending_amount <= 0")
		case Billing.StatusPending:
			q = q.Where("amount_received <= 0 AND pending_amount > 0")
		case Billing.StatusPartial:
			q = q.Where("amount_received > 0 AND pending_amount > 0")
		}
	}

	var trips []Models.Trip
	if err := q.Find(&trips).Error; err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve trips",
		})
	}
	return ctx.JSON(trips)
}

// GetTrip returns one trip with its line items, driver changes,
// payments and the derived settlement status.
func (h *TripHandler) GetTrip(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	result := h.DB.Preload("PricingItems").Preload("DriverChanges").Preload("Payments").First(&trip, id)
	if result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	rec := Billing.Reconcile(trip.TotalCharged, trip.AmountReceived, nil)

	return ctx.JSON(fiber.Map{
		"trip":           trip,
		"payment_status": rec.Status,
	})
}

type tripInput struct {
	Models.Trip
	PricingItems  []Models.TripPricingItem  `json:"pricing_items"`
	DriverChanges []Models.TripDriverChange `json:"driver_changes"`
}

func (h *TripHandler) CreateTrip(ctx *fiber.Ctx) error {
	var input tripInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trip := input.Trip
	trip.ID = 0
	trip.TripDate = Billing.DateOnly(trip.TripDate)
	trip.VehicleNumber = strings.ToUpper(strings.TrimSpace(trip.VehicleNumber))
	trip.AmountReceived = 0

	trip.PricingItems = nil
	for _, item := range input.PricingItems {
		item.ID = 0
		if item.ItemType == "" {
			item.ItemType = Billing.ItemTypePricing
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		item.Amount = Billing.ItemAmount(item)
		trip.PricingItems = append(trip.PricingItems, item)
	}
	trip.DriverChanges = nil
	for _, change := range input.DriverChanges {
		change.ID = 0
		trip.DriverChanges = append(trip.DriverChanges, change)
	}

	if err := Billing.ValidateTrip(trip); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer Models.Customer
	if err := h.DB.First(&customer, trip.CustomerID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer not found"})
	}
	var vehicle Models.Vehicle
	if err := h.DB.Where("vehicle_number = ?", trip.VehicleNumber).First(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	var driver Models.Driver
	if err := h.DB.First(&driver, trip.DriverID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Driver not found"})
	}

	recalculate(&trip)

	tx := h.DB.Begin()
	if err := tx.Create(&trip).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create trip",
		})
	}

	customer.TotalTrips++
	customer.TotalBilled += trip.TotalCharged
	customer.PendingBalance += trip.PendingAmount
	if err := tx.Save(&customer).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update customer totals",
		})
	}

	vehicle.TotalTrips++
	vehicle.TotalKM += Billing.EffectiveDistance(trip)
	if err := tx.Save(&vehicle).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle totals",
		})
	}

	tx.Commit()
	return ctx.Status(fiber.StatusCreated).JSON(trip)
}

func (h *TripHandler) UpdateTrip(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var existing Models.Trip
	if err := h.DB.Preload("PricingItems").First(&existing, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	var input tripInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	trip := input.Trip
	trip.ID = existing.ID
	trip.CreatedAt = existing.CreatedAt
	trip.TripDate = Billing.DateOnly(trip.TripDate)
	trip.VehicleNumber = strings.ToUpper(strings.TrimSpace(trip.VehicleNumber))
	// Collections survive edits untouched.
	trip.AmountReceived = existing.AmountReceived

	trip.PricingItems = nil
	for _, item := range input.PricingItems {
		item.ID = 0
		item.TripID = existing.ID
		if item.ItemType == "" {
			item.ItemType = Billing.ItemTypePricing
		}
		if item.Quantity == 0 {
			item.Quantity = 1
		}
		item.Amount = Billing.ItemAmount(item)
		trip.PricingItems = append(trip.PricingItems, item)
	}
	trip.DriverChanges = nil
	for _, change := range input.DriverChanges {
		change.ID = 0
		change.TripID = existing.ID
		trip.DriverChanges = append(trip.DriverChanges, change)
	}

	if err := Billing.ValidateTrip(trip); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	recalculate(&trip)
	if trip.TotalCharged < trip.AmountReceived {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Total charged cannot drop below the amount already received",
		})
	}

	var newCustomer Models.Customer
	if err := h.DB.First(&newCustomer, trip.CustomerID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Customer not found"})
	}
	var newVehicle Models.Vehicle
	if err := h.DB.Where("vehicle_number = ?", trip.VehicleNumber).First(&newVehicle).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	tx := h.DB.Begin()

	// Replace line items and driver changes wholesale.
	if err := tx.Where("trip_id = ?", existing.ID).Delete(&Models.TripPricingItem{}).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}
	if err := tx.Where("trip_id = ?", existing.ID).Delete(&Models.TripDriverChange{}).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&trip).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip"})
	}

	// Back out the old trip's contribution and add the new one, which
	// also handles customer or vehicle reassignment.
	if err := adjustCustomerStats(tx, existing.CustomerID, -1, -existing.TotalCharged, -existing.PendingAmount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer totals"})
	}
	if err := adjustCustomerStats(tx, trip.CustomerID, 1, trip.TotalCharged, trip.PendingAmount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer totals"})
	}
	if err := adjustVehicleStats(tx, existing.VehicleNumber, -1, -Billing.EffectiveDistance(existing)); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle totals"})
	}
	if err := adjustVehicleStats(tx, trip.VehicleNumber, 1, Billing.EffectiveDistance(trip)); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle totals"})
	}

	tx.Commit()
	return ctx.JSON(trip)
}

func (h *TripHandler) DeleteTrip(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var trip Models.Trip
	if err := h.DB.First(&trip, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	tx := h.DB.Begin()

	for _, model := range []interface{}{
		&Models.Payment{}, &Models.TripPricingItem{}, &Models.TripDriverChange{}, &Models.DriverExpense{},
	} {
		if err := tx.Where("trip_id = ?", trip.ID).Unscoped().Delete(model).Error; err != nil {
			tx.Rollback()
			log.Println(err.Error())
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trip"})
		}
	}
	if err := tx.Delete(&trip).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete trip"})
	}

	if err := adjustCustomerStats(tx, trip.CustomerID, -1, -trip.TotalCharged, -trip.PendingAmount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer totals"})
	}
	if err := adjustVehicleStats(tx, trip.VehicleNumber, -1, -Billing.EffectiveDistance(trip)); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update vehicle totals"})
	}

	tx.Commit()
	return ctx.JSON(fiber.Map{"message": "Trip deleted successfully"})
}

func adjustCustomerStats(tx *gorm.DB, customerID uint, trips int, billed, pending float64) error {
	var customer Models.Customer
	if err := tx.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	customer.TotalTrips += trips
	if customer.TotalTrips < 0 {
		customer.TotalTrips = 0
	}
	customer.TotalBilled += billed
	if customer.TotalBilled < 0 {
		customer.TotalBilled = 0
	}
	customer.PendingBalance += pending
	if customer.PendingBalance < 0 {
		customer.PendingBalance = 0
	}
	return tx.Save(&customer).Error
}

func adjustVehicleMaintenance(tx *gorm.DB, vehicleNumber string, amount float64) error {
	var vehicle Models.Vehicle
	if err := tx.Where("vehicle_number = ?", vehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	vehicle.TotalMaintenanceCost += amount
	if vehicle.TotalMaintenanceCost < 0 {
		vehicle.TotalMaintenanceCost = 0
	}
	return tx.Save(&vehicle).Error
}

func adjustVehicleStats(tx *gorm.DB, vehicleNumber string, trips int, km float64) error {
	var vehicle Models.Vehicle
	if err := tx.Where("vehicle_number = ?", vehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	vehicle.TotalTrips += trips
	if vehicle.TotalTrips < 0 {
		vehicle.TotalTrips = 0
	}
	vehicle.TotalKM += km
	if vehicle.TotalKM < 0 {
		vehicle.TotalKM = 0
	}
	return tx.Save(&vehicle).Error
}
