package Controllers

import (
	"log"
	"strconv"

	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
)

func validMaintenanceType(t string) bool {
	switch t {
	case "emi", "insurance", "tax":
		return true
	}
	return false
}

func GetMaintenanceRecords(c *fiber.Ctx) error {
	q := Models.DB.Order("start_date desc, id desc")
	if vehicleNumber := c.Query("vehicle_number"); vehicleNumber != "" {
		q = q.Where("vehicle_number = ?", vehicleNumber)
	}
	if maintenanceType := c.Query("type"); maintenanceType != "" {
		q = q.Where("maintenance_type = ?", maintenanceType)
	}

	var records []Models.MaintenanceRecord
	if err := q.Find(&records).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve maintenance records",
		})
	}
	return c.JSON(records)
}

func CreateMaintenanceRecord(c *fiber.Ctx) error {
	var input Models.MaintenanceRecord
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.VehicleNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle number is required"})
	}
	if !validMaintenanceType(input.MaintenanceType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maintenance type must be one of emi, insurance, tax",
		})
	}

	tx := Models.DB.Begin()
	if err := tx.Create(&input).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create maintenance record",
		})
	}
	if err := adjustVehicleMaintenance(tx, input.VehicleNumber, input.Amount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle totals",
		})
	}
	tx.Commit()

	return c.Status(fiber.StatusCreated).JSON(input)
}

func UpdateMaintenanceRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance record ID"})
	}

	var record Models.MaintenanceRecord
	if err := Models.DB.First(&record, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance record not found"})
	}

	var input Models.MaintenanceRecord
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !validMaintenanceType(input.MaintenanceType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Maintenance type must be one of emi, insurance, tax",
		})
	}

	oldAmount := record.Amount
	oldVehicle := record.VehicleNumber

	record.VehicleNumber = input.VehicleNumber
	record.MaintenanceType = input.MaintenanceType
	record.Amount = input.Amount
	record.Description = input.Description
	record.StartDate = input.StartDate
	record.EndDate = input.EndDate

	tx := Models.DB.Begin()
	if err := tx.Save(&record).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update maintenance record",
		})
	}
	if err := adjustVehicleMaintenance(tx, oldVehicle, -oldAmount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle totals",
		})
	}
	if err := adjustVehicleMaintenance(tx, record.VehicleNumber, record.Amount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle totals",
		})
	}
	tx.Commit()

	return c.JSON(record)
}

func DeleteMaintenanceRecord(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid maintenance record ID"})
	}

	var record Models.MaintenanceRecord
	if err := Models.DB.First(&record, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Maintenance record not found"})
	}

	tx := Models.DB.Begin()
	if err := tx.Delete(&record).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete maintenance record",
		})
	}
	if err := adjustVehicleMaintenance(tx, record.VehicleNumber, -record.Amount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle totals",
		})
	}
	tx.Commit()

	return c.JSON(fiber.Map{"message": "Maintenance record deleted successfully"})
}
