package Controllers

import (
	"log"
	"strconv"
	"strings"

	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
)

func GetAllVehicles(c *fiber.Ctx) error {
	var vehicles []Models.Vehicle
	if err := Models.DB.Order("vehicle_number").Find(&vehicles).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve vehicles",
		})
	}
	return c.JSON(vehicles)
}

func GetVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}
	return c.JSON(vehicle)
}

// GetVehicleProfile returns the vehicle along with its trips,
// maintenance, fuel and spare part history.
func GetVehicleProfile(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var trips []Models.Trip
	Models.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).Order("trip_date desc").Find(&trips)

	var maintenance []Models.MaintenanceRecord
	Models.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).Order("start_date desc").Find(&maintenance)

	var fuel []Models.FuelEntry
	Models.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).Order("filled_date desc").Find(&fuel)

	var spareParts []Models.SparePartEntry
	Models.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).Order("replaced_date desc").Find(&spareParts)

	var notes []Models.VehicleNote
	Models.DB.Where("vehicle_number = ?", vehicle.VehicleNumber).Order("created_at desc").Find(&notes)

	return c.JSON(fiber.Map{
		"vehicle":     vehicle,
		"trips":       trips,
		"maintenance": maintenance,
		"fuel":        fuel,
		"spare_parts": spareParts,
		"notes":       notes,
	})
}

func CreateVehicle(c *fiber.Ctx) error {
	var input Models.Vehicle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.VehicleNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle number is required"})
	}

	vehicle := Models.Vehicle{
		VehicleNumber: strings.ToUpper(strings.TrimSpace(input.VehicleNumber)),
		VehicleType:   input.VehicleType,
		ModelName:     input.ModelName,
		Capacity:      input.Capacity,
		Documents:     input.Documents,
	}

	if err := Models.DB.Create(&vehicle).Error; err != nil {
		if strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") ||
			strings.Contains(err.Error(), "Duplicate entry") {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A vehicle with this number already exists",
			})
		}
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create vehicle",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

func UpdateVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var input Models.Vehicle
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Vehicle number changes are not allowed once trips refer to it.
	if input.VehicleNumber != "" && input.VehicleNumber != vehicle.VehicleNumber {
		var tripCount int64
		Models.DB.Model(&Models.Trip{}).Where("vehicle_number = ?", vehicle.VehicleNumber).Count(&tripCount)
		if tripCount > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Vehicle number cannot be changed while trips reference it",
			})
		}
		vehicle.VehicleNumber = strings.ToUpper(strings.TrimSpace(input.VehicleNumber))
	}

	vehicle.VehicleType = input.VehicleType
	vehicle.ModelName = input.ModelName
	vehicle.Capacity = input.Capacity
	if len(input.Documents) > 0 {
		vehicle.Documents = input.Documents
	}

	if err := Models.DB.Save(&vehicle).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update vehicle",
		})
	}

	return c.JSON(vehicle)
}

func DeleteVehicle(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vehicle ID"})
	}

	var vehicle Models.Vehicle
	if err := Models.DB.First(&vehicle, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vehicle not found"})
	}

	var tripCount int64
	Models.DB.Model(&Models.Trip{}).Where("vehicle_number = ?", vehicle.VehicleNumber).Count(&tripCount)
	if tripCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vehicle has trips and cannot be deleted",
		})
	}

	Models.DB.Delete(&vehicle)
	return c.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}
