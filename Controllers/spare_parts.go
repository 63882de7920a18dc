package Controllers

import (
	"log"
	"strconv"

	"Gaadi/Models"
	"Gaadi/Reports"

	"github.com/gofiber/fiber/v2"
)

func GetSparePartEntries(c *fiber.Ctx) error {
	q := Models.DB.Order("replaced_date desc, id desc")
	if vehicleNumber := c.Query("vehicle_number"); vehicleNumber != "" {
		q = q.Where("vehicle_number = ?", vehicleNumber)
	}
	if vendor := c.Query("vendor"); vendor != "" {
		q = q.Where("vendor = ?", vendor)
	}

	var entries []Models.SparePartEntry
	if err := q.Find(&entries).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve spare part entries",
		})
	}

	var total float64
	for _, e := range entries {
		total += Reports.SpareCost(e)
	}

	return c.JSON(fiber.Map{
		"entries":    entries,
		"total_cost": total,
	})
}

func CreateSparePartEntry(c *fiber.Ctx) error {
	var input Models.SparePartEntry
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.VehicleNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Vehicle number is required"})
	}
	if input.PartName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Part name is required"})
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create spare part entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(input)
}

func UpdateSparePartEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part entry ID"})
	}

	var entry Models.SparePartEntry
	if err := Models.DB.First(&entry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part entry not found"})
	}

	var input Models.SparePartEntry
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	entry.VehicleNumber = input.VehicleNumber
	entry.Vendor = input.Vendor
	entry.PartName = input.PartName
	entry.Cost = input.Cost
	entry.Quantity = input.Quantity
	entry.ReplacedDate = input.ReplacedDate
	entry.Notes = input.Notes
	if entry.Quantity == 0 {
		entry.Quantity = 1
	}

	if err := Models.DB.Save(&entry).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update spare part entry",
		})
	}
	return c.JSON(entry)
}

func DeleteSparePartEntry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid spare part entry ID"})
	}

	var entry Models.SparePartEntry
	if err := Models.DB.First(&entry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Spare part entry not found"})
	}

	Models.DB.Delete(&entry)
	return c.JSON(fiber.Map{"message": "Spare part entry deleted successfully"})
}
