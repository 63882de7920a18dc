package Apis

import (
	"Gaadi/Models"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FuelHandler handles fuel entry endpoints
type FuelHandler struct {
	DB *gorm.DB
}

func (h *FuelHandler) AddFuelEvent(c *fiber.Ctx) error {
	var input Models.FuelEntry
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	if input.VehicleNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Vehicle number is required",
		})
	}

	if input.TotalCost == 0 && input.Litres > 0 {
		input.TotalCost = input.Litres * input.CostPerLitre
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Fuel Event Registered Successfully",
		"entry":   input,
	})
}

func (h *FuelHandler) EditFuelEvent(c *fiber.Ctx) error {
	var input Models.FuelEntry
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	var entry Models.FuelEntry
	if err := Models.DB.First(&entry, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Fuel entry not found",
		})
	}

	entry.VehicleNumber = input.VehicleNumber
	entry.Vendor = input.Vendor
	entry.FilledDate = input.FilledDate
	entry.Litres = input.Litres
	entry.CostPerLitre = input.CostPerLitre
	entry.TotalCost = input.TotalCost
	entry.OdometerKM = input.OdometerKM
	entry.Notes = input.Notes
	if entry.TotalCost == 0 && entry.Litres > 0 {
		entry.TotalCost = entry.Litres * entry.CostPerLitre
	}

	if err := Models.DB.Save(&entry).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Fuel Event Updated Successfully",
		"entry":   entry,
	})
}

func (h *FuelHandler) DeleteFuelEvent(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}
	if err := Models.DB.Delete(&Models.FuelEntry{}, input.ID).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Fuel Event Deleted Successfully",
	})
}

func (h *FuelHandler) GetFuelEvents(c *fiber.Ctx) error {
	q := h.DB.Order("filled_date desc, id desc")
	if vehicleNumber := c.Query("vehicle_number"); vehicleNumber != "" {
		q = q.Where("vehicle_number = ?", vehicleNumber)
	}
	if month := c.Query("month"); month != "" {
		q = q.Where("filled_date LIKE ?", month+"%")
	}

	var entries []Models.FuelEntry
	if err := q.Find(&entries).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(entries)
}

func (h *FuelHandler) GetFuelEventById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid fuel entry ID",
		})
	}

	var entry Models.FuelEntry
	if err := h.DB.First(&entry, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Fuel entry not found",
		})
	}
	return c.JSON(entry)
}

// GetFuelStatistics totals fuel spend and litres per vehicle.
func (h *FuelHandler) GetFuelStatistics(c *fiber.Ctx) error {
	type vehicleFuelStat struct {
		VehicleNumber string  `json:"vehicle_number"`
		TotalLitres   float64 `json:"total_litres"`
		TotalCost     float64 `json:"total_cost"`
		FillCount     int64   `json:"fill_count"`
	}

	var stats []vehicleFuelStat
	err := h.DB.Model(&Models.FuelEntry{}).
		Select("vehicle_number, SUM(litres) as total_litres, SUM(total_cost) as total_cost, COUNT(*) as fill_count").
		Group("vehicle_number").
		Order("total_cost desc").
		Scan(&stats).Error
	if err != nil {
		log.Println(err.Error())
		return err
	}

	var totalCost float64
	var totalLitres float64
	for _, s := range stats {
		totalCost += s.TotalCost
		totalLitres += s.TotalLitres
	}

	return c.JSON(fiber.Map{
		"vehicles":     stats,
		"total_cost":   totalCost,
		"total_litres": totalLitres,
	})
}
