package Apis

import (
	"Gaadi/Models"
	"log"

	"github.com/gofiber/fiber/v2"
)

func RegisterDriver(c *fiber.Ctx) error {
	var input struct {
		Driver Models.Driver `json:"driver"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	if input.Driver.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Driver name is required",
		})
	}

	if err := Models.DB.Create(&input.Driver).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Driver Registered Successfully",
		"driver":  input.Driver,
	})
}

func GetDrivers(c *fiber.Ctx) error {
	var drivers []Models.Driver
	if err := Models.DB.Order("name").Find(&drivers).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(drivers)
}

func GetDriver(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}
	return c.JSON(driver)
}

// GetDriverProfileData returns the driver with their trips and
// recorded expenses.
func GetDriverProfileData(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	var trips []Models.Trip
	Models.DB.Where("driver_id = ?", driver.ID).Order("trip_date desc").Find(&trips)

	var expenses []Models.DriverExpense
	Models.DB.Where("driver_id = ?", driver.ID).Order("created_at desc").Find(&expenses)

	return c.JSON(fiber.Map{
		"driver":   driver,
		"trips":    trips,
		"expenses": expenses,
	})
}

func UpdateDriver(c *fiber.Ctx) error {
	var input struct {
		Driver Models.Driver `json:"driver"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.Driver.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	driver.Name = input.Driver.Name
	driver.Phone = input.Driver.Phone
	driver.LicenseNumber = input.Driver.LicenseNumber
	driver.JoiningDate = input.Driver.JoiningDate
	driver.MonthlySalary = input.Driver.MonthlySalary

	if err := Models.DB.Save(&driver).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Driver Updated Successfully",
		"driver":  driver,
	})
}

func DeleteDriver(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}

	var tripCount int64
	Models.DB.Model(&Models.Trip{}).Where("driver_id = ?", input.ID).Count(&tripCount)
	if tripCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Driver has trips and cannot be deleted",
		})
	}

	if err := Models.DB.Delete(&Models.Driver{}, input.ID).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Driver Deleted Successfully",
	})
}
