package Controllers

import (
	"log"
	"strconv"
	"time"

	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
)

func GetDashboardNotes(c *fiber.Ctx) error {
	var notes []Models.DashboardNote
	if err := Models.DB.Order("created_at desc").Find(&notes).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve notes",
		})
	}
	return c.JSON(notes)
}

func CreateDashboardNote(c *fiber.Ctx) error {
	var input Models.DashboardNote
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.Note == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Note content is required"})
	}
	if input.NoteDate == "" {
		input.NoteDate = time.Now().Format("2006-01-02")
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create note",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(input)
}

func DeleteDashboardNote(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}
	if err := Models.DB.Delete(&Models.DashboardNote{}, id).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}

func CreateVehicleNote(c *fiber.Ctx) error {
	var input Models.VehicleNote
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.VehicleNumber == "" || input.Note == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Vehicle number and note content are required",
		})
	}
	if input.NoteDate == "" {
		input.NoteDate = time.Now().Format("2006-01-02")
	}

	if err := Models.DB.Create(&input).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create note",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(input)
}

func DeleteVehicleNote(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid note ID"})
	}
	if err := Models.DB.Delete(&Models.VehicleNote{}, id).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete note",
		})
	}
	return c.JSON(fiber.Map{"message": "Note deleted successfully"})
}
