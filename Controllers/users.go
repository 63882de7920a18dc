package Controllers

import (
	"log"

	"Gaadi/Models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func FetchUsers(c *fiber.Ctx) error {
	var users []Models.User
	if err := Models.DB.Order("name").Find(&users).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch users",
		})
	}
	return c.JSON(users)
}

func UpdateUser(c *fiber.Ctx) error {
	var input struct {
		ID         uint   `json:"id"`
		Name       string `json:"name"`
		Password   string `json:"password"`
		Permission int    `json:"permission"`
		IsApproved int    `json:"is_approved"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse request body",
		})
	}

	var user Models.User
	if err := Models.DB.First(&user, input.ID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Password != "" {
		passwordByte, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println(err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to hash password",
			})
		}
		user.Password = passwordByte
	}
	user.Permission = input.Permission
	user.IsApproved = input.IsApproved

	if err := Models.DB.Save(&user).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update user",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User Updated Successfully",
	})
}

func DeleteUser(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cannot parse request body",
		})
	}
	if err := Models.DB.Delete(&Models.User{}, input.ID).Error; err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete user",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User Deleted Successfully",
	})
}
