package Apis

import (
	"Gaadi/Billing"
	"Gaadi/Models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func RegisterDriverExpense(c *fiber.Ctx) error {
	var input struct {
		Expense Models.DriverExpense `json:"expense"`
	}
	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	if input.Expense.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Expense description is required",
		})
	}
	if input.Expense.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Expense amount must be positive",
		})
	}

	// The driver is taken from the trip when the expense is tied to
	// one, so the attribution cannot disagree.
	if input.Expense.TripID != 0 {
		var trip Models.Trip
		if err := Models.DB.First(&trip, input.Expense.TripID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Trip not found",
			})
		}
		input.Expense.DriverID = trip.DriverID
	}
	if input.Expense.DriverID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Driver is required",
		})
	}

	if err := Models.DB.Create(&input.Expense).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Expense Registered Successfully",
		"expense": input.Expense,
	})
}

func GetDriverExpenses(c *fiber.Ctx) error {
	var input struct {
		ID    uint   `json:"id"`
		Month string `json:"month"` // optional YYYY-MM
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}

	var expenses []Models.DriverExpense
	if err := Models.DB.Where("driver_id = ?", input.ID).Order("created_at desc").Find(&expenses).Error; err != nil {
		return err
	}

	if input.Month != "" {
		filtered := expenses[:0]
		for _, e := range expenses {
			if Billing.MonthKey(e.CreatedAt.Format("2006-01-02")) == input.Month {
				filtered = append(filtered, e)
			}
		}
		expenses = filtered
	}

	return c.JSON(expenses)
}

func GetTripExpenses(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}

	var expenses []Models.DriverExpense
	if err := Models.DB.Where("trip_id = ?", input.ID).Find(&expenses).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(expenses)
}

func DeleteExpense(c *fiber.Ctx) error {
	var input struct {
		ID uint `json:"id"`
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err.Error())
		return err
	}
	if err := Models.DB.Delete(&Models.DriverExpense{}, input.ID).Error; err != nil {
		log.Println(err.Error())
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Expense Deleted Successfully",
	})
}

// RegisterDriverSalary records a payout towards a driver's monthly dues.
func RegisterDriverSalary(c *fiber.Ctx) error {
	var input struct {
		DriverID uint    `json:"driver_id"`
		Amount   float64 `json:"amount"`
		PaidOn   string  `json:"paid_on"`
		Notes    string  `json:"notes"`
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	if input.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Payment amount must be positive",
		})
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	if input.PaidOn == "" {
		input.PaidOn = time.Now().Format("2006-01-02")
	}

	payment := Models.DriverSalaryPayment{
		DriverID: input.DriverID,
		Amount:   input.Amount,
		PaidOn:   Billing.DateOnly(input.PaidOn),
		Notes:    input.Notes,
	}
	if err := Models.DB.Create(&payment).Error; err != nil {
		log.Println(err.Error())
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Salary Payment Registered Successfully",
		"payment": payment,
	})
}

// GetDriverSalaries fetches salary payments with optional filtering
func GetDriverSalaries(c *fiber.Ctx) error {
	var input struct {
		DriverID uint   `json:"driver_id"` // Optional: filter by driver
		Month    string `json:"month"`     // Optional: filter by YYYY-MM
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	query := Models.DB.Model(&Models.DriverSalaryPayment{})
	if input.DriverID != 0 {
		query = query.Where("driver_id = ?", input.DriverID)
	}
	if input.Month != "" {
		query = query.Where("paid_on LIKE ?", input.Month+"%")
	}

	var payments []Models.DriverSalaryPayment
	if err := query.Order("paid_on DESC").Find(&payments).Error; err != nil {
		log.Println("Error fetching salary payments:", err.Error())
		return err
	}

	driverName := ""
	if input.DriverID != 0 {
		var driver Models.Driver
		if err := Models.DB.First(&driver, input.DriverID).Error; err == nil {
			driverName = driver.Name
		}
	}

	totalPaid := 0.0
	for _, p := range payments {
		totalPaid += p.Amount
	}

	return c.JSON(fiber.Map{
		"payments":    payments,
		"total_count": len(payments),
		"total_paid":  totalPaid,
		"driver_name": driverName,
	})
}

// GetDriverSalaryPreview returns a driver's statement for one month:
// salary, bhatta, expenses grouped per trip, and what remains unpaid.
func GetDriverSalaryPreview(c *fiber.Ctx) error {
	var input struct {
		DriverID uint   `json:"driver_id"`
		Month    string `json:"month"` // YYYY-MM
	}

	if err := c.BodyParser(&input); err != nil {
		log.Println(err)
		return err
	}

	if input.DriverID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Driver ID is required",
		})
	}
	if input.Month == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Month is required",
		})
	}

	var driver Models.Driver
	if err := Models.DB.First(&driver, input.DriverID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Driver not found",
		})
	}

	var trips []Models.Trip
	if err := Models.DB.Where("driver_id = ? AND trip_date LIKE ?", driver.ID, input.Month+"%").Find(&trips).Error; err != nil {
		log.Println("Error fetching trips:", err.Error())
		return err
	}

	var expenses []Models.DriverExpense
	if err := Models.DB.Where("driver_id = ?", driver.ID).Find(&expenses).Error; err != nil {
		log.Println("Error fetching expenses:", err.Error())
		return err
	}

	var payments []Models.DriverSalaryPayment
	if err := Models.DB.Where("driver_id = ? AND paid_on LIKE ?", driver.ID, input.Month+"%").Find(&payments).Error; err != nil {
		log.Println("Error fetching salary payments:", err.Error())
		return err
	}

	statement := Billing.MonthlyPayroll(driver, input.Month, trips, expenses, payments)

	monthExpenses := make([]Models.DriverExpense, 0, len(expenses))
	for _, e := range expenses {
		if Billing.MonthKey(e.CreatedAt.Format("2006-01-02")) == input.Month {
			monthExpenses = append(monthExpenses, e)
		}
	}

	return c.JSON(fiber.Map{
		"driver_name":   driver.Name,
		"statement":     statement,
		"trip_expenses": Billing.GroupExpensesByTrip(monthExpenses),
		"trips_count":   len(trips),
		"payments":      payments,
	})
}
