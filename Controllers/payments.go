package Controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"Gaadi/Billing"
	"Gaadi/Models"
)

// PaymentController handles payment collection and receipts
type PaymentController struct {
	DB *gorm.DB
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// CreatePayment records a collection against a trip. The amount is
// checked against the trip's pending balance inside the transaction so
// concurrent collections cannot overpay an invoice.
func (c *PaymentController) CreatePayment(ctx *fiber.Ctx) error {
	var input struct {
		TripID      uint    `json:"trip_id"`
		PaymentDate string  `json:"payment_date"`
		PaymentMode string  `json:"payment_mode"`
		Amount      float64 `json:"amount"`
		Notes       string  `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.PaymentMode == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment mode is required"})
	}
	if input.PaymentDate == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payment date is required"})
	}

	tx := c.DB.Begin()

	var trip Models.Trip
	// Row lock so a concurrent collection sees the updated balance
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&trip, input.TripID).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trip not found"})
	}

	if err := Billing.ValidatePayment(trip.PendingAmount, input.Amount); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payment := Models.Payment{
		InvoiceNumber: trip.InvoiceNumber,
		TripID:        trip.ID,
		PaymentDate:   Billing.DateOnly(input.PaymentDate),
		PaymentMode:   input.PaymentMode,
		Amount:        input.Amount,
		Notes:         input.Notes,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	trip.AmountReceived += payment.Amount
	trip.PendingAmount = Billing.Pending(trip.TotalCharged, trip.AmountReceived)
	if err := tx.Save(&trip).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip balance"})
	}

	if err := adjustCustomerStats(tx, trip.CustomerID, 0, 0, -payment.Amount); err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer totals"})
	}

	tx.Commit()

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment":        payment,
		"pending_amount": trip.PendingAmount,
		"payment_status": Billing.DeriveStatus(trip.TotalCharged, trip.AmountReceived),
	})
}

// GetPayments lists payments, optionally narrowed by month or mode.
func (c *PaymentController) GetPayments(ctx *fiber.Ctx) error {
	q := c.DB.Order("payment_date desc, id desc")
	if month := ctx.Query("month"); month != "" {
		q = q.Where("payment_date LIKE ?", month+"%")
	}
	if mode := ctx.Query("mode"); mode != "" {
		q = q.Where("payment_mode = ?", mode)
	}

	var payments []Models.Payment
	if err := q.Find(&payments).Error; err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payments"})
	}
	return ctx.JSON(payments)
}

// GetTripPayments lists all payments against one trip.
func (c *PaymentController) GetTripPayments(ctx *fiber.Ctx) error {
	tripID, err := strconv.Atoi(ctx.Params("trip_id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trip ID"})
	}

	var payments []Models.Payment
	if err := c.DB.Where("trip_id = ?", tripID).Order("payment_date").Find(&payments).Error; err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve payments"})
	}
	return ctx.JSON(payments)
}

// DeletePayment removes a collection and restores the trip's pending
// balance. The trip's received total never drops below zero.
func (c *PaymentController) DeletePayment(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	tx := c.DB.Begin()

	var payment Models.Payment
	if err := tx.First(&payment, id).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	if err := tx.Unscoped().Delete(&payment).Error; err != nil {
		tx.Rollback()
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
	}

	var trip Models.Trip
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&trip, payment.TripID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			log.Println(err.Error())
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete payment"})
		}
	} else {
		trip.AmountReceived -= payment.Amount
		if trip.AmountReceived < 0 {
			trip.AmountReceived = 0
		}
		trip.PendingAmount = Billing.Pending(trip.TotalCharged, trip.AmountReceived)
		if err := tx.Save(&trip).Error; err != nil {
			tx.Rollback()
			log.Println(err.Error())
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update trip balance"})
		}
		if err := adjustCustomerStats(tx, trip.CustomerID, 0, 0, payment.Amount); err != nil {
			tx.Rollback()
			log.Println(err.Error())
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update customer totals"})
		}
	}

	tx.Commit()
	return ctx.JSON(fiber.Map{"message": "Payment deleted successfully"})
}

// GetReceipt renders a printable receipt for one payment.
func (c *PaymentController) GetReceipt(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment ID"})
	}

	var payment Models.Payment
	if err := c.DB.First(&payment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment not found"})
	}

	var trip Models.Trip
	var customer Models.Customer
	customerName := "N/A"
	if err := c.DB.First(&trip, payment.TripID).Error; err == nil {
		if err := c.DB.First(&customer, trip.CustomerID).Error; err == nil {
			customerName = customer.Name
		}
	}

	return ctx.Render("receipt", fiber.Map{
		"Payment":      payment,
		"Trip":         trip,
		"CustomerName": customerName,
		"Status":       Billing.DeriveStatus(trip.TotalCharged, trip.AmountReceived),
	})
}
