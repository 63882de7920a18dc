package Controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"Gaadi/Models"
	"Gaadi/Reports"
)

// ReportController serves the billing summary, its Excel export and
// the dashboard view.
type ReportController struct {
	DB *gorm.DB
}

// NewReportController creates a new ReportController
func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (c *ReportController) snapshot() (Reports.Snapshot, error) {
	var snap Reports.Snapshot
	if err := c.DB.Find(&snap.Trips).Error; err != nil {
		return snap, err
	}
	if err := c.DB.Find(&snap.Customers).Error; err != nil {
		return snap, err
	}
	if err := c.DB.Find(&snap.Fuel).Error; err != nil {
		return snap, err
	}
	if err := c.DB.Find(&snap.SpareParts).Error; err != nil {
		return snap, err
	}
	if err := c.DB.Find(&snap.Maintenance).Error; err != nil {
		return snap, err
	}
	return snap, nil
}

// GetReport runs the filtered billing summary.
func (c *ReportController) GetReport(ctx *fiber.Ctx) error {
	var filter Reports.Filter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report filters"})
	}

	snap, err := c.snapshot()
	if err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load records"})
	}

	return ctx.JSON(Reports.Summarize(snap, filter))
}

// GetDashboard aggregates the month's activity for the landing page.
func (c *ReportController) GetDashboard(ctx *fiber.Ctx) error {
	month := ctx.Query("month")

	snap, err := c.snapshot()
	if err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load records"})
	}

	summary := Reports.Dashboard(snap, month)

	var notes []Models.DashboardNote
	c.DB.Order("note_date desc").Limit(20).Find(&notes)

	var pendingTrips []Models.Trip
	c.DB.Where("pending_amount > 0").Order("trip_date desc").Limit(20).Find(&pendingTrips)

	var vehicles []Models.Vehicle
	c.DB.Order("vehicle_number").Find(&vehicles)
	vehicleRows := make([]fiber.Map, 0, len(vehicles))
	for _, v := range vehicles {
		vehicleRows = append(vehicleRows, fiber.Map{
			"id":               v.ID,
			"vehicle_number":   v.VehicleNumber,
			"maintenance_cost": v.TotalMaintenanceCost,
		})
	}

	return ctx.JSON(fiber.Map{
		"summary":       summary,
		"notes":         notes,
		"pending_trips": pendingTrips,
		"vehicles":      vehicleRows,
	})
}

// ExportReport writes the filtered summary to an xlsx workbook with
// one sheet of trips and one of totals.
func (c *ReportController) ExportReport(ctx *fiber.Ctx) error {
	var filter Reports.Filter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report filters"})
	}

	snap, err := c.snapshot()
	if err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load records"})
	}

	result := Reports.Summarize(snap, filter)

	file := excelize.NewFile()
	defer file.Close()

	const tripsSheet = "Trips"
	file.SetSheetName("Sheet1", tripsSheet)

	headers := []string{
		"Invoice No", "Date", "Customer", "Vehicle", "From", "To",
		"Distance (KM)", "Total Charged", "Received", "Pending",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(tripsSheet, cell, h)
	}

	for i, row := range result.Trips {
		values := []interface{}{
			row.InvoiceNumber, row.TripDate, row.CustomerName, row.VehicleNumber,
			row.FromLocation, row.ToLocation, row.DistanceKM,
			row.TotalCharged, row.AmountReceived, row.PendingAmount,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			file.SetCellValue(tripsSheet, cell, v)
		}
	}

	const summarySheet = "Summary"
	file.NewSheet(summarySheet)
	summaryRows := [][]interface{}{
		{"Total Trips", result.Totals.TotalTrips},
		{"Total Distance (KM)", result.Totals.TotalDistance},
		{"Total Revenue", result.Totals.TotalRevenue},
		{"Total Received", result.Totals.TotalPaid},
		{"Total Pending", result.Totals.TotalPending},
		{"Toll & Parking", result.Totals.TollAndParking},
		{"Other Trip Expenses", result.Totals.OtherTripExpenses},
		{"Fuel Expenses", result.Totals.FuelExpenses},
		{"Spare Part Expenses", result.Totals.SpareExpenses},
		{"Maintenance Expenses", result.Totals.MaintenanceExpenses},
		{"Total Expenses", result.Totals.TotalExpenses},
		{"Net Profit", result.Totals.NetProfit},
	}
	for i, row := range summaryRows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			file.SetCellValue(summarySheet, cell, v)
		}
	}

	const vendorSheet = "Vendor Expenses"
	file.NewSheet(vendorSheet)
	vendorHeaders := []string{"Vendor", "Fuel", "Spare Parts", "Total"}
	for i, h := range vendorHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(vendorSheet, cell, h)
	}
	for i, row := range result.VendorExpenses {
		values := []interface{}{row.Vendor, row.Fuel, row.Spare, row.Total}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			file.SetCellValue(vendorSheet, cell, v)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		log.Println(err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate export"})
	}

	filename := fmt.Sprintf("billing-report-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return ctx.Send(buf.Bytes())
}
