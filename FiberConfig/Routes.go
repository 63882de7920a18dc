package FiberConfig

import (
	"Gaadi/Apis"
	"Gaadi/Controllers"
	"Gaadi/Models"
	"Gaadi/middleware"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	tripHandler := Controllers.NewTripHandler(db)
	paymentController := Controllers.NewPaymentController(db)
	customerController := Controllers.NewCustomerController(db)
	vendorController := Controllers.NewVendorController(db)
	reportController := Controllers.NewReportController(db)

	// API group
	api := app.Group("/api")

	// Trip routes
	trips := api.Group("/trips", middleware.Verify(1))
	trips.Get("/", tripHandler.GetAllTrips)
	trips.Get("/:id", tripHandler.GetTrip)
	trips.Post("/", tripHandler.CreateTrip)
	trips.Put("/:id", tripHandler.UpdateTrip)
	trips.Delete("/:id", middleware.Verify(3), tripHandler.DeleteTrip)
	trips.Get("/:trip_id/payments", paymentController.GetTripPayments)

	// Payment routes
	payments := api.Group("/payments", middleware.Verify(1))
	payments.Get("/", paymentController.GetPayments)
	payments.Post("/", paymentController.CreatePayment)
	payments.Delete("/:id", middleware.Verify(3), paymentController.DeletePayment)
	payments.Get("/:id/receipt", paymentController.GetReceipt)

	// Customer routes
	customers := api.Group("/customers", middleware.Verify(1))
	customers.Get("/", customerController.GetCustomers)
	customers.Post("/", customerController.CreateCustomer)
	customers.Get("/:id", customerController.GetCustomer)
	customers.Get("/:id/profile", customerController.GetCustomerProfile)
	customers.Put("/:id", customerController.UpdateCustomer)
	customers.Delete("/:id", middleware.Verify(3), customerController.DeleteCustomer)

	// Vendor routes
	vendors := api.Group("/vendors", middleware.Verify(1))
	vendors.Get("/", vendorController.GetVendors)
	vendors.Post("/", vendorController.CreateVendor)
	vendors.Get("/:id", vendorController.GetVendor)
	vendors.Put("/:id", vendorController.UpdateVendor)
	vendors.Delete("/:id", middleware.Verify(3), vendorController.DeleteVendor)
	vendors.Get("/:id/spend", vendorController.GetVendorSpend)

	// Vehicle routes
	vehicles := api.Group("/vehicles", middleware.Verify(1))
	vehicles.Get("/", Controllers.GetAllVehicles)
	vehicles.Post("/", Controllers.CreateVehicle)
	vehicles.Get("/:id", Controllers.GetVehicle)
	vehicles.Get("/:id/profile", Controllers.GetVehicleProfile)
	vehicles.Put("/:id", Controllers.UpdateVehicle)
	vehicles.Delete("/:id", middleware.Verify(3), Controllers.DeleteVehicle)

	// Maintenance routes
	maintenance := api.Group("/maintenance", middleware.Verify(1))
	maintenance.Get("/", Controllers.GetMaintenanceRecords)
	maintenance.Post("/", Controllers.CreateMaintenanceRecord)
	maintenance.Put("/:id", Controllers.UpdateMaintenanceRecord)
	maintenance.Delete("/:id", Controllers.DeleteMaintenanceRecord)

	// Spare part routes
	spareParts := api.Group("/spare-parts", middleware.Verify(1))
	spareParts.Get("/", Controllers.GetSparePartEntries)
	spareParts.Post("/", Controllers.CreateSparePartEntry)
	spareParts.Put("/:id", Controllers.UpdateSparePartEntry)
	spareParts.Delete("/:id", Controllers.DeleteSparePartEntry)

	// Report and dashboard routes
	app.Get("/api/reports", middleware.Verify(1), reportController.GetReport)
	app.Get("/api/reports/export", middleware.Verify(1), reportController.ExportReport)
	app.Get("/api/dashboard", middleware.Verify(1), reportController.GetDashboard)

	// Dashboard and vehicle notes
	app.Get("/api/notes", middleware.Verify(1), Controllers.GetDashboardNotes)
	app.Post("/api/notes", middleware.Verify(1), Controllers.CreateDashboardNote)
	app.Delete("/api/notes/:id", middleware.Verify(1), Controllers.DeleteDashboardNote)
	app.Post("/api/vehicle-notes", middleware.Verify(1), Controllers.CreateVehicleNote)
	app.Delete("/api/vehicle-notes/:id", middleware.Verify(1), Controllers.DeleteVehicleNote)
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,
	}))

	SetupRoutes(app, Models.DB)

	app.Post("/api/RegisterUser", middleware.Verify(4), Controllers.RegisterUser)
	app.Patch("/api/UpdateUser", middleware.Verify(4), Controllers.UpdateUser)
	app.Get("/api/FetchUsers", middleware.Verify(4), Controllers.FetchUsers)
	app.Delete("/api/DeleteUser", middleware.Verify(4), Controllers.DeleteUser)
	app.Post("/api/Login", Controllers.Login)
	app.Get("/api/validate-token", Controllers.ValidateToken)
	app.Use("/api/User", Controllers.User)
	app.Use("/api/Logout", Controllers.Logout)

	// Logs API routes
	app.Get("/api/logs", middleware.Verify(4), Controllers.GetLogs)

	// Driver routes
	protectedApis := app.Group("/api/protected/", middleware.Verify(1))
	protectedApis.Post("/RegisterDriver", Apis.RegisterDriver)
	protectedApis.Post("/UpdateDriver", Apis.UpdateDriver)
	app.Get("/api/GetDrivers", middleware.Verify(1), Apis.GetDrivers)
	app.Post("/api/GetDriver", middleware.Verify(1), Apis.GetDriver)
	app.Use("/api/GetDriverProfileData", middleware.Verify(1), Apis.GetDriverProfileData)
	app.Post("/api/DeleteDriver", middleware.Verify(3), Apis.DeleteDriver)

	// Driver payroll routes
	app.Post("/api/RegisterDriverExpense", middleware.Verify(1), Apis.RegisterDriverExpense)
	app.Post("/api/RegisterDriverSalary", middleware.Verify(3), Apis.RegisterDriverSalary)
	app.Post("/api/GetDriverSalaryPreview", middleware.Verify(1), Apis.GetDriverSalaryPreview)
	app.Post("/api/GetDriverSalaries", middleware.Verify(1), Apis.GetDriverSalaries)
	app.Post("/api/DeleteExpense", middleware.Verify(3), Apis.DeleteExpense)
	app.Post("/api/GetDriverExpenses", middleware.Verify(1), Apis.GetDriverExpenses)
	app.Post("/api/GetTripExpenses", middleware.Verify(1), Apis.GetTripExpenses)

	// Fuel routes
	fuelHandler := &Apis.FuelHandler{DB: Models.DB}
	fuel := app.Group("/api/fuel", middleware.Verify(1))
	fuel.Get("/statistics", fuelHandler.GetFuelStatistics)
	protectedApis.Post("/AddFuelEvent", fuelHandler.AddFuelEvent)
	protectedApis.Post("/EditFuelEvent", fuelHandler.EditFuelEvent)
	protectedApis.Post("/DeleteFuelEvent", middleware.Verify(3), fuelHandler.DeleteFuelEvent)
	protectedApis.Get("/GetFuelEvents", fuelHandler.GetFuelEvents)
	protectedApis.Get("/GetFuelEventById/:id", fuelHandler.GetFuelEventById)

	app.Listen(":3001")
}
