package Models

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database and migrates the schema. SQLite is the
// default; set DB_DSN to a MySQL DSN to run against MySQL instead.
func Connect() {
	var (
		connection *gorm.DB
		err        error
	)

	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		connection, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	} else {
		connection, err = gorm.Open(sqlite.Open("database.db"), &gorm.Config{})
	}
	if err != nil {
		log.Fatal(err)
	}
	DB = connection

	// 1. Base entities with no dependencies
	DB.AutoMigrate(
		&User{},
		&Customer{},
		&Vehicle{},
		&Driver{},
		&Vendor{},
	)

	// 2. Records that reference a vehicle or driver
	DB.AutoMigrate(
		&MaintenanceRecord{},
		&FuelEntry{},
		&SparePartEntry{},
		&VehicleNote{},
		&DashboardNote{},
		&DriverSalaryPayment{},
	)

	// 3. Trips and everything hanging off them
	DB.AutoMigrate(
		&Trip{},
		&TripPricingItem{},
		&TripDriverChange{},
		&Payment{},
		&DriverExpense{},
	)
}
