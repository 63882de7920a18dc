package Billing

import (
	"testing"
	"time"

	"Gaadi/Models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func expenseOn(driverID, tripID uint, amount float64, date string) Models.DriverExpense {
	created, _ := time.Parse("2006-01-02", date)
	return Models.DriverExpense{
		Model:    gorm.Model{CreatedAt: created},
		DriverID: driverID,
		TripID:   tripID,
		Amount:   amount,
	}
}

func TestMonthlyPayroll(t *testing.T) {
	driver := Models.Driver{Model: gorm.Model{ID: 7}, Name: "Ramesh", MonthlySalary: 20000}

	trips := []Models.Trip{
		{DriverID: 7, TripDate: "2024-03-10", DriverBhatta: 300},
		{DriverID: 7, TripDate: "2024-03-22", DriverBhatta: 200},
		// Different month, ignored
		{DriverID: 7, TripDate: "2024-04-02", DriverBhatta: 999},
		// Different driver, ignored
		{DriverID: 8, TripDate: "2024-03-12", DriverBhatta: 400},
	}
	expenses := []Models.DriverExpense{
		expenseOn(7, 1, 300, "2024-03-18"),
		expenseOn(7, 2, 150, "2024-04-01"),
		expenseOn(9, 1, 75, "2024-03-19"),
	}
	payments := []Models.DriverSalaryPayment{
		{DriverID: 7, Amount: 15000, PaidOn: "2024-03-25"},
		{DriverID: 7, Amount: 2000, PaidOn: "2024-04-05"},
	}

	stmt := MonthlyPayroll(driver, "2024-03", trips, expenses, payments)

	assert.Equal(t, "2024-03", stmt.Month)
	assert.Equal(t, 20000.0, stmt.MonthlySalary)
	assert.Equal(t, 500.0, stmt.BhattaTotal)
	assert.Equal(t, 300.0, stmt.ExpensesTotal)
	assert.Equal(t, 20800.0, stmt.TotalDue)
	assert.Equal(t, 15000.0, stmt.Paid)
	assert.Equal(t, 5800.0, stmt.Pending)
}

func TestMonthlyPayrollOverpaidFloorsAtZero(t *testing.T) {
	driver := Models.Driver{Model: gorm.Model{ID: 1}, MonthlySalary: 10000}
	payments := []Models.DriverSalaryPayment{
		{DriverID: 1, Amount: 12000, PaidOn: "2024-03-01"},
	}

	stmt := MonthlyPayroll(driver, "2024-03", nil, nil, payments)
	assert.Equal(t, 10000.0, stmt.TotalDue)
	assert.Equal(t, 12000.0, stmt.Paid)
	assert.Equal(t, 0.0, stmt.Pending)
}

func TestGroupExpensesByTrip(t *testing.T) {
	expenses := []Models.DriverExpense{
		{DriverID: 1, TripID: 2, Amount: 100, Description: "food"},
		{DriverID: 1, TripID: 1, Amount: 50, Description: "parking", Notes: "night halt"},
		{DriverID: 1, TripID: 2, Amount: 75, Description: "toll"},
	}

	groups := GroupExpensesByTrip(expenses)

	assert.Len(t, groups, 2)
	assert.Equal(t, uint(1), groups[0].TripID)
	assert.Equal(t, 50.0, groups[0].Total)
	assert.Equal(t, []string{"night halt"}, groups[0].Notes)

	assert.Equal(t, uint(2), groups[1].TripID)
	assert.Equal(t, 175.0, groups[1].Total)
	assert.Equal(t, []string{"food", "toll"}, groups[1].Descriptions)
}

func TestGroupExpensesByTripKeepsLatestDate(t *testing.T) {
	// Newest entry first; the group date must still be the latest one
	expenses := []Models.DriverExpense{
		expenseOn(1, 3, 100, "2024-03-20"),
		expenseOn(1, 3, 50, "2024-03-05"),
	}

	groups := GroupExpensesByTrip(expenses)

	assert.Len(t, groups, 1)
	assert.Equal(t, "2024-03-20", groups[0].Date)
}
