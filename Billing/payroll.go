package Billing

import (
	"sort"

	"Gaadi/Models"
)

// MonthlyStatement is a driver's payroll position for one month:
// salary plus bhatta plus attributed expenses, against what was paid.
type MonthlyStatement struct {
	Month         string  `json:"month"`
	MonthlySalary float64 `json:"monthly_salary"`
	BhattaTotal   float64 `json:"bhatta_total"`
	ExpensesTotal float64 `json:"expenses_total"`
	TotalDue      float64 `json:"total_due"`
	Paid          float64 `json:"paid"`
	Pending       float64 `json:"pending"`
}

// MonthlyPayroll computes a driver's statement for the given YYYY-MM
// month from the current record snapshot. Trips count by trip_date,
// expenses by the date they were recorded, salary payments by paid_on.
func MonthlyPayroll(driver Models.Driver, month string, trips []Models.Trip, expenses []Models.DriverExpense, payments []Models.DriverSalaryPayment) MonthlyStatement {
	stmt := MonthlyStatement{
		Month:         month,
		MonthlySalary: driver.MonthlySalary,
	}

	for _, t := range trips {
		if t.DriverID != driver.ID {
			continue
		}
		if MonthKey(t.TripDate) == month {
			stmt.BhattaTotal += t.DriverBhatta
		}
	}

	for _, e := range expenses {
		if e.DriverID != driver.ID {
			continue
		}
		if MonthKey(e.CreatedAt.Format("2006-01-02")) == month {
			stmt.ExpensesTotal += e.Amount
		}
	}

	stmt.TotalDue = stmt.MonthlySalary + stmt.ExpensesTotal + stmt.BhattaTotal

	for _, p := range payments {
		if p.DriverID != driver.ID {
			continue
		}
		if MonthKey(p.PaidOn) == month {
			stmt.Paid += p.Amount
		}
	}

	stmt.Pending = Pending(stmt.TotalDue, stmt.Paid)
	return stmt
}

// TripExpenseGroup collapses a driver's expenses to one row per trip
// for display. This is a presentation grouping, not a financial rule.
type TripExpenseGroup struct {
	TripID       uint     `json:"trip_id"`
	Date         string   `json:"date"` // latest entry timestamp
	Total        float64  `json:"total"`
	Descriptions []string `json:"descriptions"`
	Notes        []string `json:"notes"`
}

// GroupExpensesByTrip sums expense amounts per trip and collects their
// descriptions and notes, ordered by trip id for stable output.
func GroupExpensesByTrip(expenses []Models.DriverExpense) []TripExpenseGroup {
	byTrip := make(map[uint]*TripExpenseGroup)
	for _, e := range expenses {
		group, ok := byTrip[e.TripID]
		if !ok {
			group = &TripExpenseGroup{TripID: e.TripID}
			byTrip[e.TripID] = group
		}
		group.Total += e.Amount
		if d := e.CreatedAt.Format("2006-01-02"); d > group.Date {
			group.Date = d
		}
		group.Descriptions = append(group.Descriptions, e.Description)
		if e.Notes != "" {
			group.Notes = append(group.Notes, e.Notes)
		}
	}

	groups := make([]TripExpenseGroup, 0, len(byTrip))
	for _, g := range byTrip {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].TripID < groups[j].TripID
	})
	return groups
}
