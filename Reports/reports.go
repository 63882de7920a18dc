package Reports

import (
	"strings"

	"Gaadi/Billing"
	"Gaadi/Models"
)

// Filter carries the report constraints. Zero values mean "no
// constraint"; substring queries are case-insensitive.
type Filter struct {
	VehicleNumber string `json:"vehicle_number" query:"vehicle_number"`
	DriverID      uint   `json:"driver_id" query:"driver_id"`
	CustomerQuery string `json:"customer" query:"customer"`
	InvoiceQuery  string `json:"invoice" query:"invoice"`
	DateFrom      string `json:"date_from" query:"date_from"`
	DateTo        string `json:"date_to" query:"date_to"`
	Month         string `json:"month" query:"month"`
}

// Snapshot is the full record set a report is computed from. Absent
// collections are treated as empty; every derivation below is a pure
// function of the snapshot and filter.
type Snapshot struct {
	Trips       []Models.Trip
	Customers   []Models.Customer
	Fuel        []Models.FuelEntry
	SpareParts  []Models.SparePartEntry
	Maintenance []Models.MaintenanceRecord
}

type Totals struct {
	TotalTrips    int     `json:"total_trips"`
	TotalDistance float64 `json:"total_distance"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalPaid     float64 `json:"total_paid"`
	TotalPending  float64 `json:"total_pending"`

	TollAndParking      float64 `json:"toll_and_parking"`
	OtherTripExpenses   float64 `json:"other_trip_expenses"`
	FuelExpenses        float64 `json:"fuel_expenses"`
	SpareExpenses       float64 `json:"spare_expenses"`
	MaintenanceExpenses float64 `json:"maintenance_expenses"`
	TotalExpenses       float64 `json:"total_expenses"`
	NetProfit           float64 `json:"net_profit"`
}

// TripRow is a filtered trip with its customer name resolved for
// display; a missing customer shows as N/A rather than failing.
type TripRow struct {
	Models.Trip
	CustomerName string `json:"customer_name"`
}

type Result struct {
	Totals               Totals               `json:"totals"`
	MaintenanceBreakdown MaintenanceBreakdown `json:"maintenance_breakdown"`
	MonthlyExpenses      []MonthlyExpenseRow  `json:"monthly_expenses"`
	VendorExpenses       []VendorExpenseRow   `json:"vendor_expenses"`
	VendorMonthly        []VendorMonthlyRow   `json:"vendor_monthly"`
	Trips                []TripRow            `json:"trips"`
}

// CustomerNames builds the id -> name lookup used to resolve trips.
func CustomerNames(customers []Models.Customer) map[uint]string {
	names := make(map[uint]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.Name
	}
	return names
}

// SpareCost is a spare part entry's total cost.
func SpareCost(s Models.SparePartEntry) float64 {
	return s.Cost * s.Quantity
}

// FilterTrips applies the vehicle/driver/date constraints and the
// case-insensitive customer and invoice substring searches.
func FilterTrips(trips []Models.Trip, names map[uint]string, f Filter) []Models.Trip {
	customerQuery := strings.ToLower(strings.TrimSpace(f.CustomerQuery))
	invoiceQuery := strings.ToLower(strings.TrimSpace(f.InvoiceQuery))

	var out []Models.Trip
	for _, t := range trips {
		if f.VehicleNumber != "" && t.VehicleNumber != f.VehicleNumber {
			continue
		}
		if f.DriverID != 0 && t.DriverID != f.DriverID {
			continue
		}
		if !Billing.InRange(t.TripDate, f.DateFrom, f.DateTo, f.Month) {
			continue
		}
		if customerQuery != "" {
			name := strings.ToLower(names[t.CustomerID])
			if !strings.Contains(name, customerQuery) {
				continue
			}
		}
		if invoiceQuery != "" {
			if !strings.Contains(strings.ToLower(t.InvoiceNumber), invoiceQuery) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// tripVehicles collects the vehicles present in the filtered trip set.
// When no explicit vehicle filter is given, expense records are
// restricted to these vehicles so a driver/customer report does not
// pick up the whole fleet's costs.
func tripVehicles(trips []Models.Trip) map[string]bool {
	set := make(map[string]bool, len(trips))
	for _, t := range trips {
		set[t.VehicleNumber] = true
	}
	return set
}

func vehicleMatches(vehicleNumber string, f Filter, fromTrips map[string]bool) bool {
	if f.VehicleNumber != "" {
		return vehicleNumber == f.VehicleNumber
	}
	if len(fromTrips) > 0 {
		return fromTrips[vehicleNumber]
	}
	return true
}

func FilterFuel(entries []Models.FuelEntry, f Filter, fromTrips map[string]bool) []Models.FuelEntry {
	var out []Models.FuelEntry
	for _, e := range entries {
		if !Billing.InRange(e.FilledDate, f.DateFrom, f.DateTo, f.Month) {
			continue
		}
		if !vehicleMatches(e.VehicleNumber, f, fromTrips) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilterSpareParts(entries []Models.SparePartEntry, f Filter, fromTrips map[string]bool) []Models.SparePartEntry {
	var out []Models.SparePartEntry
	for _, e := range entries {
		if !Billing.InRange(e.ReplacedDate, f.DateFrom, f.DateTo, f.Month) {
			continue
		}
		if !vehicleMatches(e.VehicleNumber, f, fromTrips) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func FilterMaintenance(records []Models.MaintenanceRecord, f Filter, fromTrips map[string]bool) []Models.MaintenanceRecord {
	var out []Models.MaintenanceRecord
	for _, m := range records {
		if !Billing.InRange(m.StartDate, f.DateFrom, f.DateTo, f.Month) {
			continue
		}
		if !vehicleMatches(m.VehicleNumber, f, fromTrips) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Summarize runs the full report over a snapshot: filtered trips with
// resolved customer names, revenue/expense totals and every breakdown.
func Summarize(snap Snapshot, f Filter) Result {
	names := CustomerNames(snap.Customers)
	trips := FilterTrips(snap.Trips, names, f)
	vehicles := tripVehicles(trips)

	fuel := FilterFuel(snap.Fuel, f, vehicles)
	spares := FilterSpareParts(snap.SpareParts, f, vehicles)
	maintenance := FilterMaintenance(snap.Maintenance, f, vehicles)

	var totals Totals
	totals.TotalTrips = len(trips)
	for _, t := range trips {
		totals.TotalDistance += t.DistanceKM
		totals.TotalRevenue += t.TotalCharged
		totals.TotalPaid += t.AmountReceived
		totals.TotalPending += t.PendingAmount
		totals.TollAndParking += t.TollAmount + t.ParkingAmount
		totals.OtherTripExpenses += t.OtherExpenses
	}
	for _, e := range fuel {
		totals.FuelExpenses += e.TotalCost
	}
	for _, s := range spares {
		totals.SpareExpenses += SpareCost(s)
	}
	for _, m := range maintenance {
		totals.MaintenanceExpenses += m.Amount
	}
	totals.TotalExpenses = totals.TollAndParking + totals.OtherTripExpenses +
		totals.FuelExpenses + totals.SpareExpenses + totals.MaintenanceExpenses
	totals.NetProfit = totals.TotalRevenue - totals.TotalExpenses

	rows := make([]TripRow, 0, len(trips))
	for _, t := range trips {
		name := names[t.CustomerID]
		if name == "" {
			name = "N/A"
		}
		rows = append(rows, TripRow{Trip: t, CustomerName: name})
	}

	return Result{
		Totals:               totals,
		MaintenanceBreakdown: MaintenanceByType(maintenance),
		MonthlyExpenses:      MonthlyExpenseBreakdown(spares, trips),
		VendorExpenses:       VendorWiseExpenses(fuel, spares),
		VendorMonthly:        VendorMonthlySummary(fuel, spares),
		Trips:                rows,
	}
}

// DashboardSummary is the month-scoped landing view: counts, income,
// operating expenses and profit.
type DashboardSummary struct {
	Trips    int     `json:"trips"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	TotalDue float64 `json:"total_due"`
}

// Dashboard aggregates the snapshot for one YYYY-MM month, or for all
// time when month is empty. Trip operating costs use the trip's own
// total_cost rather than the customer-charged surcharges.
func Dashboard(snap Snapshot, month string) DashboardSummary {
	var summary DashboardSummary
	for _, t := range snap.Trips {
		if month != "" && Billing.MonthKey(t.TripDate) != month {
			continue
		}
		summary.Trips++
		summary.Income += t.TotalCharged
		summary.TotalDue += t.PendingAmount
		summary.Expenses += t.TotalCost
	}
	for _, e := range snap.Fuel {
		if month != "" && Billing.MonthKey(e.FilledDate) != month {
			continue
		}
		summary.Expenses += e.TotalCost
	}
	for _, m := range snap.Maintenance {
		if month != "" && Billing.MonthKey(m.StartDate) != month {
			continue
		}
		summary.Expenses += m.Amount
	}
	for _, s := range snap.SpareParts {
		if month != "" && Billing.MonthKey(s.ReplacedDate) != month {
			continue
		}
		summary.Expenses += SpareCost(s)
	}
	summary.Profit = summary.Income - summary.Expenses
	return summary
}
