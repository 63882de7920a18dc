package Reports

import (
	"sort"
	"strings"

	"Gaadi/Billing"
	"Gaadi/Models"
)

// UnassignedVendor buckets fuel/spare entries with no vendor set.
const UnassignedVendor = "Unassigned"

type MaintenanceBreakdown struct {
	EMI       float64 `json:"emi"`
	Insurance float64 `json:"insurance"`
	Tax       float64 `json:"tax"`
}

// MaintenanceByType splits maintenance outgo into the three fixed
// buckets; unknown types are ignored.
func MaintenanceByType(records []Models.MaintenanceRecord) MaintenanceBreakdown {
	var b MaintenanceBreakdown
	for _, m := range records {
		switch strings.ToLower(m.MaintenanceType) {
		case "emi":
			b.EMI += m.Amount
		case "insurance":
			b.Insurance += m.Amount
		case "tax":
			b.Tax += m.Amount
		}
	}
	return b
}

type MonthlyExpenseRow struct {
	Month         string  `json:"month"`
	Tyres         float64 `json:"tyres"`
	SpareParts    float64 `json:"spare_parts"`
	OtherExpenses float64 `json:"other_expenses"`
}

// MonthlyExpenseBreakdown buckets spare-part spend into tyres vs other
// parts per month, plus each trip's other_expenses under its trip
// month. Rows come back newest month first.
func MonthlyExpenseBreakdown(spares []Models.SparePartEntry, trips []Models.Trip) []MonthlyExpenseRow {
	byMonth := make(map[string]*MonthlyExpenseRow)
	row := func(month string) *MonthlyExpenseRow {
		r, ok := byMonth[month]
		if !ok {
			r = &MonthlyExpenseRow{Month: month}
			byMonth[month] = r
		}
		return r
	}

	for _, s := range spares {
		month := Billing.MonthKey(s.ReplacedDate)
		if month == "" {
			continue
		}
		name := strings.ToLower(s.PartName)
		if strings.Contains(name, "tyre") || strings.Contains(name, "tire") {
			row(month).Tyres += SpareCost(s)
		} else {
			row(month).SpareParts += SpareCost(s)
		}
	}
	for _, t := range trips {
		month := Billing.MonthKey(t.TripDate)
		if month == "" {
			continue
		}
		row(month).OtherExpenses += t.OtherExpenses
	}

	rows := make([]MonthlyExpenseRow, 0, len(byMonth))
	for _, r := range byMonth {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Month > rows[j].Month
	})
	return rows
}

type VendorExpenseRow struct {
	Vendor string  `json:"vendor"`
	Fuel   float64 `json:"fuel"`
	Spare  float64 `json:"spare"`
	Total  float64 `json:"total"`
}

// VendorWiseExpenses sums fuel and spare spend per vendor, largest
// total first. Ties keep a stable vendor-name order.
func VendorWiseExpenses(fuel []Models.FuelEntry, spares []Models.SparePartEntry) []VendorExpenseRow {
	byVendor := make(map[string]*VendorExpenseRow)
	row := func(vendor string) *VendorExpenseRow {
		if vendor == "" {
			vendor = UnassignedVendor
		}
		r, ok := byVendor[vendor]
		if !ok {
			r = &VendorExpenseRow{Vendor: vendor}
			byVendor[vendor] = r
		}
		return r
	}

	for _, e := range fuel {
		r := row(e.Vendor)
		r.Fuel += e.TotalCost
		r.Total += e.TotalCost
	}
	for _, s := range spares {
		r := row(s.Vendor)
		cost := SpareCost(s)
		r.Spare += cost
		r.Total += cost
	}

	rows := make([]VendorExpenseRow, 0, len(byVendor))
	for _, r := range byVendor {
		rows = append(rows, *r)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Vendor < rows[j].Vendor
	})
	return rows
}

// monthVendorKey keys the month×vendor grouping explicitly instead of
// a concatenated string, so vendor names containing the separator can
// never collide.
type monthVendorKey struct {
	Month  string
	Vendor string
}

type VendorMonthlyRow struct {
	Month  string  `json:"month"`
	Vendor string  `json:"vendor"`
	Amount float64 `json:"amount"`
}

// VendorMonthlySummary groups fuel and spare spend by (month, vendor),
// sorted newest month first and largest amount first within a month.
func VendorMonthlySummary(fuel []Models.FuelEntry, spares []Models.SparePartEntry) []VendorMonthlyRow {
	byKey := make(map[monthVendorKey]float64)
	add := func(month, vendor string, amount float64) {
		if month == "" {
			return
		}
		if vendor == "" {
			vendor = UnassignedVendor
		}
		byKey[monthVendorKey{Month: month, Vendor: vendor}] += amount
	}

	for _, e := range fuel {
		add(Billing.MonthKey(e.FilledDate), e.Vendor, e.TotalCost)
	}
	for _, s := range spares {
		add(Billing.MonthKey(s.ReplacedDate), s.Vendor, SpareCost(s))
	}

	rows := make([]VendorMonthlyRow, 0, len(byKey))
	for key, amount := range byKey {
		rows = append(rows, VendorMonthlyRow{Month: key.Month, Vendor: key.Vendor, Amount: amount})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Month != rows[j].Month {
			return rows[i].Month > rows[j].Month
		}
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Vendor < rows[j].Vendor
	})
	return rows
}
