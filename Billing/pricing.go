package Billing

import (
	"Gaadi/Models"
)

const (
	PricingPerKM   = "per_km"
	PricingPackage = "package"

	ItemTypePricing = "pricing"
	ItemTypeCharge  = "charge"
)

// ItemAmount resolves a line item's amount: an explicit amount wins,
// otherwise quantity (defaulting to 1) times rate.
func ItemAmount(item Models.TripPricingItem) float64 {
	if item.Amount != 0 {
		return item.Amount
	}
	qty := item.Quantity
	if qty == 0 {
		qty = 1
	}
	return qty * item.Rate
}

// EffectiveDistance returns the trip's billable distance. An explicit
// DistanceKM takes precedence; otherwise it is derived from the
// odometer readings, floored at zero.
func EffectiveDistance(trip Models.Trip) float64 {
	if trip.DistanceKM != 0 {
		return trip.DistanceKM
	}
	derived := trip.EndKM - trip.StartKM
	if derived < 0 {
		return 0
	}
	return derived
}

// BaseAmount is the pre-surcharge invoice amount: the sum of
// pricing-type line items when any exist, else the package amount for
// package trips, else distance times the per-km rate.
func BaseAmount(trip Models.Trip) float64 {
	var pricingTotal float64
	hasPricingItems := false
	for _, item := range trip.PricingItems {
		if item.ItemType == ItemTypeCharge {
			continue
		}
		hasPricingItems = true
		pricingTotal += ItemAmount(item)
	}
	if hasPricingItems {
		return pricingTotal
	}
	if trip.PricingType == PricingPackage {
		return trip.PackageAmount
	}
	return EffectiveDistance(trip) * trip.CostPerKM
}

// Surcharges sums the charged toll/parking amounts, charge-type line
// items and other trip expenses passed on to the customer.
func Surcharges(trip Models.Trip) float64 {
	total := trip.ChargedTollAmount + trip.ChargedParkingAmount + trip.OtherExpenses
	for _, item := range trip.PricingItems {
		if item.ItemType == ItemTypeCharge {
			total += ItemAmount(item)
		}
	}
	return total
}

// TotalCharged computes the invoice total. A negative result is not
// clamped; callers surface it as a validation warning instead.
func TotalCharged(trip Models.Trip) float64 {
	return BaseAmount(trip) + Surcharges(trip) - trip.DiscountAmount
}

// TotalCost is the operator-side cost of running the trip.
func TotalCost(trip Models.Trip) float64 {
	return trip.DieselUsed + trip.PetrolUsed + trip.TollAmount +
		trip.ParkingAmount + trip.OtherExpenses + trip.DriverBhatta
}

// ValidateTrip checks the form-level rules before a trip is stored.
func ValidateTrip(trip Models.Trip) error {
	if trip.InvoiceNumber == "" {
		return &ValidationError{Field: "invoice_number", Message: "invoice number is required"}
	}
	if trip.VehicleNumber == "" {
		return &ValidationError{Field: "vehicle_number", Message: "vehicle is required"}
	}
	if trip.DriverID == 0 {
		return &ValidationError{Field: "driver_id", Message: "driver is required"}
	}
	if trip.CustomerID == 0 {
		return &ValidationError{Field: "customer_id", Message: "customer is required"}
	}
	switch trip.PricingType {
	case PricingPerKM:
		if EffectiveDistance(trip) <= 0 {
			return &ValidationError{Field: "distance_km", Message: "distance must be greater than zero for per-km pricing"}
		}
	case PricingPackage:
		if trip.PackageAmount <= 0 {
			return &ValidationError{Field: "package_amount", Message: "package amount must be greater than zero"}
		}
	default:
		return &ValidationError{Field: "pricing_type", Message: "invalid pricing type"}
	}
	if trip.DiscountAmount != 0 && (trip.DiscountAmount < 500 || trip.DiscountAmount > 1000) {
		return &ValidationError{Field: "discount_amount", Message: "discount must be between 500 and 1000"}
	}
	return nil
}
