// Package schema resolves which needs, payment plans, amenities and steps
// apply to a listing type and category. It is the single source of truth the
// dashboard's wizard variants used to duplicate ad hoc.
//
// Everything here is pure: no state, no side effects, callable without a
// wizard or a draft.
package schema

import (
	"github.com/fjordhomes/listing-composer/internal/listing"
)

// Categories returns the selectable categories for a listing type.
func Categories(t listing.Type) []listing.Category {
	switch t {
	case listing.TypeProperty:
		return []listing.Category{
			listing.CategoryResidential,
			listing.CategoryCommercial,
			listing.CategoryLand,
			listing.CategoryTheFjord,
			listing.CategoryInvestment,
		}
	case listing.TypeService:
		return []listing.Category{listing.CategoryProfessional, listing.CategoryHome}
	case listing.TypeResource:
		return []listing.Category{listing.CategoryGuide, listing.CategoryMarket}
	case listing.TypeAddon:
		return []listing.Category{listing.CategoryComfort, listing.CategorySecurity}
	}
	return nil
}

// Needs returns the ordered list of valid needs for a category.
func Needs(t listing.Type, c listing.Category) []listing.Need {
	if t != listing.TypeProperty {
		return []listing.Need{listing.NeedBuy}
	}
	switch c {
	case listing.CategoryResidential, listing.CategoryCommercial, listing.CategoryLand:
		return []listing.Need{listing.NeedBuy, listing.NeedRent}
	case listing.CategoryInvestment:
		return []listing.Need{listing.NeedInvest}
	case listing.CategoryTheFjord:
		return []listing.Need{listing.NeedStay}
	}
	return nil
}

// AllowedPair reports whether the category/need pairing is valid. An invalid
// pairing is a submission-time validation error, never a silent acceptance.
func AllowedPair(t listing.Type, c listing.Category, n listing.Need) bool {
	for _, allowed := range Needs(t, c) {
		if allowed == n {
			return true
		}
	}
	return false
}

// PaymentPlans returns the selectable payment-plan labels. The universe
// depends on both the category and the currently selected need.
func PaymentPlans(c listing.Category, n listing.Need) []string {
	switch c {
	case listing.CategoryLand:
		// Fixed short list regardless of need.
		return []string{"Outright purchase", "Installments", "Work and pay"}
	case listing.CategoryResidential, listing.CategoryCommercial:
		if n == listing.NeedRent {
			return []string{
				"Monthly payment",
				"Quarterly payment",
				"Six months advance",
				"One year advance",
				"Two years advance",
			}
		}
		return []string{
			"Outright purchase",
			"Bank mortgage",
			"Developer mortgage",
			"12 month installments",
			"24 month installments",
			"Rent to own",
		}
	case listing.CategoryTheFjord:
		return []string{"Nightly rate", "Weekly rate", "Monthly rate"}
	case listing.CategoryInvestment:
		return []string{"Outright purchase", "Unit shares"}
	}
	return []string{"Outright purchase"}
}

// Amenities returns the category-specific property amenity labels.
func Amenities(c listing.Category) []string {
	switch c {
	case listing.CategoryResidential:
		return []string{
			"Air conditioning", "Balcony", "Fitted kitchen", "Garden",
			"Swimming pool", "Gym", "Security post", "Staff quarters",
			"Walled compound", "Borehole water",
		}
	case listing.CategoryCommercial:
		return []string{
			"Air conditioning", "Backup generator", "Elevator",
			"Loading bay", "Meeting rooms", "Parking lot", "Reception",
			"Security post",
		}
	case listing.CategoryTheFjord:
		return []string{
			"Air conditioning", "Balcony", "Daily housekeeping",
			"Restaurant", "Room service", "Spa", "Swimming pool", "Wifi",
		}
	case listing.CategoryInvestment:
		return []string{"Gated community", "Managed facilities", "Title deed"}
	case listing.CategoryLand:
		return []string{"Fenced", "Registered title", "Road access", "Serviced plot"}
	}
	return nil
}

// LocalAmenityCategories is the fixed list of nearby-amenity groupings.
func LocalAmenityCategories() []string {
	return []string{"School", "Hospital", "Market", "Transport", "Restaurant", "Bank"}
}

// HasPlotCount reports whether the total-plots field applies (Land only).
func HasPlotCount(c listing.Category) bool {
	return c == listing.CategoryLand
}

// HasOccupancy reports whether the occupancy field applies (stay listings).
func HasOccupancy(n listing.Need) bool {
	return n == listing.NeedStay
}

// HasSpecs reports whether bedroom/bathroom/parking counts apply.
func HasSpecs(t listing.Type, c listing.Category) bool {
	if t != listing.TypeProperty {
		return false
	}
	return c == listing.CategoryResidential ||
		c == listing.CategoryCommercial ||
		c == listing.CategoryTheFjord ||
		c == listing.CategoryInvestment
}
