// Package listing provides the listing draft model composed by the wizard.
package listing

// Type is the kind of listing being composed.
type Type string

const (
	TypeProperty Type = "property"
	TypeService  Type = "service"
	TypeResource Type = "resource"
	TypeAddon    Type = "addon"
)

// ValidType returns true if t is a known listing type.
func ValidType(t Type) bool {
	switch t {
	case TypeProperty, TypeService, TypeResource, TypeAddon:
		return true
	}
	return false
}

// Category is a type-dependent listing category.
type Category string

// Property categories.
const (
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
	CategoryLand        Category = "Land"
	CategoryTheFjord    Category = "TheFjord"
	CategoryInvestment  Category = "Investment"
)

// Service, resource and addon categories.
const (
	CategoryProfessional Category = "Professional"
	CategoryHome         Category = "Home"
	CategoryGuide        Category = "Guide"
	CategoryMarket       Category = "Market"
	CategoryComfort      Category = "Comfort"
	CategorySecurity     Category = "Security"
)

// Need is the transaction intent for a listing.
type Need string

const (
	NeedBuy    Need = "Buy"
	NeedRent   Need = "Rent"
	NeedInvest Need = "Invest"
	NeedStay   Need = "Stay"
)

// StatusUnpublished is the status every draft carries on creation.
// Publishing happens elsewhere on the dashboard, never from the composer.
const StatusUnpublished = "unpublished"

// Location is the draft's location sub-record. Latitude and longitude are
// decimal strings, never numeric, for transport stability.
type Location struct {
	Country        string `json:"country"`
	Street         string `json:"street"`
	City           string `json:"city"`
	Region         string `json:"region"`
	Postcode       string `json:"postcode"`
	DigitalAddress string `json:"digitalAddress"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
}

// HasAddress returns true if any street or city text has been entered.
func (l Location) HasAddress() bool {
	return l.Street != "" || l.City != ""
}
